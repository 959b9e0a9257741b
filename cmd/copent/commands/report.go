package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"gopkg.in/yaml.v3"
)

// field is one named result value.
type field struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

// summary describes repeated trials of one statistic.
type summary struct {
	Trials int     `json:"trials" yaml:"trials"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
	Median float64 `json:"median" yaml:"median"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
}

// report is what every subcommand prints.
type report struct {
	Command string   `json:"command" yaml:"command"`
	Fields  []field  `json:"fields" yaml:"fields"`
	Summary *summary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

func (r *report) add(name string, value any) {
	r.Fields = append(r.Fields, field{Name: name, Value: value})
}

// summarize computes trial statistics; a single trial has zero spread.
func summarize(values []float64) (*summary, error) {
	data := stats.Float64Data(values)

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	lo, err := stats.Min(data)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	hi, err := stats.Max(data)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	var sd float64
	if len(values) > 1 {
		if sd, err = stats.StandardDeviationSample(data); err != nil {
			return nil, fmt.Errorf("summarize: %w", err)
		}
	}

	return &summary{Trials: len(values), Mean: mean, StdDev: sd, Median: median, Min: lo, Max: hi}, nil
}

// render writes r in the requested format.
func render(w io.Writer, format string, r *report) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, renderTable(r))
		return err
	}
}

func renderTable(r *report) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(r.Command)
	tbl.AppendHeader(table.Row{"name", "value"})
	for _, f := range r.Fields {
		tbl.AppendRow(table.Row{f.Name, formatValue(f.Value)})
	}
	if s := r.Summary; s != nil {
		tbl.AppendSeparator()
		tbl.AppendRow(table.Row{"trials", s.Trials})
		tbl.AppendRow(table.Row{"mean", formatValue(s.Mean)})
		tbl.AppendRow(table.Row{"std dev", formatValue(s.StdDev)})
		tbl.AppendRow(table.Row{"median", formatValue(s.Median)})
		tbl.AppendRow(table.Row{"min", formatValue(s.Min)})
		tbl.AppendRow(table.Row{"max", formatValue(s.Max)})
	}

	return tbl.Render()
}

func formatValue(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.4f", f)
	}

	return fmt.Sprintf("%v", v)
}
