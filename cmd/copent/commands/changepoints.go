package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/copent/changepoint"
	"github.com/katalvlaran/copent/internal/simulate"
	"github.com/katalvlaran/copent/matrix"
)

// blockFlags describe a sequence of equally sized Gaussian blocks whose means
// step by shift.
type blockFlags struct {
	blocks    int
	blockSize int
	shift     float64
	dim       int
	dataSeed  uint64
}

func (f *blockFlags) register(cmd *cobra.Command, blocks int) {
	cmd.Flags().IntVar(&f.blocks, "blocks", blocks, "number of Gaussian blocks")
	cmd.Flags().IntVar(&f.blockSize, "block-size", 40, "rows per block")
	cmd.Flags().Float64Var(&f.shift, "shift", 4, "mean step between consecutive blocks")
	cmd.Flags().IntVar(&f.dim, "dim", 1, "dimension of each row")
	cmd.Flags().Uint64Var(&f.dataSeed, "data-seed", 1, "seed of the synthetic sequence")
}

// blockSequence is a synthetic sequence with its true change points.
type blockSequence struct {
	x          *matrix.Dense
	boundaries []int
}

// sequence builds the blocks and returns the true boundaries.
func (f *blockFlags) sequence() (*blockSequence, error) {
	if f.blocks < 1 || f.blockSize < 1 {
		return nil, fmt.Errorf("blocks=%d block-size=%d: %w", f.blocks, f.blockSize, changepoint.ErrInvalidParameter)
	}
	sizes := make([]int, f.blocks)
	means := make([]float64, f.blocks)
	boundaries := make([]int, 0, f.blocks-1)
	for b := range sizes {
		sizes[b] = f.blockSize
		means[b] = float64(b) * f.shift
		if b > 0 {
			boundaries = append(boundaries, b*f.blockSize)
		}
	}
	x, err := simulate.Blocks(sizes, means, f.dim, f.dataSeed)
	if err != nil {
		return nil, err
	}

	return &blockSequence{x: x, boundaries: boundaries}, nil
}

func newCPDCommand(a *app) *cobra.Command {
	var bf blockFlags
	cmd := &cobra.Command{
		Use:   "cpd",
		Short: "Single change point between Gaussian blocks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seq, err := bf.sequence()
			if err != nil {
				return err
			}
			res, err := changepoint.Detect(seq.x, a.cfg.ChangePointOptions(a.logger)...)
			if err != nil {
				return err
			}

			r := &report{Command: "cpd"}
			r.add("length", seq.x.Rows())
			r.add("true boundaries", seq.boundaries)
			r.add("position", res.Position)
			r.add("statistic", res.Statistic)
			return render(cmd.OutOrStdout(), a.output, r)
		},
	}
	bf.register(cmd, 2)

	return cmd
}

func newMCPDCommand(a *app) *cobra.Command {
	var bf blockFlags
	cmd := &cobra.Command{
		Use:   "mcpd",
		Short: "Multiple change points across Gaussian blocks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seq, err := bf.sequence()
			if err != nil {
				return err
			}
			res, err := changepoint.DetectMultiple(seq.x, a.cfg.ChangePointOptions(a.logger)...)
			if err != nil {
				return err
			}

			r := &report{Command: "mcpd"}
			r.add("length", seq.x.Rows())
			r.add("true boundaries", seq.boundaries)
			r.add("positions", res.Positions)
			r.add("statistics", res.Statistics)
			return render(cmd.OutOrStdout(), a.output, r)
		},
	}
	bf.register(cmd, 4)

	return cmd
}
