// Package config loads estimator, change-point and logging settings for the
// copent command from a YAML file and COPENT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/copent/changepoint"
	"github.com/katalvlaran/copent/copent"
	"github.com/katalvlaran/copent/distance"
)

// Sentinel validation errors.
var (
	ErrInvalidK         = errors.New("estimator k must be positive")
	ErrInvalidRetries   = errors.New("estimator max_retries must be non-negative")
	ErrInvalidRepeats   = errors.New("repeats must be positive")
	ErrInvalidThreshold = errors.New("change point threshold must be finite")
	ErrInvalidMaxPoints = errors.New("change point max_points must be positive")
	ErrInvalidMinSegLen = errors.New("change point min_segment_length must be positive")
	ErrInvalidWorkers   = errors.New("change point workers must be non-negative")
	ErrInvalidLogFormat = errors.New("logging format must be text or json")
)

// envPrefix namespaces environment overrides, e.g. COPENT_ESTIMATOR_K.
const envPrefix = "COPENT"

// Config holds all settings of the copent command.
type Config struct {
	Estimator   EstimatorConfig   `mapstructure:"estimator"`
	TwoSample   TwoSampleConfig   `mapstructure:"two_sample"`
	ChangePoint ChangePointConfig `mapstructure:"change_point"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// EstimatorConfig configures every copula-entropy evaluation.
type EstimatorConfig struct {
	Metric     string `mapstructure:"metric"`
	Mode       string `mapstructure:"mode"`
	K          int    `mapstructure:"k"`
	MaxRetries int    `mapstructure:"max_retries"`
	Seed       uint64 `mapstructure:"seed"`
}

// TwoSampleConfig configures the standalone two-sample statistic.
type TwoSampleConfig struct {
	Repeats int `mapstructure:"repeats"`
}

// ChangePointConfig configures single and multiple change-point search.
type ChangePointConfig struct {
	Threshold        float64 `mapstructure:"threshold"`
	Repeats          int     `mapstructure:"repeats"`
	MaxPoints        int     `mapstructure:"max_points"`
	MinSegmentLength int     `mapstructure:"min_segment_length"`
	Workers          int     `mapstructure:"workers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from configPath (or copent.yaml in the usual
// places when empty), then applies environment overrides and validates.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("copent")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.config/copent")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("estimator.k", copent.DefaultK)
	v.SetDefault("estimator.metric", copent.DefaultMetric.String())
	v.SetDefault("estimator.mode", copent.DefaultMode.String())
	v.SetDefault("estimator.max_retries", copent.DefaultMaxRetries)
	v.SetDefault("estimator.seed", 0)

	v.SetDefault("two_sample.repeats", copent.DefaultRepeats)

	v.SetDefault("change_point.threshold", changepoint.DefaultThreshold)
	v.SetDefault("change_point.repeats", changepoint.DefaultRepeats)
	v.SetDefault("change_point.max_points", changepoint.DefaultMaxPoints)
	v.SetDefault("change_point.min_segment_length", changepoint.DefaultMinSegmentLength)
	v.SetDefault("change_point.workers", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks every field; the first violation is returned.
func (c *Config) Validate() error {
	if c.Estimator.K <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidK, c.Estimator.K)
	}
	if c.Estimator.MaxRetries < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRetries, c.Estimator.MaxRetries)
	}
	if _, err := distance.ParseMetric(c.Estimator.Metric); err != nil {
		return err
	}
	if _, err := distance.ParseMode(c.Estimator.Mode); err != nil {
		return err
	}
	if c.TwoSample.Repeats <= 0 {
		return fmt.Errorf("two_sample %w: %d", ErrInvalidRepeats, c.TwoSample.Repeats)
	}

	cp := c.ChangePoint
	if math.IsNaN(cp.Threshold) || math.IsInf(cp.Threshold, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, cp.Threshold)
	}
	if cp.Repeats <= 0 {
		return fmt.Errorf("change_point %w: %d", ErrInvalidRepeats, cp.Repeats)
	}
	if cp.MaxPoints <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxPoints, cp.MaxPoints)
	}
	if cp.MinSegmentLength <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMinSegLen, cp.MinSegmentLength)
	}
	if cp.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, cp.Workers)
	}

	if f := strings.ToLower(c.Logging.Format); f != "text" && f != "json" {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	return nil
}

// ParseLevel maps "debug", "info", "warn" or "error" to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging level %q: %w", s, err)
	}

	return lvl, nil
}

// EstimatorOptions converts the estimator and two-sample sections into
// copent options. Names were checked by Validate.
func (c *Config) EstimatorOptions() []copent.Option {
	mode, _ := distance.ParseMode(c.Estimator.Mode)

	return []copent.Option{
		copent.WithK(c.Estimator.K),
		copent.WithMetricName(c.Estimator.Metric),
		copent.WithMode(mode),
		copent.WithMaxRetries(c.Estimator.MaxRetries),
		copent.WithSeed(c.Estimator.Seed),
		copent.WithRepeats(c.TwoSample.Repeats),
	}
}

// ChangePointOptions converts the estimator and change-point sections into
// changepoint options that log to logger.
func (c *Config) ChangePointOptions(logger *slog.Logger) []changepoint.Option {
	metric, _ := distance.ParseMetric(c.Estimator.Metric)
	mode, _ := distance.ParseMode(c.Estimator.Mode)
	cp := c.ChangePoint

	return []changepoint.Option{
		changepoint.WithK(c.Estimator.K),
		changepoint.WithMetric(metric),
		changepoint.WithMode(mode),
		changepoint.WithSeed(c.Estimator.Seed),
		changepoint.WithThreshold(cp.Threshold),
		changepoint.WithRepeats(cp.Repeats),
		changepoint.WithMaxPoints(cp.MaxPoints),
		changepoint.WithMinSegmentLength(cp.MinSegmentLength),
		changepoint.WithWorkers(cp.Workers),
		changepoint.WithLogger(logger),
	}
}
