package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/copent/copent"
	"github.com/katalvlaran/copent/internal/simulate"
	"github.com/katalvlaran/copent/matrix"
)

// trialFlags are shared by the estimator subcommands.
type trialFlags struct {
	n        int
	trials   int
	dataSeed uint64
}

func (f *trialFlags) register(cmd *cobra.Command, n int) {
	cmd.Flags().IntVarP(&f.n, "samples", "n", n, "observations per trial")
	cmd.Flags().IntVar(&f.trials, "trials", 1, "independent trials to summarise")
	cmd.Flags().Uint64Var(&f.dataSeed, "data-seed", 1, "seed of the first trial's synthetic data")
}

func (f *trialFlags) validate() error {
	if f.n < 1 || f.trials < 1 {
		return fmt.Errorf("samples=%d trials=%d: %w", f.n, f.trials, copent.ErrInvalidParameter)
	}

	return nil
}

// runTrials evaluates one trial per data seed and returns the values.
func (f *trialFlags) runTrials(trial func(seed uint64) (float64, error)) ([]float64, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	values := make([]float64, f.trials)
	var err error
	for i := range values {
		if values[i], err = trial(f.dataSeed + uint64(i)); err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
	}

	return values, nil
}

// finish attaches the trial summary (if several) and renders the report.
func (a *app) finish(cmd *cobra.Command, r *report, values []float64) error {
	r.add("estimate", values[0])
	if len(values) > 1 {
		s, err := summarize(values)
		if err != nil {
			return err
		}
		r.Summary = s
	}
	a.logger.Debug("command finished", "command", r.Command, "trials", len(values))

	return render(cmd.OutOrStdout(), a.output, r)
}

func newCECommand(a *app) *cobra.Command {
	var (
		tf  trialFlags
		rho float64
	)
	cmd := &cobra.Command{
		Use:   "ce",
		Short: "Copula entropy of a bivariate Gaussian with correlation rho",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.EstimatorOptions()
			values, err := tf.runTrials(func(seed uint64) (float64, error) {
				x, err := simulate.GaussianPair(tf.n, rho, seed)
				if err != nil {
					return 0, err
				}
				return copent.CopulaEntropy(x, opts...)
			})
			if err != nil {
				return err
			}

			r := &report{Command: "ce"}
			r.add("rho", rho)
			r.add("samples", tf.n)
			r.add("analytic", simulate.GaussianMI(rho))
			return a.finish(cmd, r, values)
		},
	}
	tf.register(cmd, 800)
	cmd.Flags().Float64Var(&rho, "rho", 0.8, "correlation of the Gaussian pair")

	return cmd
}

func newCICommand(a *app) *cobra.Command {
	var (
		tf    trialFlags
		noise float64
	)
	cmd := &cobra.Command{
		Use:   "ci",
		Short: "Conditional independence I(x; y | z) for x, y driven by z",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.EstimatorOptions()
			values, err := tf.runTrials(func(seed uint64) (float64, error) {
				x, y, z, err := simulate.Chain(tf.n, noise, seed)
				if err != nil {
					return 0, err
				}
				return copent.ConditionalIndependence(x, y, z, opts...)
			})
			if err != nil {
				return err
			}

			r := &report{Command: "ci"}
			r.add("noise", noise)
			r.add("samples", tf.n)
			r.add("analytic", 0.0)
			return a.finish(cmd, r, values)
		},
	}
	tf.register(cmd, 500)
	cmd.Flags().Float64Var(&noise, "noise", 0.5, "noise scale of x and y around z")

	return cmd
}

func newTECommand(a *app) *cobra.Command {
	var (
		tf       trialFlags
		coupling float64
		lag      int
	)
	cmd := &cobra.Command{
		Use:   "te",
		Short: "Transfer entropy y → x between coupled autoregressive series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.EstimatorOptions()
			var reverse []float64
			values, err := tf.runTrials(func(seed uint64) (float64, error) {
				x, y, err := simulate.CoupledAR(tf.n, coupling, seed)
				if err != nil {
					return 0, err
				}
				back, err := copent.TransferEntropy(y, x, lag, opts...)
				if err != nil {
					return 0, err
				}
				reverse = append(reverse, back)
				return copent.TransferEntropy(x, y, lag, opts...)
			})
			if err != nil {
				return err
			}

			r := &report{Command: "te"}
			r.add("coupling", coupling)
			r.add("lag", lag)
			r.add("samples", tf.n)
			r.add("reverse (x → y)", reverse[0])
			return a.finish(cmd, r, values)
		},
	}
	tf.register(cmd, 400)
	cmd.Flags().Float64Var(&coupling, "coupling", 0.9, "weight of y(t-1) in x(t)")
	cmd.Flags().IntVar(&lag, "lag", 1, "time lag")

	return cmd
}

func newMVNTCommand(a *app) *cobra.Command {
	var (
		tf  trialFlags
		rho float64
	)
	cmd := &cobra.Command{
		Use:   "mvnt",
		Short: "Multivariate normality statistic of a Gaussian pair",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.EstimatorOptions()
			var sampleRho float64
			values, err := tf.runTrials(func(seed uint64) (float64, error) {
				x, err := simulate.GaussianPair(tf.n, rho, seed)
				if err != nil {
					return 0, err
				}
				v, err := copent.MultivariateNormality(x, opts...)
				if err != nil || seed != tf.dataSeed {
					return v, err
				}
				sampleRho, err = correlation(x)
				return v, err
			})
			if err != nil {
				return err
			}

			r := &report{Command: "mvnt"}
			r.add("rho", rho)
			r.add("sample correlation", sampleRho)
			r.add("samples", tf.n)
			return a.finish(cmd, r, values)
		},
	}
	tf.register(cmd, 400)
	cmd.Flags().Float64Var(&rho, "rho", 0.5, "correlation of the Gaussian pair")

	return cmd
}

// correlation returns the Pearson correlation of the first two columns of x.
func correlation(x *matrix.Dense) (float64, error) {
	cov, err := matrix.Covariance(x)
	if err != nil {
		return 0, err
	}
	var c [3]float64
	for i, ij := range [3][2]int{{0, 1}, {0, 0}, {1, 1}} {
		if c[i], err = cov.At(ij[0], ij[1]); err != nil {
			return 0, err
		}
	}

	return c[0] / math.Sqrt(c[1]*c[2]), nil
}

func newTSTCommand(a *app) *cobra.Command {
	var (
		tf    trialFlags
		shift float64
		dim   int
	)
	cmd := &cobra.Command{
		Use:   "tst",
		Short: "Two-sample statistic between N(0, I) and N(shift, I) samples",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.EstimatorOptions()
			values, err := tf.runTrials(func(seed uint64) (float64, error) {
				s0, s1, err := simulate.ShiftedPair(tf.n, dim, shift, seed)
				if err != nil {
					return 0, err
				}
				return copent.TwoSample(s0, s1, opts...)
			})
			if err != nil {
				return err
			}

			r := &report{Command: "tst"}
			r.add("shift", shift)
			r.add("dimension", dim)
			r.add("samples per group", tf.n)
			r.add("repeats", a.cfg.TwoSample.Repeats)
			return a.finish(cmd, r, values)
		},
	}
	tf.register(cmd, 150)
	cmd.Flags().Float64Var(&shift, "shift", 1, "mean shift of the second sample")
	cmd.Flags().IntVar(&dim, "dim", 1, "dimension of each observation")

	return cmd
}
