// Command holozero enumerates, with certification, all zeros of a built-in
// holomorphic map ℂ² → ℂ² inside a box given on the command line.
package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/holozero/holozero/bisect"
	"github.com/holozero/holozero/box"
	"github.com/holozero/holozero/interval"
	"github.com/holozero/holozero/oracle"
)

const longHelp = `Find all zeros of a holomorphic map C^2 -> C^2 in a domain by combining
bisection with the interval Newton method.

The domain is given after the options as eight decimal endpoints:

  inf(Re z1) sup(Re z1) inf(Im z1) sup(Im z1) inf(Re z2) sup(Re z2) inf(Im z2) sup(Im z2)

Each certified zero is printed as one semicolon-separated line of the same
eight endpoints. Endpoints are parsed in arbitrary precision and rounded
outward, so the search domain always contains the decimal box you asked for.

Example:

  holozero -v -F identity -- -1 1 -2 2 -3 3 -4 4

finds all zeros of the identity map in [-1,1]+i[-2,2] x [-3,3]+i[-4,4],
printing per-level progress.`

// runConfig carries the flag values of one invocation.
type runConfig struct {
	param    string
	width    string
	maxSteps int
	verbose  bool
	finals   bool
	function string
	workers  int
}

// addFlags binds the flag set. Spellings follow the original tool: -p, -w,
// -s, -v and -f keep their meanings; -F and -j are additions.
func addFlags(fs *pflag.FlagSet, cfg *runConfig) {
	fs.StringVarP(&cfg.param, "param", "p", "0", "centre of the scalar parameter interval")
	fs.StringVarP(&cfg.width, "width", "w", "0", "width added to the parameter supremum")
	fs.IntVarP(&cfg.maxSteps, "steps", "s", bisect.Unbounded, "maximum number of bisection levels, -1 for unbounded")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "print per-level progress")
	fs.BoolVarP(&cfg.finals, "final-intervals", "f", false, "print undecided boxes at the end instead of zeros")
	fs.StringVarP(&cfg.function, "function", "F", "hhg", "built-in map to search, one of: "+strings.Join(oracle.Names(), ", "))
	fs.IntVarP(&cfg.workers, "workers", "j", 0, "worker goroutines, 0 for one per hardware thread")
}

func newRootCmd() *cobra.Command {
	cfg := &runConfig{}
	cmd := &cobra.Command{
		Use:           "holozero [flags] -- domain...",
		Short:         "certified zeros of holomorphic maps on boxes of C^2",
		Long:          longHelp,
		Args:          cobra.ExactArgs(8),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cfg, args)
		},
	}
	addFlags(cmd.Flags(), cfg)
	return cmd
}

func run(out io.Writer, cfg *runConfig, args []string) error {
	domain, err := parseDomain(args)
	if err != nil {
		return err
	}
	param, err := parseParameter(cfg.param, cfg.width)
	if err != nil {
		return err
	}
	f, err := oracle.Lookup(cfg.function)
	if err != nil {
		return fmt.Errorf("%w: %q (available: %s)", oracle.ErrUnknownFunc, cfg.function, strings.Join(oracle.Names(), ", "))
	}

	opts := []bisect.Option{
		bisect.WithMaxSteps(cfg.maxSteps),
		bisect.WithParameter(param),
	}
	if cfg.workers > 0 {
		opts = append(opts, bisect.WithWorkers(cfg.workers))
	}
	if !cfg.finals {
		opts = append(opts, bisect.WithOnZero(func(b box.Box) {
			printBox(out, b)
		}))
	}
	if cfg.verbose && !cfg.finals {
		opts = append(opts, bisect.WithOnStep(func(s bisect.StepStats) {
			fmt.Fprintf(out, "Step %d\n", s.Step)
			fmt.Fprintf(out, "Parts done: %d, parts left: %d\n", s.Done, s.Left)
			fmt.Fprintf(out, "Parts discarded from enclosure: %d\n", s.DiscardedEnclosure)
			fmt.Fprintf(out, "Parts discarded from Newton: %d\n", s.DiscardedNewton)
			fmt.Fprintf(out, "Parts failed: %d\n", s.Failed)
		}))
	}

	res, err := bisect.Find(f, domain, opts...)
	if err != nil {
		return err
	}

	if cfg.finals {
		for _, b := range res.Residual {
			printBox(out, b)
		}
		return nil
	}

	if res.StepLimited {
		fmt.Fprintln(out)
		color.New(color.FgYellow).Fprintln(out, "Maximum number of steps reached")
		fmt.Fprintf(out, "Parts left: %d\n", len(res.Residual))
		fmt.Fprintf(out, "Percentage of original domain: %s\n", formatFloat(res.Fraction()))
	}
	color.New(color.FgGreen).Fprintf(out, "Zeros found: %d\n", res.ZerosFound())
	fmt.Fprintf(out, "Number of bisections: %d\n", res.Bisections)
	return nil
}

// parseDomain reads the eight positional endpoints into a box.
func parseDomain(args []string) (box.Box, error) {
	pairs := make([]interval.Interval, 4)
	for i := range pairs {
		iv, err := interval.FromStrings(args[2*i], args[2*i+1])
		if err != nil {
			return box.Box{}, fmt.Errorf("domain endpoints %q, %q: %w", args[2*i], args[2*i+1], err)
		}
		pairs[i] = iv
	}
	return box.New(
		box.NewComplex(pairs[0], pairs[1]),
		box.NewComplex(pairs[2], pairs[3]),
	), nil
}

// parseParameter builds the scalar interval [p, p+w].
func parseParameter(p, w string) (interval.Interval, error) {
	pi, err := interval.Parse(p)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("parameter: %w", err)
	}
	wi, err := interval.Parse(w)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("parameter width: %w", err)
	}
	return interval.New(pi.Lo, pi.Add(wi).Hi)
}

// printBox writes one semicolon-separated output line of eight endpoints.
func printBox(out io.Writer, b box.Box) {
	vals := [8]float64{
		b.Z1.Re.Lo, b.Z1.Re.Hi, b.Z1.Im.Lo, b.Z1.Im.Hi,
		b.Z2.Re.Lo, b.Z2.Re.Hi, b.Z2.Im.Lo, b.Z2.Im.Hi,
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatFloat(v)
	}
	fmt.Fprintln(out, strings.Join(parts, "; "))
}

// formatFloat renders with the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
