package main

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	algofwt "github.com/cwbudde/algo-fwt"
	"github.com/cwbudde/algo-fwt/internal/cpu"
	m "github.com/cwbudde/algo-fwt/internal/math"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fwt",
		Short:         "Fast Walsh Transforms of numeric sequences",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTransformCmd(algofwt.OrderSequency),
		newTransformCmd(algofwt.OrderHadamard),
		newRoundtripCmd(),
		newScaleCmd(),
		newInfoCmd(),
	)

	return root
}

type transformOptions struct {
	integer bool
	scale   bool
	pad     bool
}

func newTransformCmd(ordering algofwt.Ordering) *cobra.Command {
	var opts transformOptions

	cmd := &cobra.Command{
		Use:   ordering.String() + " VALUE...",
		Short: fmt.Sprintf("Print the %s-ordered Walsh transform", ordering),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.integer {
				return runTransform(cmd.OutOrStdout(), args, ordering, opts, parseInt)
			}

			return runTransform(cmd.OutOrStdout(), args, ordering, opts, parseFloat)
		},
	}

	cmd.Flags().BoolVar(&opts.integer, "int", false, "parse values as 64-bit integers")
	cmd.Flags().BoolVar(&opts.scale, "scale", false, "divide the coefficients by the sequence length")
	cmd.Flags().BoolVar(&opts.pad, "pad", false, "append zeros up to the next power of two")
	// Flags must precede the values; see escapeNegativeValues.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newRoundtripCmd() *cobra.Command {
	var orderingName string

	cmd := &cobra.Command{
		Use:   "roundtrip VALUE...",
		Short: "Apply a transform twice and scale, recovering the input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ordering, err := algofwt.ParseOrdering(orderingName)
			if err != nil {
				return err
			}

			v, err := parseValues(args, parseFloat)
			if err != nil {
				return err
			}

			plan, err := algofwt.NewPlan[float64](len(v), ordering)
			if err != nil {
				return err
			}

			if err := plan.InPlace(v); err != nil {
				return err
			}

			if err := plan.InPlace(v); err != nil {
				return err
			}

			out, err := algofwt.Scale(v)
			if err != nil {
				return err
			}

			return printValues(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&orderingName, "ordering", algofwt.OrderSequency.String(), "sequency or hadamard")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale VALUE...",
		Short: "Divide every value by the number of values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValues(args, parseFloat)
			if err != nil {
				return err
			}

			out, err := algofwt.Scale(v)
			if err != nil {
				return err
			}

			return printValues(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print version and CPU information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			_, err := fmt.Fprintf(w, "fwt %s (%s)\ncpu: %s\ncpus: %d\n",
				version, runtime.Version(), cpu.DetectFeatures(), runtime.NumCPU())

			return err
		},
	}
}

// escapeNegativeValues inserts "--" before a negative number that would
// otherwise be parsed as a shorthand flag, so "fwt sequency -1 2" reads -1
// as a value. Only the flags of the subcommand are scanned: once a value or
// an explicit "--" is seen, pflag already treats the rest as values.
func escapeNegativeValues(root *cobra.Command, args []string) []string {
	cmd, rest, err := root.Find(args)
	if err != nil || cmd == root {
		return args
	}

	offset := len(args) - len(rest)
	flags := cmd.Flags()

	for i := 0; i < len(rest); i++ {
		arg := rest[i]

		switch {
		case arg == "--":
			return args
		case isNegativeNumber(arg):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:offset+i]...)
			out = append(out, "--")

			return append(out, args[offset+i:]...)
		case strings.HasPrefix(arg, "-"):
			if takesValue(flags, arg) {
				i++
			}
		default:
			return args
		}
	}

	return args
}

// takesValue reports whether arg names a flag whose value is the next
// argument, as in "--ordering hadamard".
func takesValue(flags *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag

	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = flags.Lookup(name)
	} else if len(arg) == 2 {
		f = flags.ShorthandLookup(arg[1:])
	}

	return f != nil && f.NoOptDefVal == ""
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}

	field, _, _ := strings.Cut(arg, ",")
	_, err := strconv.ParseFloat(strings.TrimSpace(field), 64)

	return err == nil
}

func runTransform[T algofwt.Number](w io.Writer, args []string, ordering algofwt.Ordering, opts transformOptions, parse func(string) (T, error)) error {
	v, err := parseValues(args, parse)
	if err != nil {
		return err
	}

	if opts.pad {
		v = append(v, make([]T, m.NextPowerOfTwo(len(v))-len(v))...)
	}

	var coeffs []T

	switch ordering {
	case algofwt.OrderSequency:
		coeffs, err = algofwt.Sequency(v)
	case algofwt.OrderHadamard:
		coeffs, err = algofwt.Hadamard(v)
	default:
		err = fmt.Errorf("%w: %d", algofwt.ErrInvalidOrdering, ordering)
	}

	if err != nil {
		return err
	}

	if opts.scale {
		scaled, err := algofwt.Scale(coeffs)
		if err != nil {
			return err
		}

		return printValues(w, scaled)
	}

	return printValues(w, coeffs)
}

func parseValues[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(args))

	for _, arg := range args {
		// Allow "1,2,3" as well as separate arguments.
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}

			x, err := parse(field)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", field, err)
			}

			out = append(out, x)
		}
	}

	return out, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func printValues[T any](w io.Writer, values []T) error {
	parts := make([]string, len(values))
	for i, x := range values {
		parts[i] = fmt.Sprint(x)
	}

	_, err := fmt.Fprintln(w, strings.Join(parts, " "))

	return err
}
