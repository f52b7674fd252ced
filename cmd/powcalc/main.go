// Command powcalc evaluates x**y and explains the result.
//
// Usage:
//
//	powcalc [flags] <base> <exponent>
//
// Negative operands must follow "--" so they are not read as flags.
//
// Examples:
//
//	powcalc 2 10
//	powcalc -format yaml 10 400
//	powcalc -- -8 0.3333333333333333
//	powcalc -measure -samples 100000 -seed 7
//	powcalc -env
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"github.com/cwbudde/algo-pow/internal/cpu"
	"github.com/cwbudde/algo-pow/measure/accuracy"
	"github.com/cwbudde/algo-pow/pow"
	"github.com/cwbudde/algo-pow/report"
)

var errUsage = errors.New("expected <base> <exponent>")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("powcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := accuracy.DefaultConfig()
	format := fs.String("format", "text", "output format: text or yaml")
	measure := fs.Bool("measure", false, "measure pow accuracy against math.Pow instead of evaluating operands")
	samples := fs.Int("samples", defaults.Samples, "operand pairs drawn by -measure")
	seed := fs.Uint64("seed", defaults.Seed, "PCG seed used by -measure")
	env := fs.Bool("env", false, "print detected CPU floating-point features")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: powcalc [flags] <base> <exponent>\n\n")
		fmt.Fprintf(stderr, "Evaluates base**exponent and explains undefined or out-of-range results.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  powcalc 2 10\n")
		fmt.Fprintf(stderr, "  powcalc -format yaml 10 400\n")
		fmt.Fprintf(stderr, "  powcalc -- -8 0.5\n")
		fmt.Fprintf(stderr, "  powcalc -measure -samples 100000\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var w writer
	switch *format {
	case "text":
		w = textWriter{out: stdout}
	case "yaml":
		w = yamlWriter{out: stdout}
	default:
		fmt.Fprintf(stderr, "error: unknown format %q (want text or yaml)\n", *format)
		return 1
	}

	if !*env && !*measure && fs.NArg() == 0 {
		fmt.Fprintf(stderr, "error: %v\n", errUsage)
		fs.Usage()
		return 1
	}

	if *env {
		if err := w.env(cpu.DetectFeatures()); err != nil {
			return fail(stderr, err)
		}
	}

	if *measure {
		cfg := accuracy.DefaultConfig()
		cfg.Samples = *samples
		cfg.Seed = *seed
		res, err := accuracy.Run(cfg)
		if err != nil {
			return fail(stderr, err)
		}
		if err := w.accuracy(res); err != nil {
			return fail(stderr, err)
		}
	}

	if fs.NArg() == 0 {
		return 0
	}
	if fs.NArg() != 2 {
		fmt.Fprintf(stderr, "error: %v, got %d arguments\n", errUsage, fs.NArg())
		return 1
	}

	x, y, err := report.ParseOperands(fs.Arg(0), fs.Arg(1))
	if err != nil {
		return fail(stderr, err)
	}
	if err := w.evaluation(evaluate(x, y)); err != nil {
		return fail(stderr, err)
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}

// evaluation is one computed power with its explanation. Values are kept
// as strings because NaN and the infinities have no YAML/JSON number form.
type evaluation struct {
	Base     string        `json:"base"`
	Exponent string        `json:"exponent"`
	Result   string        `json:"result"`
	Bits     string        `json:"bits"`
	Class    report.Class  `json:"class"`
	Reason   report.Reason `json:"reason"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
}

func evaluate(x, y float64) evaluation {
	z := pow.Pow(x, y)
	o := report.Classify(x, y, z)
	return evaluation{
		Base:     strconv.FormatFloat(x, 'g', -1, 64),
		Exponent: strconv.FormatFloat(y, 'g', -1, 64),
		Result:   report.Format(z),
		Bits:     fmt.Sprintf("0x%016x", math.Float64bits(z)),
		Class:    o.Class,
		Reason:   o.Reason,
		Title:    o.Title,
		Message:  o.Message,
	}
}

type writer interface {
	evaluation(e evaluation) error
	accuracy(r accuracy.Result) error
	env(f cpu.Features) error
}

type textWriter struct {
	out io.Writer
}

func (t textWriter) evaluation(e evaluation) error {
	tw := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Base\tExponent\tResult\tClass\tTitle\tMessage\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t--------\t------\t-----\t-----\t-------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		e.Base, e.Exponent, e.Result, e.Class, e.Title, e.Message); err != nil {
		return fmt.Errorf("failed to write output row: %w", err)
	}
	return tw.Flush()
}

func (t textWriter) accuracy(r accuracy.Result) error {
	tw := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	rows := []struct {
		name  string
		value string
	}{
		{"Samples", strconv.Itoa(r.Config.Samples)},
		{"Seed", strconv.FormatUint(r.Config.Seed, 10)},
		{"Base range", fmt.Sprintf("[%g, %g]", r.Config.MinBase, r.Config.MaxBase)},
		{"Exponent range", fmt.Sprintf("[%g, %g]", r.Config.MinExponent, r.Config.MaxExponent)},
		{"Max ULP", strconv.FormatUint(r.MaxULP, 10)},
		{"Mean ULP", fmt.Sprintf("%.4f", r.MeanULP)},
		{"Bit-identical", fmt.Sprintf("%d (%.2f%%)", r.Identical, 100*float64(r.Identical)/float64(r.Config.Samples))},
		{"Worst operands", fmt.Sprintf("%g ** %g", r.WorstBase, r.WorstExponent)},
		{"Approx max rel err", fmt.Sprintf("%.3e", r.ApproxMaxRelErr)},
		{"Approx mean rel err", fmt.Sprintf("%.3e", r.ApproxMeanRelErr)},
		{"Host FMA", strconv.FormatBool(r.HostFMA)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row.name, row.value); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

func (t textWriter) env(f cpu.Features) error {
	_, err := fmt.Fprintf(t.out, "cpu: %s\n", f)
	return err
}

type yamlWriter struct {
	out io.Writer
}

func (y yamlWriter) evaluation(e evaluation) error {
	return y.write(e)
}

func (y yamlWriter) accuracy(r accuracy.Result) error {
	return y.write(r)
}

func (y yamlWriter) env(f cpu.Features) error {
	return y.write(map[string]any{
		"architecture": f.Architecture,
		"fma":          f.HasFMA,
		"avx2":         f.HasAVX2,
		"neon":         f.HasNEON,
	})
}

// write emits v as a standalone YAML document so that -env, -measure and an
// evaluation can share one stream.
func (y yamlWriter) write(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if _, err := fmt.Fprintf(y.out, "---\n%s", data); err != nil {
		return err
	}
	return nil
}
