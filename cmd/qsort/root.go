package main

import (
	"bufio"
	"cmp"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/histdb/qsort"
	"github.com/histdb/qsort/check"
	"github.com/histdb/qsort/sizeof"
)

type config struct {
	numeric  bool
	reverse  bool
	byLength bool
	check    bool
	verbose  bool
	cutoff   int

	log *zap.Logger
}

func newRootCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "qsort [file]",
		Short:         "sort lines of text",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg.log, err = newLogger(cfg.verbose)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				fh, err := os.Open(args[0])
				if err != nil {
					return errs.Wrap(err)
				}
				defer func() { _ = fh.Close() }()
				in = fh
			}
			return run(cfg, in, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.numeric, "numeric", "n", false, "compare lines by their leading numeric value")
	flags.BoolVarP(&cfg.reverse, "reverse", "r", false, "reverse the result of comparisons")
	flags.BoolVarP(&cfg.byLength, "by-length", "l", false, "compare lines by their length")
	flags.BoolVar(&cfg.check, "check", false, "verify the output is an ordered permutation of the input")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log debug information to stderr")
	flags.IntVar(&cfg.cutoff, "cutoff", 0, "insertion sort cutoff (0 for the default)")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := zc.Build()
	return log, errs.Wrap(err)
}

// less builds the line comparator selected by the flags.
func (cfg *config) less() func(a, b string) bool {
	var less func(a, b string) bool
	switch {
	case cfg.numeric:
		less = func(a, b string) bool { return cmp.Less(numericKey(a), numericKey(b)) }
	case cfg.byLength:
		less = func(a, b string) bool { return len(a) < len(b) }
	default:
		less = cmp.Less[string]
	}
	if cfg.reverse {
		fwd := less
		less = func(a, b string) bool { return fwd(b, a) }
	}
	return less
}

// numericKey parses the leading number of a line. Lines that do not start
// with a number get NaN, which cmp.Less orders first.
func numericKey(line string) float64 {
	field := strings.TrimSpace(line)
	if i := strings.IndexAny(field, " \t"); i >= 0 {
		field = field[:i]
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func readLines(r io.Reader) (lines []string, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, errs.Wrap(sc.Err())
}

func run(cfg *config, in io.Reader, out io.Writer) error {
	log := cfg.log

	lines, err := readLines(in)
	if err != nil {
		return err
	}
	log.Debug("read input",
		zap.Int("lines", len(lines)),
		zap.Uint64("bytes", sizeof.Slice(lines)))

	var before check.Digest
	if cfg.check {
		for _, line := range lines {
			before.AddString(line)
		}
	}

	less := cfg.less()
	calls := 0
	counted := func(a, b string) bool { calls++; return less(a, b) }

	start := time.Now()
	qsort.Sorter[string]{
		Config: qsort.Config{IndirectCutoff: cfg.cutoff},
		Less:   counted,
	}.Sort(lines)

	log.Debug("sorted",
		zap.Int("comparisons", calls),
		zap.Duration("duration", time.Since(start)))

	if cfg.check {
		var after check.Digest
		for _, line := range lines {
			after.AddString(line)
		}
		if err := errs.Combine(check.Sorted(lines, less), check.Same(&before, &after)); err != nil {
			return err
		}
		log.Debug("output verified")
	}

	bw := bufio.NewWriter(out)
	for _, line := range lines {
		_, _ = bw.WriteString(line)
		_ = bw.WriteByte('\n')
	}
	return errs.Wrap(bw.Flush())
}
