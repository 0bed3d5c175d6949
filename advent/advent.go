package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/felixge/fgprof"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd(loadConfig()).Execute(); err != nil {
		log.Fatal(err)
	}
}

// errMismatch is returned when --check finds a wrong answer. The details
// have already been printed.
var errMismatch = errors.New("some answers did not match")

type options struct {
	input       string
	debug       bool
	stats       bool
	fgprof      string
	check       bool
	interactive bool
}

func newRootCmd(cfg config) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "advent [flags] solution...",
		Short:         "Run Advent of Code 2024 solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		ValidArgs:     solutionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !opts.interactive {
				printUsage(cmd.ErrOrStderr())
				os.Exit(1)
			}
			if opts.debug {
				setDebug(true)
			}
			r := &runner{cfg: cfg, opts: opts, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}
			if opts.check {
				answers, err := loadAnswers(cfg.answersPath)
				if err != nil {
					return err
				}
				r.answers = answers
			}
			if opts.fgprof != "" {
				stop, err := startProfile(opts.fgprof)
				if err != nil {
					return err
				}
				defer func() {
					if err := stop(); err != nil {
						log.Println("Error writing profile:", err)
					}
				}()
			}
			if opts.interactive {
				return r.interactive()
			}
			return r.runAll(args)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "f", "", "input file (default $ADVENT_INPUT_DIR/dayN.txt, or stdin)")
	flags.BoolVar(&opts.debug, "debug", false, "check internal invariants and log traces to stderr")
	flags.BoolVar(&opts.stats, "stats", false, "print time and memory usage to stderr")
	flags.StringVar(&opts.fgprof, "fgprof", "", "write an fgprof profile to `file`")
	flags.BoolVar(&opts.check, "check", false, "compare results against the answer key")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "read solution names from a prompt")
	return cmd
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s [flags] [solution...]\n", os.Args[0])
	fmt.Fprintln(w, "where solution is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintln(w, name)
	}
}

func startProfile(name string) (stop func() error, err error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		err := stopProfile()
		if err1 := f.Close(); err == nil {
			err = err1
		}
		return err
	}, nil
}

type runner struct {
	cfg     config
	opts    options
	answers answerKey
	out     io.Writer
	errOut  io.Writer
	stdin   io.Reader // for tests; nil means os.Stdin

	stdinInput *string // stdin is read at most once
}

func (r *runner) runAll(names []string) error {
	var mismatch bool
	for _, name := range names {
		if err := r.run(name); err != nil {
			if errors.Is(err, errMismatch) {
				mismatch = true
				continue
			}
			return err
		}
	}
	if mismatch {
		return errMismatch
	}
	return nil
}

func (r *runner) run(name string) error {
	fn, ok := solutions[name]
	if !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	input, err := r.readInput(name)
	if err != nil {
		return err
	}
	start := time.Now()
	got := fn(input)
	elapsed := time.Since(start)
	fmt.Fprintf(r.out, "%s: %d\n", name, got)
	if r.opts.stats {
		stats, err := currentProcessStats(elapsed)
		if err != nil {
			log.Println("Error reading process stats:", err)
		} else {
			stats.inputBytes = int64(len(input))
			fmt.Fprintf(r.errOut, "%s: %s\n", name, stats)
		}
	}
	if r.answers != nil {
		want, ok := r.answers[name]
		if !ok {
			fmt.Fprintf(r.errOut, "%s: no known answer\n", name)
			return nil
		}
		if got != want {
			fmt.Fprintf(r.errOut, "%s: got %d; want %d\n", name, got, want)
			return errMismatch
		}
	}
	return nil
}

// readInput finds the input for the named solution: the --input file if
// given, then dayN.txt in the configured input directory, then stdin.
func (r *runner) readInput(name string) (string, error) {
	path := r.opts.input
	if path == "" && r.cfg.inputDir != "" {
		day, _ := splitName(name)
		path = r.cfg.inputPath(day)
	}
	if path == "" {
		if r.stdinInput != nil {
			return *r.stdinInput, nil
		}
		stdin := r.stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		s := string(b)
		r.stdinInput = &s
		return s, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading input for %s: %w", name, err)
	}
	return string(b), nil
}

var solutions = make(map[string]func(string) int)

func register(name string, fn func(string) int) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
