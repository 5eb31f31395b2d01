// Command jf filters a file of JSON records.
//
// The input is either a JSON array or newline delimited JSON.  Records whose
// petal.length is not greater than the --length threshold are dropped, the
// variety field is removed unless --variety is given, and the result is
// written as an indented JSON array to the --output file and/or stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arnodel/jsonfilter/internal/format"
	"github.com/arnodel/jsonfilter/internal/logger"
	"github.com/arnodel/jsonfilter/pipeline"
)

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see run).
	signal.Ignore(syscall.SIGPIPE)

	// Display a stack trace on panic
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", e, debug.Stack())
			os.Exit(2)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the command line flags which are not part of the pipeline
// configuration.
type options struct {
	colorMode string
	verbose   bool
}

// run executes the command with the given arguments and returns the process
// exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var cfg pipeline.Config
	var opts options
	var runErr error

	cmd := newRootCmd(&cfg, &opts, func(cmd *cobra.Command) {
		runErr = execute(cmd, cfg, opts, stdout, stderr)
	})
	if args == nil {
		// cobra would fall back to os.Args
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	if runErr != nil {
		if errors.Is(runErr, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or 'less').
			// In this case we don't want to complain.
			return 0
		}
		fmt.Fprintln(stderr, pipeline.Message(runErr))
		return 1
	}
	return 0
}

func newRootCmd(cfg *pipeline.Config, opts *options, action func(*cobra.Command)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jf -i FILE [-o FILE] [-d] [-v] [-l LENGTH]",
		Short: "Filter JSON records by petal length",
		Long: `jf reads records from a JSON array or newline delimited JSON file, keeps
those whose petal.length is greater than the --length threshold, removes the
variety field unless --variety is given and writes the result as an indented
JSON array.

Without --output or --display nothing is written: the input is only checked.

Examples:
  # Show records with a petal longer than 1.5
  jf -i iris.json -l 1.5 -d

  # Keep the variety field and write the result to a file
  jf -i iris.ndjson -v -o long-petals.json -l 4`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			cfg.HasLength = cmd.Flags().Changed("length")
			action(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.InputPath, "input", "i", "", "input file (JSON array or NDJSON)")
	flags.StringVarP(&cfg.OutputPath, "output", "o", "", "output file")
	flags.BoolVarP(&cfg.Display, "display", "d", false, "print the result to stdout")
	flags.BoolVarP(&cfg.IncludeVariety, "variety", "v", false, "keep the variety field")
	flags.StringVarP(&cfg.Length, "length", "l", "", "keep only records with petal.length greater than `LENGTH`")
	flags.StringVar(&opts.colorMode, "color", "auto", "colorize displayed output: auto, always, never")
	flags.BoolVar(&opts.verbose, "verbose", false, "log the pipeline stages to stderr")
	return cmd
}

func execute(cmd *cobra.Command, cfg pipeline.Config, opts options, stdout, stderr io.Writer) error {
	terminal := isTerminal(stdout)

	// Handle color mode
	var colorizer *format.Colorizer
	switch opts.colorMode {
	case "always":
		colorizer = &format.DefaultColorizer
	case "never":
	case "auto":
		if terminal {
			colorizer = &format.DefaultColorizer
		}
	default:
		return fmt.Errorf("invalid --color value: %q (use auto, always, or never)", opts.colorMode)
	}

	// Set up stdout for handling colors
	if f, ok := stdout.(*os.File); ok && colorizer != nil {
		stdout = colorable.NewColorable(f)
	}

	log := logger.New(logger.Options{
		Verbose: opts.verbose,
		Writer:  stderr,
		NoColor: !isTerminal(stderr),
	})
	if extra := cmd.Flags().Args(); len(extra) > 0 {
		log.Debug().Strs("args", extra).Msg("ignoring extra arguments")
	}

	p := &pipeline.Pipeline{
		Config:    cfg,
		Stdout:    stdout,
		Colorizer: colorizer,
		Logger:    &log,
	}
	return p.Run()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
