package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/korjavin/nutricheck/internal/intake"
	"github.com/korjavin/nutricheck/internal/nutrient"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr))
}

// run executes one interactive check and returns the process exit code:
// 0 on success, 1 when an answer is rejected or input fails, 2 on bad usage.
func run(args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nutricheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log every accepted answer to stderr")
	level := fs.String("log-level", "", "log level on stderr: debug, info, warn, error (default $LOG_LEVEL, off when unset)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(stderr, "usage: nutricheck [-v] [-log-level level]")
		return 2
	}

	logger, err := newLogger(stderr, *verbose, *level, getenv("LOG_LEVEL"))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	slog.SetDefault(logger)

	slog.Debug("starting nutrient check")

	sub, err := intake.NewCollector(stdin, stdout).Collect()
	if err != nil {
		slog.Info("check aborted", "error", err)
		fmt.Fprintln(stderr, intake.Message(err))
		return 1
	}

	results := nutrient.Evaluate(sub)
	if err := nutrient.WriteReport(stdout, results); err != nil {
		slog.Error("write report failed", "error", err)
		fmt.Fprintln(stderr, intake.Message(err))
		return 1
	}

	slog.Info("check complete",
		"product", sub.ProductName,
		"type", sub.ProductType,
		"serving_size", sub.ServingSize,
	)
	return 0
}

// newLogger builds a text logger on w. The flag level wins over the
// environment; -v alone means debug. With no level at all, logs are
// discarded so stderr only ever carries the one-line error message.
func newLogger(w io.Writer, verbose bool, flagLevel, envLevel string) (*slog.Logger, error) {
	name := flagLevel
	if name == "" {
		name = envLevel
	}
	if name == "" && verbose {
		name = "debug"
	}
	if name == "" {
		return slog.New(slog.DiscardHandler), nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
