package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/agiangrant/twmerge/internal/lint"
)

// ErrFindings is returned by Lint when at least one redundant class was found.
var ErrFindings = errors.New("redundant classes found")

// Lint implements the 'twmerge lint' command
func Lint(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	var ef engineFlags
	ef.register(fs)
	watch := fs.Bool("watch", false, "Watch the files and re-lint on change")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no files given")
	}

	s, err := ef.setup()
	if err != nil {
		return err
	}
	linter := lint.New(s.engine, s.log)

	if *watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		fmt.Fprintln(stdout, "Watching for changes... Press Ctrl+C to stop")
		return linter.Watch(ctx, fs.Args(), func(file string, findings []lint.Finding, err error) {
			if err != nil {
				fmt.Fprintf(stdout, "Error: %v\n", err)
				return
			}
			report(stdout, file, findings)
		})
	}

	findings, err := linter.ScanFiles(fs.Args())
	if err != nil {
		return err
	}
	for _, f := range findings {
		fmt.Fprintln(stdout, f)
	}
	if len(findings) > 0 {
		return fmt.Errorf("%w: %d in %d file(s)", ErrFindings, len(findings), fs.NArg())
	}
	fmt.Fprintln(stdout, "✓ No redundant classes")
	return nil
}

func report(w io.Writer, file string, findings []lint.Finding) {
	if len(findings) == 0 {
		fmt.Fprintf(w, "✓ %s\n", file)
		return
	}
	for _, f := range findings {
		fmt.Fprintln(w, f)
	}
}
