package commands

import (
	"bufio"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Merge implements the 'twmerge merge' command. Each argument is merged on its
// own; with no arguments every line of stdin is.
func Merge(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	var ef engineFlags
	ef.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := ef.setup()
	if err != nil {
		return err
	}

	if fs.NArg() > 0 {
		for _, classes := range fs.Args() {
			if _, err := fmt.Fprintln(stdout, s.engine.Merge(classes)); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lines := 0
	for scanner.Scan() {
		lines++
		if _, err := fmt.Fprintln(stdout, s.engine.Merge(scanner.Text())); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	stats := s.engine.Stats()
	s.log.Debug("Merged stdin",
		zap.Int("lines", lines),
		zap.Uint64("cache_hits", stats.Hits),
		zap.Uint64("cache_misses", stats.Misses),
	)
	return nil
}
