// Package lint finds class attributes in HTML documents that contain classes
// overridden by later classes in the same attribute.
package lint

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Merger resolves class conflicts. *tw.Engine satisfies it.
type Merger interface {
	Merge(args ...any) string
}

// Finding is one element whose class attribute carries dropped classes.
type Finding struct {
	File    string
	Element string
	Class   string
	Merged  string
	Dropped []string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: <%s class=%q> drops %s (merged: %q)",
		f.File, f.Element, f.Class, strings.Join(f.Dropped, " "), f.Merged)
}

// Linter scans HTML for redundant utility classes.
type Linter struct {
	merger Merger
	logger *zap.Logger
}

// New creates a Linter.
func New(merger Merger, logger *zap.Logger) *Linter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Linter{merger: merger, logger: logger}
}

// Scan parses one HTML document and returns its findings in document order.
func (l *Linter) Scan(r io.Reader, name string) ([]Finding, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	var findings []Finding
	elements := 0
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		elements++
		class, _ := s.Attr("class")
		merged := l.merger.Merge(class)
		dropped := droppedClasses(strings.Fields(class), strings.Fields(merged))
		if len(dropped) == 0 {
			return
		}
		findings = append(findings, Finding{
			File:    name,
			Element: goquery.NodeName(s),
			Class:   class,
			Merged:  merged,
			Dropped: dropped,
		})
	})

	l.logger.Debug("Scanned document",
		zap.String("file", name),
		zap.Int("elements", elements),
		zap.Int("findings", len(findings)),
	)
	return findings, nil
}

// ScanFile scans the HTML file at path.
func (l *Linter) ScanFile(path string) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return l.Scan(f, path)
}

// ScanFiles scans the paths concurrently. Findings are returned in path order.
func (l *Linter) ScanFiles(paths []string) ([]Finding, error) {
	results := make([][]Finding, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			findings, err := l.ScanFile(path)
			results[i] = findings
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Finding
	for _, findings := range results {
		all = append(all, findings...)
	}
	return all, nil
}

// droppedClasses returns the tokens of original missing from merged. merged
// is always an ordered subsequence of original.
func droppedClasses(original, merged []string) []string {
	var dropped []string
	j := 0
	for _, token := range original {
		if j < len(merged) && merged[j] == token {
			j++
			continue
		}
		dropped = append(dropped, token)
	}
	return dropped
}
