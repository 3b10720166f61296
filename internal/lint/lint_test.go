package lint

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twmerge/tw"
)

const page = `<!doctype html>
<html>
<body class="min-h-screen">
  <div class="p-2 flex p-4">
    <button class="px-2 py-1 p-3 hover:bg-red-500 hover:bg-red-600">Save</button>
    <span class="text-sm">ok</span>
  </div>
</body>
</html>`

func TestScan(t *testing.T) {
	l := New(tw.New(), nil)

	findings, err := l.Scan(strings.NewReader(page), "page.html")
	require.NoError(t, err)
	require.Len(t, findings, 2)

	assert.Equal(t, "div", findings[0].Element)
	assert.Equal(t, []string{"p-2"}, findings[0].Dropped)
	assert.Equal(t, "flex p-4", findings[0].Merged)

	assert.Equal(t, "button", findings[1].Element)
	assert.Equal(t, []string{"px-2", "py-1", "hover:bg-red-500"}, findings[1].Dropped)
	assert.Equal(t, "p-3 hover:bg-red-600", findings[1].Merged)
	assert.Contains(t, findings[1].String(), "page.html: <button")
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	clean := filepath.Join(dir, "clean.html")
	dirty := filepath.Join(dir, "dirty.html")
	require.NoError(t, os.WriteFile(clean, []byte(`<p class="text-sm font-bold">x</p>`), 0644))
	require.NoError(t, os.WriteFile(dirty, []byte(page), 0644))

	l := New(tw.New(), nil)
	findings, err := l.ScanFiles([]string{clean, dirty})
	require.NoError(t, err)
	assert.Len(t, findings, 2)
	for _, f := range findings {
		assert.Equal(t, dirty, f.File)
	}

	_, err = l.ScanFiles([]string{filepath.Join(dir, "missing.html")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDroppedClasses(t *testing.T) {
	tests := []struct {
		name     string
		original string
		merged   string
		want     []string
	}{
		{"nothing dropped", "a b c", "a b c", nil},
		{"first dropped", "p-2 p-4", "p-4", []string{"p-2"}},
		{"duplicates", "x p-2 x p-4", "x x p-4", []string{"p-2"}},
		{"repeated class", "p-4 p-4", "p-4", []string{"p-4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, droppedClasses(strings.Fields(tt.original), strings.Fields(tt.merged)))
		})
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<div class="p-4"></div>`), 0644))

	type scan struct {
		findings []Finding
		err      error
	}
	scans := make(chan scan, 16)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- New(tw.New(), nil).Watch(ctx, []string{path}, func(_ string, findings []Finding, err error) {
			scans <- scan{findings, err}
		})
	}()

	select {
	case s := <-scans:
		require.NoError(t, s.err)
		assert.Empty(t, s.findings)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial scan")
	}

	require.NoError(t, os.WriteFile(path, []byte(`<div class="p-2 p-4"></div>`), 0644))

	deadline := time.After(5 * time.Second)
	for found := false; !found; {
		select {
		case s := <-scans:
			// a write may be reported before the content is complete
			if s.err == nil && len(s.findings) == 1 {
				assert.Equal(t, []string{"p-2"}, s.findings[0].Dropped)
				found = true
			}
		case <-deadline:
			t.Fatal("change was not rescanned")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
