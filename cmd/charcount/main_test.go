package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npo-hokage/charcount/internal/charcount/common/clock"
	"github.com/npo-hokage/charcount/internal/charcount/config"
	"github.com/npo-hokage/charcount/internal/charcount/repos/content"
)

const footer = "No Space: Body chars without whitespace\n" +
	"Body(w/Space): Body chars with whitespace\n" +
	"Total(Raw): Total file chars\n"

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
}

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)

	app, err := buildApplication(cfg)
	require.NoError(t, err)
	app.clock = clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return app
}

func TestRun_DefaultDirectory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "website", "content", "services"), map[string]string{
		"a.md": "---\ntitle: X\n---\nHello world\n",
	})
	t.Chdir(root)

	var out bytes.Buffer
	require.NoError(t, newTestApplication(t).Run(context.Background(), &out))

	want := "File Name,No Space,Body(w/Space),Total(Raw)\n" +
		"a.md,10,12,29\n" +
		footer
	assert.Equal(t, want, out.String())
}

func TestRun_SortedRowsAndFiltering(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"support.md": "---\ntitle: 就労支援\n---\n就労支援\u3000について\n",
		"about.md":   "About us",
		"Contact.md": "---\ntitle: C\n---\n",
		"notes.txt":  "ignored",
		".hidden.md": "ignored",
		"copy-of.md": "About us",
		"crlf.md":    "---\r\ntitle: X\r\n---\r\nHi there\r\n",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	writeFiles(t, filepath.Join(dir, "nested"), map[string]string{"deep.md": "ignored"})
	t.Setenv("CHARCOUNT_CONTENT_DIR", dir)

	var out bytes.Buffer
	app := newTestApplication(t)
	require.NoError(t, app.Run(context.Background(), &out))

	want := "File Name,No Space,Body(w/Space),Total(Raw)\n" +
		"Contact.md,0,0,17\n" +
		"about.md,7,8,8\n" +
		"copy-of.md,7,8,8\n" +
		"crlf.md,7,9,26\n" +
		"support.md,8,10,30\n" +
		footer
	assert.Equal(t, want, out.String())
	assert.Equal(t, uint64(1), app.analyzer.CacheStats().Hits)
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.md": "---\na: 1\n---\nbody text\n",
		"a.md": "plain",
	})
	t.Setenv("CHARCOUNT_CONTENT_DIR", dir)

	var first, second bytes.Buffer
	require.NoError(t, newTestApplication(t).Run(context.Background(), &first))
	require.NoError(t, newTestApplication(t).Run(context.Background(), &second))
	assert.Equal(t, first.String(), second.String())
}

func TestRun_MissingDirectoryPrintsEmptyReport(t *testing.T) {
	t.Setenv("CHARCOUNT_CONTENT_DIR", filepath.Join(t.TempDir(), "absent"))

	var out bytes.Buffer
	require.NoError(t, newTestApplication(t).Run(context.Background(), &out))
	assert.Equal(t, "File Name,No Space,Body(w/Space),Total(Raw)\n"+footer, out.String())
}

func TestRun_StopsOnUndecodableFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md": "fine",
		"b.md": "caf\xe9",
		"c.md": "never reached",
	})
	t.Setenv("CHARCOUNT_CONTENT_DIR", dir)

	var out bytes.Buffer
	err := newTestApplication(t).Run(context.Background(), &out)
	require.ErrorIs(t, err, content.ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "b.md")

	assert.Equal(t, "File Name,No Space,Body(w/Space),Total(Raw)\na.md,4,4,4\n", out.String())
	assert.False(t, strings.Contains(out.String(), "c.md"))
}

func TestRun_StopsOnUnreadableEntry(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.md"), 0o755))
	t.Setenv("CHARCOUNT_CONTENT_DIR", dir)

	err := newTestApplication(t).Run(context.Background(), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "folder.md")
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "x"})
	t.Setenv("CHARCOUNT_CONTENT_DIR", dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestApplication(t).Run(ctx, &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuildApplication_CacheDisabled(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "same", "b.md": "same"})
	t.Setenv("CHARCOUNT_CONTENT_DIR", dir)
	t.Setenv("CHARCOUNT_CACHE_SIZE", "0")

	app := newTestApplication(t)
	var out bytes.Buffer
	require.NoError(t, app.Run(context.Background(), &out))
	assert.Contains(t, out.String(), "a.md,4,4,4\nb.md,4,4,4\n")
	assert.Zero(t, app.analyzer.CacheStats().Hits)
}
