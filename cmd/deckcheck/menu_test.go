package main

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckcheck/internal"
	"deckcheck/internal/edhrec"
	"deckcheck/internal/pipeline"
)

type fakeRunner struct {
	scraped []string
	files   []string
	scrape  func(name string) pipeline.Outcome
}

func (f *fakeRunner) ScrapeCommander(_ context.Context, name string) pipeline.Outcome {
	f.scraped = append(f.scraped, name)
	if f.scrape != nil {
		return f.scrape(name)
	}
	return pipeline.Outcome{Commander: name, Trail: []internal.RunState{internal.StateStart, internal.StateDone}}
}

func (f *fakeRunner) ProcessDeckFile(path string) pipeline.Outcome {
	f.files = append(f.files, path)
	return pipeline.Outcome{Commander: "Local", Trail: []internal.RunState{internal.StateStart, internal.StateDone}}
}

func newTestMenu(r deckRunner, dir, input string) (*menu, *bytes.Buffer) {
	var out bytes.Buffer
	return &menu{
		runner:  r,
		deckDir: dir,
		in:      bufio.NewScanner(strings.NewReader(input)),
		out:     &out,
	}, &out
}

func TestMenuScrapeThenExit(t *testing.T) {
	r := &fakeRunner{}
	m, out := newTestMenu(r, t.TempDir(), "1\nAtraxa, Praetors' Voice\n3\n")

	require.NoError(t, m.run(context.Background()))
	assert.Equal(t, []string{"Atraxa, Praetors' Voice"}, r.scraped)
	assert.Contains(t, out.String(), "Bye.")
}

func TestMenuContinuesAfterFailedRun(t *testing.T) {
	r := &fakeRunner{scrape: func(name string) pipeline.Outcome {
		return pipeline.Outcome{
			Commander: name,
			Err:       &edhrec.TransportError{URL: "https://edhrec.com/average-decks/x", StatusCode: 404},
			Trail:     []internal.RunState{internal.StateStart, internal.StateReportedFailure},
		}
	}}
	m, out := newTestMenu(r, t.TempDir(), "1\nNobody\n1\nSomebody\n3\n")

	require.NoError(t, m.run(context.Background()))
	assert.Equal(t, []string{"Nobody", "Somebody"}, r.scraped)
	assert.Equal(t, 2, strings.Count(out.String(), "HTTP 404"))
}

func TestMenuLocalFileByNumber(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("Commander: X\n1 Sol Ring\n"), 0o644))
	}
	r := &fakeRunner{}
	m, out := newTestMenu(r, dir, "2\n2\n3\n")

	require.NoError(t, m.run(context.Background()))
	assert.Equal(t, []string{filepath.Join(dir, "b.txt")}, r.files)
	assert.Contains(t, out.String(), "1) a.txt")
	assert.NotContains(t, out.String(), "notes.md")
}

func TestMenuLocalFileByPathAndBadNumber(t *testing.T) {
	r := &fakeRunner{}
	m, out := newTestMenu(r, t.TempDir(), "2\n7\n2\n/tmp/deck.txt\n3\n")

	require.NoError(t, m.run(context.Background()))
	assert.Equal(t, []string{"/tmp/deck.txt"}, r.files)
	assert.Contains(t, out.String(), "no deck list numbered 7")
}

func TestMenuStopsAtEndOfInput(t *testing.T) {
	r := &fakeRunner{}
	m, out := newTestMenu(r, t.TempDir(), "9\n1\n\n")

	require.NoError(t, m.run(context.Background()))
	assert.Empty(t, r.scraped)
	assert.Contains(t, out.String(), `Unknown option "9"`)
	assert.Contains(t, out.String(), "No commander name given.")
}

func TestMenuStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, _ := newTestMenu(&fakeRunner{}, t.TempDir(), "1\nX\n")

	assert.ErrorIs(t, m.run(ctx), context.Canceled)
}

func TestResolveDeckChoice(t *testing.T) {
	files := []string{"d/a.txt", "d/b.txt"}

	got, err := resolveDeckChoice("1", files)
	require.NoError(t, err)
	assert.Equal(t, "d/a.txt", got)

	got, err = resolveDeckChoice("other/deck.txt", files)
	require.NoError(t, err)
	assert.Equal(t, "other/deck.txt", got)

	_, err = resolveDeckChoice("0", files)
	assert.Error(t, err)
}

func TestListDeckFilesMissingDir(t *testing.T) {
	assert.Nil(t, listDeckFiles(filepath.Join(t.TempDir(), "missing")))
}
