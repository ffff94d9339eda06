package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCommandFailureIsReportedOnce(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	t.Setenv("LOG_LEVEL", "error")

	var stdout bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"local", filepath.Join(dir, "missing.txt"), "--output-dir", filepath.Join(dir, "out")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 1, strings.Count(stdout.String(), "[ERROR]"))
	assert.Empty(t, exitMessage(err))
}

func TestExitMessage(t *testing.T) {
	assert.Empty(t, exitMessage(nil))
	assert.Empty(t, exitMessage(context.Canceled))
	assert.Empty(t, exitMessage(reported(errors.New("fetch failed"))))
	assert.Equal(t, "error: bad flag\n", exitMessage(errors.New("bad flag")))
	assert.Equal(t, "error: wrapped: x\n", exitMessage(fmt.Errorf("wrapped: %w", errors.New("x"))))
	assert.NoError(t, reported(nil))
}

// chdirForTest changes the working directory for the duration of the test
// and restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
