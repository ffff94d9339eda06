package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"deckcheck/internal/pipeline"
)

// deckRunner is the part of the processing service the menu drives.
type deckRunner interface {
	ScrapeCommander(ctx context.Context, commander string) pipeline.Outcome
	ProcessDeckFile(path string) pipeline.Outcome
}

type menu struct {
	runner   deckRunner
	deckDir  string
	in       *bufio.Scanner
	out      io.Writer
	colorize bool
}

func newMenuCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu (default when no command is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenuCommand(cmd, ctx)
		},
	}
}

func runMenuCommand(cmd *cobra.Command, ctx *commandContext) error {
	cfg, _, err := ctx.ensure()
	if err != nil {
		return err
	}
	svc, err := ctx.service()
	if err != nil {
		return err
	}
	m := &menu{
		runner:   svc,
		deckDir:  cfg.DeckListDir,
		in:       bufio.NewScanner(cmd.InOrStdin()),
		out:      cmd.OutOrStdout(),
		colorize: stdoutIsTerminal(),
	}
	return m.run(cmd.Context())
}

// run loops until the user exits, input ends or ctx is cancelled. Failed runs
// are reported and the loop continues.
func (m *menu) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "1) Scrape a commander from EDHREC")
		fmt.Fprintln(m.out, "2) Use a local deck list")
		fmt.Fprintln(m.out, "3) Exit")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return m.in.Err()
		}

		switch strings.ToLower(choice) {
		case "1":
			name, ok := m.prompt("Commander name: ")
			if !ok {
				return m.in.Err()
			}
			if name == "" {
				fmt.Fprintln(m.out, "No commander name given.")
				continue
			}
			fmt.Fprint(m.out, renderOutcome(m.runner.ScrapeCommander(ctx, name), m.colorize))
		case "2":
			path, ok := m.chooseDeckFile()
			if !ok {
				return m.in.Err()
			}
			if path == "" {
				continue
			}
			fmt.Fprint(m.out, renderOutcome(m.runner.ProcessDeckFile(path), m.colorize))
		case "3", "q", "exit", "quit":
			fmt.Fprintln(m.out, "Bye.")
			return nil
		case "":
		default:
			fmt.Fprintf(m.out, "Unknown option %q.\n", choice)
		}
	}
}

func (m *menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// chooseDeckFile lists the deck files and returns the selected path. An
// empty path with ok set means nothing was chosen.
func (m *menu) chooseDeckFile() (string, bool) {
	files := listDeckFiles(m.deckDir)
	if len(files) == 0 {
		fmt.Fprintf(m.out, "No .txt deck lists in %s.\n", m.deckDir)
	}
	for i, f := range files {
		fmt.Fprintf(m.out, "  %d) %s\n", i+1, filepath.Base(f))
	}
	answer, ok := m.prompt("Deck list (number or path): ")
	if !ok {
		return "", false
	}
	if answer == "" {
		return "", true
	}
	path, err := resolveDeckChoice(answer, files)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return "", true
	}
	return path, true
}

func listDeckFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files
}

// resolveDeckChoice maps a 1-based list number to a file. Anything that is
// not a number is taken as a path.
func resolveDeckChoice(answer string, files []string) (string, error) {
	n, err := strconv.Atoi(answer)
	if err != nil {
		return answer, nil
	}
	if n < 1 || n > len(files) {
		return "", fmt.Errorf("no deck list numbered %d", n)
	}
	return files[n-1], nil
}
