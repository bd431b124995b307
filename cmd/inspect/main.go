package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/handlemap"
	"github.com/wippyai/handlemap/maplog"
)

func main() {
	var (
		loadFile    = flag.String("load", "", "JSON file to populate the map from")
		saveFile    = flag.String("save", "", "Write the map back as JSON on exit")
		seed        = flag.Uint64("seed", 0, "Deterministic handle source seed (0 = process randomness)")
		list        = flag.Bool("list", false, "Print entries and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("verbose", false, "Log lifecycle events to stderr")
	)
	flag.Parse()

	if !*list && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: inspect -list [-load file.json]")
		fmt.Fprintln(os.Stderr, "       inspect -i [-load file.json] [-save file.json] [-seed n] [-verbose]")
		os.Exit(1)
	}

	if err := run(*loadFile, *saveFile, *seed, *interactive, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(loadFile, saveFile string, seed uint64, interactive, verbose bool) error {
	var m *handlemap.Map[string]
	if seed != 0 {
		m = handlemap.NewWithSource[string](handlemap.NewSeededSource(seed))
	} else {
		m = handlemap.New[string]()
	}

	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck
		m.Subscribe(maplog.New[string](logger))
	}

	if loadFile != "" {
		data, err := os.ReadFile(loadFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", loadFile, err)
		}
		if err := json.Unmarshal(data, m); err != nil {
			return fmt.Errorf("decode %s: %w", loadFile, err)
		}
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		if err := runInteractive(m); err != nil {
			return err
		}
	} else {
		printEntries(m)
	}

	if saveFile != "" {
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("encode map: %w", err)
		}
		if err := os.WriteFile(saveFile, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", saveFile, err)
		}
	}

	return nil
}

type entry struct {
	value  string
	handle handlemap.Handle[string]
}

// sortedEntries snapshots the map for display. Iteration order is
// unspecified, so entries are sorted by handle to keep the listing stable.
func sortedEntries(m *handlemap.Map[string]) []entry {
	entries := make([]entry, 0, m.Len())
	m.Each(func(h handlemap.Handle[string], v string) bool {
		entries = append(entries, entry{handle: h, value: v})
		return true
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].handle < entries[j].handle })
	return entries
}

func printEntries(m *handlemap.Map[string]) {
	fmt.Printf("Entries: %d\n", m.Len())
	for _, e := range sortedEntries(m) {
		fmt.Printf("  %016x  %s\n", e.handle.Uint64(), e.value)
	}
}
