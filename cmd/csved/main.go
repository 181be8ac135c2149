package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/csved/internal/app"
	"github.com/marcus/csved/internal/config"
	"github.com/marcus/csved/internal/csvio"
	"github.com/marcus/csved/internal/editor"
	"github.com/marcus/csved/internal/keymap"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath  = flag.String("config", "", "path to config file")
	delimiter   = flag.String("delimiter", "", "field delimiter (default: comma, or tab for .tsv)")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("csved version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// One positional argument: the file to edit.
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	// Setup logging
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	comma, err := parseDelimiter(*delimiter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	// Load the document; any failure here is fatal and the session
	// never starts.
	file := csvio.NewFile(path, comma)
	doc, err := file.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", path, err)
		os.Exit(1)
	}

	// Create keymap registry
	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)

	// Apply user keymap overrides
	for key, symbol := range cfg.Keymap.Overrides {
		if err := km.SetUserOverride(key, symbol); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid keymap override: %v\n", err)
			os.Exit(1)
		}
	}

	ed := editor.New(doc, file)
	ed.SetPageSize(cfg.UI.PageSize)

	// Create and run application. Bubble Tea enters the alternate
	// screen and raw mode here and restores both on every exit path.
	model := app.New(ed, file, km, cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}

	// A failed save-on-quit must be loud: the file on disk does not
	// match what the user saw when they quit.
	if m, ok := final.(app.Model); ok && m.SaveErr() != nil {
		fmt.Fprintf(os.Stderr, "Failed to save %s: %v\n", path, m.SaveErr())
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// parseDelimiter turns the -delimiter flag into a rune. Empty means
// auto-detect from the file extension; "\t" or "tab" mean tab.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "\\t", "tab":
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character", s)
	}
	return runes[0], nil
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: csved [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "A keyboard-driven terminal editor for CSV and TSV files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
