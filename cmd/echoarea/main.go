package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/echoarea/internal/config"
	"github.com/marcus/echoarea/internal/editor"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("echoarea version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Open the file argument, or a scratch buffer when none is given.
	var buf *editor.Buffer
	if flag.NArg() > 0 {
		buf, err = editor.LoadBuffer(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open %s: %v\n", flag.Arg(0), err)
			os.Exit(1)
		}
	} else {
		buf = editor.Scratch("")
	}

	model := editor.New(cfg, buf, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.Host().SetSend(p.Send)

	// Forward external file changes into the program loop.
	if buf.Path != "" {
		changes, stop, werr := editor.WatchFile(buf.Path)
		if werr != nil {
			logger.Warn("file watch unavailable", "path", buf.Path, "err", werr)
		} else {
			defer stop()
			go func() {
				for ch := range changes {
					p.Send(ch)
				}
			}()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
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

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}

	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: echoarea [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal editor with a transient, auto-sizing message area.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
