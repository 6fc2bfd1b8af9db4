package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/akyairhashvil/taskgraph/internal/api"
	"github.com/akyairhashvil/taskgraph/internal/config"
	"github.com/akyairhashvil/taskgraph/internal/database"
	"github.com/akyairhashvil/taskgraph/internal/graph"
	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/akyairhashvil/taskgraph/internal/report"
	"github.com/akyairhashvil/taskgraph/internal/store"
	"github.com/akyairhashvil/taskgraph/internal/tui"
	"github.com/akyairhashvil/taskgraph/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type cliOptions struct {
	export     report.Format
	output     string
	list       bool
	version    bool
	clearCache bool
}

func parseFlags(args []string) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("taskgraph", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	export := fs.String("export", "", "write the task graph as png, pdf, dot or svg and exit")
	fs.StringVar(&opts.output, "o", "", "export destination (defaults to a timestamped file in the reports dir, - for stdout)")
	fs.BoolVar(&opts.list, "list", false, "print the task list and exit")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.BoolVar(&opts.clearCache, "clear-cache", false, "forget the offline snapshot before starting")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if *export != "" {
		f, err := report.ParseFormat(*export)
		if err != nil {
			return opts, err
		}
		opts.export = f
	}
	if opts.output != "" && opts.export == "" {
		return opts, errors.New("-o requires -export")
	}
	return opts, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func fail(stderr io.Writer, err error) {
	fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
}

// isTerminal reports whether w is a terminal; anything that is not an
// *os.File counts as piped output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// run is main minus os.Exit; it returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args)
	if err != nil {
		fail(stderr, err)
		return 2
	}
	if opts.version {
		fmt.Fprintln(stdout, "taskgraph "+tui.VersionString())
		return 0
	}

	// 1. Settings and logging
	settings, err := config.Load(config.Path())
	if err != nil {
		fail(stderr, err)
		return 1
	}
	logFile, err := util.OpenLogFile(settings.LogFile, "taskgraph ")
	if err != nil {
		fail(stderr, err)
		return 1
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// 2. Offline cache. The app works without it.
	var db *database.Database
	if settings.Cache != "" {
		db, err = database.Open(ctx, settings.Cache)
		if err != nil {
			util.LogError("open snapshot cache", err)
			db = nil
		} else {
			defer db.Close()
			if opts.clearCache {
				util.LogError("clear snapshot", db.ClearSnapshot(ctx))
			}
		}
	}

	client := api.NewClient(settings.APIURL, api.WithTimeout(settings.Timeout))
	var st *store.Store
	var tuiSettings tui.Settings
	if db != nil {
		st = store.New(client, db, client.BaseURL())
		tuiSettings = db
	} else {
		st = store.New(client, nil, client.BaseURL())
	}

	// 3. Headless modes
	switch {
	case opts.export != "":
		if err := runExport(ctx, st, opts, settings.Theme, stdout, stderr); err != nil {
			fail(stderr, err)
			return 1
		}
		return 0
	case opts.list || !isTerminal(stdout):
		if err := runList(ctx, st, stdout); err != nil {
			fail(stderr, err)
			return 1
		}
		return 0
	}

	// 4. Interactive UI
	model := tui.NewModel(ctx, st, tui.Options{Settings: tuiSettings, Theme: settings.Theme})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fail(stderr, err)
		return 1
	}
	return 0
}

// loadTasks fetches from the service, falling back to the cached snapshot.
func loadTasks(ctx context.Context, st *store.Store) error {
	fetchErr := st.Fetch(ctx)
	if fetchErr == nil {
		return nil
	}
	if err := st.LoadSnapshot(ctx); err != nil {
		util.LogError("load snapshot", err)
	}
	if stale, savedAt := st.Stale(); stale {
		log.Printf("using snapshot saved %s after fetch failed: %v", savedAt.Format(time.RFC3339), fetchErr)
		return nil
	}
	return fetchErr
}

func runExport(ctx context.Context, st *store.Store, opts cliOptions, themeName string, stdout, stderr io.Writer) error {
	if err := loadTasks(ctx, st); err != nil {
		return err
	}
	palette := graph.DefaultPalette()
	if t, ok := tui.Themes[themeName]; ok {
		palette = t.Palette
	}
	in := report.Input{
		Now:     time.Now(),
		Tasks:   st.Tasks(),
		View:    graph.NewViewState(),
		Palette: palette,
	}
	if opts.export == report.FormatDOT || opts.export == report.FormatSVG {
		if data, err := st.GraphData(ctx); err == nil {
			in.Graph = &data
		} else {
			util.LogError("fetch graph data", err)
		}
	}

	switch opts.output {
	case "-":
		return report.Export(ctx, stdout, opts.export, in)
	case "":
		path, err := report.SaveToDir(ctx, util.ReportsDir(config.AppName), opts.export, in)
		if err != nil {
			return err
		}
		fmt.Fprintln(stderr, path)
		return nil
	default:
		return report.SaveFile(ctx, opts.output, opts.export, in)
	}
}

func runList(ctx context.Context, st *store.Store, w io.Writer) error {
	if err := loadTasks(ctx, st); err != nil {
		return err
	}
	return writeList(w, st.Tasks())
}

// writeList prints one task per line: id, status and title, followed by the
// ids it depends on.
func writeList(w io.Writer, tasks []models.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks yet.")
		return err
	}
	for _, t := range tasks {
		line := fmt.Sprintf("#%d\t%-11s\t%s", t.ID, t.Status.Label(), t.Title)
		if len(t.Dependencies) > 0 {
			line += "\tdepends on"
			for _, d := range t.Dependencies {
				line += fmt.Sprintf(" #%d", d.DependsOn)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
