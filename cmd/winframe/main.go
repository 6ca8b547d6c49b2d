// ABOUTME: CLI entry point for the winframe demo with terminal crash recovery
// ABOUTME: Parses flags, loads config, redirects logging, and runs the browser event loop

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/winframe/internal/config"
	"github.com/mauromedda/winframe/internal/log"
	"github.com/mauromedda/winframe/pkg/tui/geom"
	"github.com/mauromedda/winframe/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var errNotTerminal = errors.New("winframe needs an interactive terminal on stdin and stdout")

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("winframe %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings reads config files for dir and overlays the flags.
func loadSettings(args cliArgs, dir string) (*config.Settings, error) {
	s, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	args.apply(s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// run performs the full initialization sequence and drives the event loop.
func run(args cliArgs) error {
	dir := args.dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		dir = cwd
	}

	settings, err := loadSettings(args, dir)
	if err != nil {
		return err
	}
	if args.explain {
		fmt.Print(config.Explain(settings))
		return nil
	}

	if !terminal.IsTerminal(int(os.Stdin.Fd())) || !terminal.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	if size, err := terminal.FDSize(int(os.Stdout.Fd())); err == nil {
		log.Debug("terminal size %s", size)
	}

	closeLog, err := setupLogging(settings)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	backend := terminal.NewScreenBackend(screen, terminal.WithSurfaceLimit(settings.SurfaceLimit))
	if err := backend.Activate(); err != nil {
		return err
	}
	defer backend.Deactivate()
	defer terminal.RestoreOnPanic(backend)

	br, err := newBrowser(backend, settings, dir)
	if err != nil {
		return err
	}
	defer br.close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	return loop(ctx, args, backend, br)
}

// setupLogging sends log output to the configured file so it never
// lands on the screen being drawn.
func setupLogging(s *config.Settings) (func(), error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	if err := config.EnsureDir(config.GlobalDir()); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		f.Close()
	}, nil
}

func loop(ctx context.Context, args cliArgs, backend *terminal.ScreenBackend, br *browser) error {
	screen := backend.Screen()
	events := make(chan tcell.Event, 64)
	go func() {
		defer terminal.RecoverGoroutine(backend)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	watcher := config.NewWatcher(config.ConfigFiles(br.project))
	changes := watcher.Run(ctx)

	if err := br.render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := dispatch(ev, args, br)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}

		case <-changes:
			log.Info("config changed, reloading")
			reloadSettings(args, br)
		}
	}
}

// dispatch handles one tcell event.
func dispatch(ev tcell.Event, args cliArgs, br *browser) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return false, br.resize(geom.Sz(rows, cols))

	case *tcell.EventKey:
		action, ok := br.keys.Lookup(keyName(ev))
		if !ok {
			return false, nil
		}
		if action == config.ActionReload {
			reloadSettings(args, br)
			return false, nil
		}
		return br.handle(action)
	}
	return false, nil
}

// reloadSettings re-reads config; a bad file keeps the current settings.
func reloadSettings(args cliArgs, br *browser) {
	s, err := loadSettings(args, br.project)
	if err != nil {
		log.Warn("reload: %v", err)
		return
	}
	if err := br.reload(s); err != nil {
		log.Warn("reload: %v", err)
	}
}
