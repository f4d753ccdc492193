package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"poemview/internal/config"
	"poemview/internal/content"
	"poemview/internal/eventbus"
	"poemview/internal/history"
	"poemview/internal/routing"
	"poemview/internal/store"
	"poemview/internal/ui"
	"poemview/internal/ui/coordinator"
	"poemview/internal/ui/input"
	"poemview/internal/ui/services/gesture"
	"poemview/internal/ui/services/hint"
)

const logFileName = "poemview.log"

type options struct {
	configPath string
	stateDir   string
	page       int
	resume     bool
	resetHint  bool
	noCover    bool
	debug      bool
}

// viewer is everything run drives once content is loaded
type viewer struct {
	model    *ui.Model
	coord    *coordinator.Coordinator
	recorder *history.Recorder
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "poemview [dir]",
		Short: "Page through a folder of poems in the terminal",
		Long: `poemview shows one poem per page. Drag across the backdrop to turn
pages, drag the text sideways to pan it, or use the arrow keys.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return run(cmd.Context(), dir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&opts.stateDir, "state-dir", "", "directory for persisted state and the log file")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 0, "page to open")
	cmd.Flags().BoolVarP(&opts.resume, "resume", "r", false, "reopen the last page read")
	cmd.Flags().BoolVar(&opts.resetHint, "reset-hint", false, "forget how often the swipe hint was shown")
	cmd.Flags().BoolVar(&opts.noCover, "no-cover", false, "skip the title screen")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log at debug level")
	cmd.MarkFlagsMutuallyExclusive("page", "resume")

	return cmd
}

func run(ctx context.Context, dir string, opts options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if dir != "" {
		cfg.Content.Dir = dir
	}
	if opts.stateDir != "" {
		cfg.State.Dir = opts.stateDir
	}

	logger, closeLog, err := setupLogging(cfg.State.Dir, opts.debug)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "content", cfg.Content.Dir, "state", cfg.State.Dir)

	st := openStore(cfg.State.Dir, logger)
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn("failed to close store", "error", err)
		}
	}()

	bus := eventbus.New(logger)
	defer bus.Close()

	lib, err := content.Load(cfg.Content.Dir, logger)
	if err != nil {
		logger.Error("cannot load content", "error", err)
		return err
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("poemview needs an interactive terminal")
	}

	v, err := assemble(cfg, opts, lib, st, bus, logger)
	if err != nil {
		return err
	}
	// drain queued page changes into the store before it closes
	defer func() {
		bus.Close()
		v.recorder.Stop()
	}()
	defer v.model.Close()
	model, coord := v.model, v.coord

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program failed", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("exiting", "page", coord.Navigation.CurrentIndex())
	return nil
}

// assemble wires routing, history, the coordinator and the UI model. The
// model subscribes to the bus before ContentLoaded is published, so the
// load summary reaches the footer.
func assemble(cfg *config.Config, opts options, lib *content.Library, st store.Store, bus eventbus.EventBus, logger *slog.Logger) (*viewer, error) {
	initial := initialPage(opts, st, lib.Count())
	router := routing.NewRouter(bus, logger, initial)
	recorder := history.NewRecorder(bus, st, logger)

	keys := input.DefaultKeyMap()
	coord := coordinator.New(lib, router, st, hint.SystemClock{}, bus, logger, coordinator.Options{
		InitialPage:       initial,
		CompactBreakpoint: cfg.UI.CompactBreakpoint,
		Swipe: gesture.SwipeConfig{
			DeltaThreshold: cfg.Gesture.SwipeDeltaPx,
			MaxDuration:    cfg.Gesture.SwipeDuration,
		},
		DragGain: cfg.Gesture.DragGain,
		Hint: hint.Config{
			MaxShows:  cfg.Hint.MaxShows,
			CoolOff:   cfg.Hint.CoolOff,
			FadeDelay: cfg.Hint.FadeDelay,
		},
		PrevKeys: keys.Prev.Keys(),
		NextKeys: keys.Next.Keys(),
	})
	if opts.resetHint {
		if err := coord.Hint.Reset(); err != nil {
			logger.Warn("failed to reset hint state", "error", err)
		}
	}

	model, err := ui.NewModel(ui.Deps{
		Config:      cfg,
		Bus:         bus,
		Logger:      logger,
		Library:     lib,
		Coordinator: coord,
		Keys:        keys,
		ShowCover:   showCover(cfg, opts),
	})
	if err != nil {
		recorder.Stop()
		return nil, err
	}

	bus.Publish(eventbus.ContentLoadedEvent{Dir: lib.Dir(), Count: lib.Count()})
	return &viewer{model: model, coord: coord, recorder: recorder}, nil
}

// showCover opens on the title screen unless a page was asked for
func showCover(cfg *config.Config, opts options) bool {
	return cfg.UI.Cover && !opts.noCover && opts.page == 0 && !opts.resume
}

// loadConfig reads the config file, writing the defaults on first run
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultPath()
		if _, err := config.EnsureFile(path); err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging sends slog output to a file; the terminal belongs to the UI
func setupLogging(stateDir string, debug bool) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(stateDir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(stateDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})).
		With("session", uuid.NewString())
	slog.SetDefault(logger)

	return logger, func() { _ = f.Close() }, nil
}

// openStore opens the badger database, falling back to memory when it is
// unavailable (for example locked by another running viewer)
func openStore(stateDir string, logger *slog.Logger) store.Store {
	db, err := store.OpenBadger(store.BadgerConfig{
		Path:   filepath.Join(stateDir, "db"),
		Logger: logger.With("component", "badger"),
	})
	if err != nil {
		logger.Warn("state will not be persisted", "error", err)
		return store.NewMemoryStore()
	}
	return db
}

func initialPage(opts options, st store.Store, count int) int {
	page := 1
	switch {
	case opts.page != 0:
		page = opts.page
	case opts.resume:
		if last, ok := history.LastPage(st); ok {
			page = last
		}
	}
	if page < 1 || page > count {
		return 1
	}
	return page
}
