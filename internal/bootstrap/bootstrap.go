package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"

	navigationinadapter "syntaxlabs/internal/modules/navigation/adapter/in"
	navigationoutadapter "syntaxlabs/internal/modules/navigation/adapter/out"
	navigationdto "syntaxlabs/internal/modules/navigation/dto"
	navigationin "syntaxlabs/internal/modules/navigation/port/in"
	navigationout "syntaxlabs/internal/modules/navigation/port/out"
	navigationusecase "syntaxlabs/internal/modules/navigation/usecase"
	playgroundinadapter "syntaxlabs/internal/modules/playground/adapter/in"
	playgroundoutadapter "syntaxlabs/internal/modules/playground/adapter/out"
	playgroundin "syntaxlabs/internal/modules/playground/port/in"
	playgroundservice "syntaxlabs/internal/modules/playground/service"
	playgroundusecase "syntaxlabs/internal/modules/playground/usecase"
	progressinadapter "syntaxlabs/internal/modules/progress/adapter/in"
	progressoutadapter "syntaxlabs/internal/modules/progress/adapter/out"
	progressin "syntaxlabs/internal/modules/progress/port/in"
	progressservice "syntaxlabs/internal/modules/progress/service"
	progressusecase "syntaxlabs/internal/modules/progress/usecase"
	reportinadapter "syntaxlabs/internal/modules/report/adapter/in"
	reportin "syntaxlabs/internal/modules/report/port/in"
	reportservice "syntaxlabs/internal/modules/report/service"
	reportusecase "syntaxlabs/internal/modules/report/usecase"
	sessioninadapter "syntaxlabs/internal/modules/session/adapter/in"
	sessionoutadapter "syntaxlabs/internal/modules/session/adapter/out"
	sessionin "syntaxlabs/internal/modules/session/port/in"
	sessionservice "syntaxlabs/internal/modules/session/service"
	sessionusecase "syntaxlabs/internal/modules/session/usecase"
	"syntaxlabs/internal/platform/clock"
	"syntaxlabs/internal/platform/config"
	apperrors "syntaxlabs/internal/platform/errors"
	"syntaxlabs/internal/platform/files"
	"syntaxlabs/internal/platform/id"
	"syntaxlabs/internal/platform/kvstore"
	"syntaxlabs/internal/platform/logger"
	"syntaxlabs/internal/platform/prompt"
	uiapp "syntaxlabs/internal/ui/app"
	"syntaxlabs/internal/ui/components"
)

// Options are the collaborators that differ between the TUI and the CLI.
type Options struct {
	Confirm  prompt.Confirmer
	Renderer navigationout.Renderer
	// Store replaces the SQLite store, mainly in tests.
	Store kvstore.Store
	// Sleeper replaces the clock for the artificial delays.
	Sleeper clock.Sleeper
}

type App struct {
	SessionCLI    sessioninadapter.CLIHandler
	ProgressCLI   progressinadapter.CLIHandler
	PlaygroundCLI playgroundinadapter.CLIHandler
	ReportCLI     reportinadapter.CLIHandler
	NavigationCLI navigationinadapter.CLIHandler

	Session    sessionin.Usecase
	Progress   progressin.Usecase
	Playground playgroundin.Usecase
	Report     reportin.Usecase
	Navigation navigationin.Usecase

	Log *logger.Logger

	closers []io.Closer
}

func New(cfg config.Config, opts Options) (*App, error) {
	log, err := logger.New(cfg.LogMode, cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	app := &App{Log: log}

	store := opts.Store
	if store == nil {
		sqlite, err := kvstore.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		app.closers = append(app.closers, sqlite)
		store = sqlite
	}
	confirm := opts.Confirm
	if confirm == nil {
		confirm = prompt.Always(true)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = &ViewRecorder{}
	}

	clk := clock.SystemClock{}
	var sleeper clock.Sleeper = clk
	if opts.Sleeper != nil {
		sleeper = opts.Sleeper
	}
	ids := id.UUID{}
	intn := rand.IntN
	writer := files.Writer{}

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, sleeper, sessionoutadapter.NewJWTIssuer(cfg.TokenSecret, ids), sessionservice.Delays{
			Login:    cfg.LoginDelay,
			Register: cfg.RegisterDelay,
		}),
		sessionoutadapter.NewKVSessionStore(store, log),
		confirm,
		log,
	)

	progressUC := progressusecase.NewInteractor(
		progressservice.NewProgressService(clk, intn),
		progressoutadapter.NewKVProgressStore(store, log),
		writer,
		sessionUC,
		confirm,
		log,
	)

	engine, err := playgroundoutadapter.NewGojaEngine(log)
	if err != nil {
		return nil, fmt.Errorf("new script engine: %w", err)
	}
	playgroundUC := playgroundusecase.NewInteractor(playgroundusecase.Deps{
		Dispatcher: playgroundservice.NewDispatcher(engine),
		Assistant: playgroundservice.NewAssistant(sleeper, playgroundservice.AssistantDelays{
			Answer:   cfg.AssistantDelay,
			Analysis: cfg.AnalysisDelay,
		}, intn),
		Code:    playgroundoutadapter.NewKVCodeStore(store, log),
		Session: sessionUC,
		Confirm: confirm,
		Clock:   clk,
		IDs:     ids,
		Log:     log,
	})

	reportUC := reportusecase.NewInteractor(
		reportservice.NewReportService(),
		sessionUC,
		progressUC,
		playgroundUC,
		writer,
		clk,
		log,
	)

	navigationUC := navigationusecase.NewController(navigationusecase.Deps{
		Session:    sessionUC,
		Progress:   progressUC,
		Playground: playgroundUC,
		Renderer:   renderer,
		Themes:     navigationoutadapter.NewKVThemeStore(store),
		Clock:      clk,
		BannerTTL:  cfg.BannerTTL,
		Intn:       intn,
		Log:        log,
	})

	if _, err := sessionUC.Restore(context.Background()); err != nil && !errors.Is(err, apperrors.ErrNoSession) {
		log.Warn("restore session", "error", err)
	}

	app.Session = sessionUC
	app.Progress = progressUC
	app.Playground = playgroundUC
	app.Report = reportUC
	app.Navigation = navigationUC
	app.SessionCLI = sessioninadapter.NewCLIHandler(sessionUC)
	app.ProgressCLI = progressinadapter.NewCLIHandler(progressUC)
	app.PlaygroundCLI = playgroundinadapter.NewCLIHandler(playgroundUC)
	app.ReportCLI = reportinadapter.NewCLIHandler(reportUC)
	app.NavigationCLI = navigationinadapter.NewCLIHandler(navigationUC)
	return app, nil
}

// Close releases the store and flushes the logger.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.Log.Sync()
	return errors.Join(errs...)
}

// RunTUI builds the application around the Bubble Tea renderer and confirm
// modal and runs it until the user quits.
func RunTUI(cfg config.Config) error {
	sink := uiapp.NewSink()
	confirmer := components.NewConfirmer()
	app, err := New(cfg, Options{Confirm: confirmer, Renderer: sink})
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	model, err := uiapp.NewModel(uiapp.Deps{
		Navigation: app.Navigation,
		Session:    app.Session,
		Progress:   app.Progress,
		Playground: app.Playground,
		Reports:    app.Report,
		Sink:       sink,
		Confirmer:  confirmer,
		OutputDir:  cfg.DataDir,
	})
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// ViewRecorder keeps the last view model rendered during a one-shot CLI
// command so it can be printed once the command is done.
type ViewRecorder struct {
	last *navigationdto.ViewModel
}

func (r *ViewRecorder) Render(_ context.Context, view navigationdto.ViewModel) error {
	r.last = &view
	return nil
}

// Flush writes the last view model as YAML.
func (r *ViewRecorder) Flush(ctx context.Context, w io.Writer) error {
	if r.last == nil {
		return apperrors.ErrMissingView
	}
	return navigationoutadapter.NewYAMLRenderer(w).Render(ctx, *r.last)
}
