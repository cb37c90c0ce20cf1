package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/genricoloni/onair/internal/audio"
	"github.com/genricoloni/onair/internal/config"
	"github.com/genricoloni/onair/internal/control"
	"github.com/genricoloni/onair/internal/display"
	"github.com/genricoloni/onair/internal/domain"
	"github.com/genricoloni/onair/internal/engine"
	"github.com/genricoloni/onair/internal/fetcher"
	"github.com/genricoloni/onair/internal/mpris"
	"github.com/genricoloni/onair/internal/tui"
	"github.com/genricoloni/onair/internal/widget"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// AppOptions builds the dependency graph for the given configuration
func AppOptions(cfg *config.Config) fx.Option {
	return fx.Options(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		fx.Supply(cfg),

		// Provide dependencies
		fx.Provide(
			newLogger,
			control.NewQueue,
			newSubmitter,
			newFetcher,
			newAudioOutput,
			newMPRIS,
			newUI,
			newDisplay,
			newWidget,
			newEngine,
		),

		// Lifecycle hooks
		fx.Invoke(registerHooks),
	)
}

// newLogger creates a zap logger. With the terminal UI running, logs go to
// a file instead of stderr.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()

	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = level

	if !cfg.Headless {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		zcfg.OutputPaths = []string{cfg.Log.File}
		zcfg.ErrorOutputPaths = []string{cfg.Log.File}
	}

	return zcfg.Build()
}

func newSubmitter(q *control.Queue) domain.Submitter {
	return q
}

func newFetcher(logger *zap.Logger, cfg *config.Config) domain.NowPlayingFetcher {
	return fetcher.NewHTTPFetcher(logger, cfg.InfoURL())
}

func newAudioOutput(logger *zap.Logger, cfg *config.Config) *audio.ProcessOutput {
	return audio.NewProcessOutput(logger, cfg.Player)
}

func newMPRIS(logger *zap.Logger, submitter domain.Submitter) *mpris.Server {
	return mpris.NewServer(logger, submitter)
}

// newUI returns nil in headless mode
func newUI(logger *zap.Logger, cfg *config.Config, submitter domain.Submitter) *tui.UI {
	if cfg.Headless {
		return nil
	}
	return tui.NewUI(logger, submitter)
}

// newDisplay fans widget updates out to every active view
func newDisplay(logger *zap.Logger, cfg *config.Config, ui *tui.UI, srv *mpris.Server) domain.Display {
	var displays []domain.Display
	if ui != nil {
		displays = append(displays, ui)
	} else {
		displays = append(displays, display.NewLogDisplay(logger))
	}
	if !cfg.DisableMPRIS {
		displays = append(displays, srv)
	}
	return display.NewMulti(displays...)
}

func newWidget(
	logger *zap.Logger,
	cfg *config.Config,
	out *audio.ProcessOutput,
	fetch domain.NowPlayingFetcher,
	disp domain.Display,
) *widget.PlayerWidget {
	return widget.NewPlayerWidget(logger, out, fetch, disp, widget.NewRealClock(), widget.Options{
		StreamURL:    cfg.StreamURL,
		PollInterval: cfg.PollInterval.Duration,
	})
}

func newEngine(
	logger *zap.Logger,
	cfg *config.Config,
	w *widget.PlayerWidget,
	q *control.Queue,
	out *audio.ProcessOutput,
	shutdowner fx.Shutdowner,
) *engine.Engine {
	return engine.NewEngine(logger, w, q.Commands(), out.Errors(), shutdowner, engine.Options{
		Autostart: cfg.Autostart,
	})
}

// registerHooks sets up application lifecycle hooks.
// Hooks stop in reverse order, so the engine tears the widget down while
// the views are still running.
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	cfg *config.Config,
	ui *tui.UI,
	srv *mpris.Server,
	eng *engine.Engine,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("onair started",
				zap.String("stream", cfg.StreamURL),
				zap.String("info", cfg.InfoURL()),
				zap.Duration("interval", cfg.PollInterval.Duration))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			return nil
		},
	})

	if !cfg.DisableMPRIS {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				// Media keys are optional, the player works without a session bus
				if err := srv.Start(ctx); err != nil {
					logger.Warn("MPRIS disabled", zap.Error(err))
				}
				return nil
			},
			OnStop: srv.Stop,
		})
	}

	if ui != nil {
		lc.Append(fx.Hook{
			OnStart: ui.Start,
			OnStop:  ui.Stop,
		})
	}

	lc.Append(fx.Hook{
		OnStart: eng.Start,
		OnStop:  eng.Stop,
	})
}
