package engine

import (
	"context"
	"sync"

	"github.com/genricoloni/onair/internal/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Player is the part of the widget the engine drives
type Player interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Toggle(ctx context.Context) error
	PlaybackFailed(err error)
	Close(ctx context.Context) error
}

// Options configures the engine
type Options struct {
	// Autostart begins playback as soon as the engine starts
	Autostart bool
}

// Engine serialises user commands and player failures onto the widget.
// Control surfaces only submit commands, they never touch the widget.
type Engine struct {
	logger     *zap.Logger
	player     Player
	commands   <-chan domain.Command
	failures   <-chan error
	shutdowner fx.Shutdowner
	opts       Options

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine creates a new orchestration engine
func NewEngine(
	logger *zap.Logger,
	player Player,
	commands <-chan domain.Command,
	failures <-chan error,
	shutdowner fx.Shutdowner,
	opts Options,
) *Engine {
	return &Engine{
		logger:     logger,
		player:     player,
		commands:   commands,
		failures:   failures,
		shutdowner: shutdowner,
		opts:       opts,
	}
}

// Start launches the engine's event processing loop in a goroutine.
// It returns immediately (non-blocking).
func (e *Engine) Start(ctx context.Context) error {
	e.logger.Info("Engine starting...")

	// The loop outlives the start context, it is cancelled by Stop
	loopCtx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel

	e.wg.Add(1)
	go e.runLoop(loopCtx)
	return nil
}

// runLoop is the main event processing loop
func (e *Engine) runLoop(ctx context.Context) {
	defer e.wg.Done()

	if e.opts.Autostart {
		e.logger.Info("Autostart enabled, starting stream")
		e.handle(ctx, domain.CommandStart)
	}

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine loop stopped")
			return

		case cmd, ok := <-e.commands:
			if !ok {
				e.logger.Info("Command channel closed")
				return
			}
			e.handle(ctx, cmd)

		case err, ok := <-e.failures:
			if !ok {
				// No more failure reports, keep serving commands
				e.failures = nil
				continue
			}
			e.player.PlaybackFailed(err)
		}
	}
}

// handle applies a single command to the widget
func (e *Engine) handle(ctx context.Context, cmd domain.Command) {
	e.logger.Debug("Command received", zap.String("command", string(cmd)))

	var err error
	switch cmd {
	case domain.CommandStart:
		err = e.player.Start(ctx)
	case domain.CommandStop:
		err = e.player.Stop(ctx)
	case domain.CommandToggle:
		err = e.player.Toggle(ctx)
	case domain.CommandQuit:
		e.logger.Info("Quit requested")
		if shutdownErr := e.shutdowner.Shutdown(); shutdownErr != nil {
			e.logger.Error("Failed to request shutdown", zap.Error(shutdownErr))
		}
		return
	default:
		e.logger.Warn("Unknown command", zap.String("command", string(cmd)))
		return
	}

	// The widget has already shown and logged the failure
	if err != nil {
		e.logger.Debug("Command failed",
			zap.String("command", string(cmd)),
			zap.Error(err))
	}
}

// Stop ends the loop and tears the widget down
func (e *Engine) Stop(ctx context.Context) error {
	e.logger.Info("Engine stopping...")

	if e.cancel != nil {
		e.cancel()
	}
	e.wg.Wait()

	if err := e.player.Close(ctx); err != nil {
		e.logger.Error("Failed to stop stream on shutdown", zap.Error(err))
		return err
	}

	e.logger.Info("Engine stopped")
	return nil
}
