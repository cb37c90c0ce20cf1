package tui

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/genricoloni/onair/internal/domain"
	"go.uber.org/zap"
)

// UI runs the bubbletea program and exposes it as a domain.Display
type UI struct {
	logger    *zap.Logger
	submitter domain.Submitter
	program   *tea.Program
	done      chan struct{}
	started   atomic.Bool
}

// NewUI creates the terminal view; it does not take over the terminal until Start
func NewUI(logger *zap.Logger, submitter domain.Submitter, opts ...tea.ProgramOption) *UI {
	return &UI{
		logger:    logger,
		submitter: submitter,
		program:   tea.NewProgram(NewModel(submitter), opts...),
		done:      make(chan struct{}),
	}
}

// Start runs the program in a goroutine. When the user quits the view,
// a quit command is submitted so the whole application shuts down.
func (u *UI) Start(ctx context.Context) error {
	u.started.Store(true)
	go func() {
		defer close(u.done)

		if _, err := u.program.Run(); err != nil {
			u.logger.Error("Terminal UI failed", zap.Error(err))
		}
		u.submitter.Submit(domain.CommandQuit)
	}()

	u.logger.Info("Terminal UI started")
	return nil
}

// Stop quits the program and restores the terminal
func (u *UI) Stop(ctx context.Context) error {
	// Quit blocks until the program reads it, which never happens before Run
	if !u.started.Load() {
		return nil
	}
	u.program.Quit()

	select {
	case <-u.done:
		return nil
	case <-ctx.Done():
		u.program.Kill()
		return ctx.Err()
	}
}

func (u *UI) SetPlaybackState(playing bool) {
	u.program.Send(playbackMsg(playing))
}

func (u *UI) ShowLoading() {
	u.program.Send(loadingMsg{})
}

func (u *UI) ShowNowPlaying(info domain.NowPlayingInfo) {
	u.program.Send(nowPlayingMsg(info))
}

func (u *UI) ClearNowPlaying() {
	u.program.Send(clearMsg{})
}

func (u *UI) ShowError(err error) {
	u.program.Send(errorMsg{err: err})
}
