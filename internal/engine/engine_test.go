package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/genricoloni/onair/internal/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// fakePlayer records the calls made by the engine
type fakePlayer struct {
	mu       sync.Mutex
	calls    []string
	failures []error
	startErr error
	called   chan string
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{called: make(chan string, 16)}
}

func (p *fakePlayer) record(name string) {
	p.mu.Lock()
	p.calls = append(p.calls, name)
	p.mu.Unlock()
	p.called <- name
}

func (p *fakePlayer) Start(ctx context.Context) error {
	p.record("start")
	return p.startErr
}

func (p *fakePlayer) Stop(ctx context.Context) error {
	p.record("stop")
	return nil
}

func (p *fakePlayer) Toggle(ctx context.Context) error {
	p.record("toggle")
	return nil
}

func (p *fakePlayer) PlaybackFailed(err error) {
	p.mu.Lock()
	p.failures = append(p.failures, err)
	p.mu.Unlock()
	p.record("failed")
}

func (p *fakePlayer) Close(ctx context.Context) error {
	p.record("close")
	return nil
}

type fakeShutdowner struct {
	called chan struct{}
}

func (s *fakeShutdowner) Shutdown(...fx.ShutdownOption) error {
	close(s.called)
	return nil
}

func waitCall(t *testing.T, p *fakePlayer, expected string) {
	t.Helper()
	select {
	case got := <-p.called:
		if got != expected {
			t.Fatalf("expected %s, got %s", expected, got)
		}
	case <-time.After(time.Second):
		t.Fatalf("Timeout: %s was not called", expected)
	}
}

func TestEngine_RoutesCommands(t *testing.T) {
	player := newFakePlayer()
	commands := make(chan domain.Command, 4)
	e := NewEngine(zap.NewNop(), player, commands, nil, &fakeShutdowner{called: make(chan struct{})}, Options{})

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	commands <- domain.CommandStart
	waitCall(t, player, "start")
	commands <- domain.CommandToggle
	waitCall(t, player, "toggle")
	commands <- domain.CommandStop
	waitCall(t, player, "stop")
	commands <- domain.Command("rewind")

	if err := e.Stop(context.Background()); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	waitCall(t, player, "close")
}

func TestEngine_CommandErrorKeepsLoopAlive(t *testing.T) {
	player := newFakePlayer()
	player.startErr = &domain.PlaybackError{Op: "play", Err: domain.ErrPlayerNotFound}
	commands := make(chan domain.Command, 4)
	e := NewEngine(zap.NewNop(), player, commands, nil, &fakeShutdowner{called: make(chan struct{})}, Options{})

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer func() { _ = e.Stop(context.Background()) }()

	commands <- domain.CommandStart
	waitCall(t, player, "start")
	commands <- domain.CommandStop
	waitCall(t, player, "stop")
}

func TestEngine_ForwardsPlaybackFailures(t *testing.T) {
	player := newFakePlayer()
	failures := make(chan error, 1)
	e := NewEngine(zap.NewNop(), player, make(chan domain.Command), failures, &fakeShutdowner{called: make(chan struct{})}, Options{})

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer func() { _ = e.Stop(context.Background()) }()

	failures <- domain.ErrPlayerExited
	waitCall(t, player, "failed")

	player.mu.Lock()
	defer player.mu.Unlock()
	if len(player.failures) != 1 || !errors.Is(player.failures[0], domain.ErrPlayerExited) {
		t.Errorf("expected ErrPlayerExited to be forwarded, got %v", player.failures)
	}
}

func TestEngine_Autostart(t *testing.T) {
	player := newFakePlayer()
	e := NewEngine(zap.NewNop(), player, make(chan domain.Command), nil, &fakeShutdowner{called: make(chan struct{})}, Options{Autostart: true})

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	waitCall(t, player, "start")

	if err := e.Stop(context.Background()); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
}

func TestEngine_QuitRequestsShutdown(t *testing.T) {
	player := newFakePlayer()
	commands := make(chan domain.Command, 1)
	shutdowner := &fakeShutdowner{called: make(chan struct{})}
	e := NewEngine(zap.NewNop(), player, commands, nil, shutdowner, Options{})

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer func() { _ = e.Stop(context.Background()) }()

	commands <- domain.CommandQuit

	select {
	case <-shutdowner.called:
		// Pass
	case <-time.After(time.Second):
		t.Fatal("Timeout: quit did not request shutdown")
	}
}
