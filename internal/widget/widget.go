package widget

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/genricoloni/onair/internal/domain"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval = 60 * time.Second
	DefaultFetchTimeout = 15 * time.Second
)

// ErrClosed is returned by Start once the widget has been torn down
var ErrClosed = errors.New("player widget is closed")

// Options configures a PlayerWidget
type Options struct {
	StreamURL    string
	PollInterval time.Duration
	FetchTimeout time.Duration
}

// PlayerWidget toggles the radio stream and keeps the now-playing display
// fresh while it plays.
//
// Polling is active if and only if the stream is playing. At most one poll is
// scheduled at any time. Each start opens a new polling generation; fetch
// results and timer callbacks from an older generation are dropped.
type PlayerWidget struct {
	logger  *zap.Logger
	audio   domain.AudioOutput
	fetcher domain.NowPlayingFetcher
	display domain.Display
	clock   domain.Clock
	opts    Options

	// ctx bounds every fetch and is cancelled by Close
	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	playing    bool
	polling    bool
	pending    domain.Timer // nil when no poll is scheduled
	generation uint64
	closed     bool

	inflight sync.WaitGroup
}

// NewPlayerWidget creates an idle widget
func NewPlayerWidget(
	logger *zap.Logger,
	audio domain.AudioOutput,
	fetcher domain.NowPlayingFetcher,
	display domain.Display,
	clock domain.Clock,
	opts Options,
) *PlayerWidget {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &PlayerWidget{
		logger:  logger,
		audio:   audio,
		fetcher: fetcher,
		display: display,
		clock:   clock,
		opts:    opts,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start plays the stream and begins polling. It is a no-op while playing.
func (w *PlayerWidget) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if w.playing {
		return nil
	}

	if err := w.audio.Play(ctx, w.opts.StreamURL); err != nil {
		perr := playbackError("play", err)
		w.logger.Error("Failed to start stream",
			zap.String("url", w.opts.StreamURL),
			zap.Error(err))
		w.display.ShowError(perr)
		return perr
	}

	w.playing = true
	w.display.SetPlaybackState(true)
	w.logger.Info("Stream started", zap.String("url", w.opts.StreamURL))

	w.polling = true
	w.generation++
	w.pollLocked(w.generation)
	return nil
}

// Stop pauses the stream, halts polling and clears the display.
// It is a no-op while stopped.
func (w *PlayerWidget) Stop(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.playing {
		return nil
	}

	err := w.audio.Pause(ctx)
	w.haltLocked()

	if err != nil {
		perr := playbackError("pause", err)
		w.logger.Error("Failed to pause stream", zap.Error(err))
		w.display.ShowError(perr)
		return perr
	}

	w.logger.Info("Stream stopped")
	return nil
}

// Toggle starts a stopped widget and stops a playing one
func (w *PlayerWidget) Toggle(ctx context.Context) error {
	if playback, _ := w.State(); playback.Playing {
		return w.Stop(ctx)
	}
	return w.Start(ctx)
}

// PlaybackFailed records that the stream ended on its own.
// The widget returns to the stopped state and shows the failure.
func (w *PlayerWidget) PlaybackFailed(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.playing {
		w.logger.Debug("Ignoring playback failure while stopped", zap.Error(err))
		return
	}

	w.haltLocked()

	perr := playbackError("stream", err)
	w.logger.Error("Stream ended unexpectedly", zap.Error(err))
	w.display.ShowError(perr)
}

// State returns a snapshot of the playback and polling flags
func (w *PlayerWidget) State() (domain.PlaybackState, domain.PollState) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return domain.PlaybackState{Playing: w.playing},
		domain.PollState{Active: w.polling, Pending: w.pending != nil}
}

// Close stops playback, cancels in-flight fetches and waits for them to return.
// The widget cannot be started again.
func (w *PlayerWidget) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true

	var err error
	if w.playing {
		if pauseErr := w.audio.Pause(ctx); pauseErr != nil {
			err = playbackError("pause", pauseErr)
		}
		w.haltLocked()
	}
	w.mu.Unlock()

	w.cancel()
	w.inflight.Wait()

	w.logger.Debug("Player widget closed")
	return err
}

// haltLocked leaves the Polling state and resets the view.
// The caller must hold w.mu.
func (w *PlayerWidget) haltLocked() {
	w.playing = false
	w.polling = false
	w.generation++

	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}

	w.display.SetPlaybackState(false)
	w.display.ClearNowPlaying()
}

// pollLocked shows the loading indicator and issues a fetch for gen.
// The caller must hold w.mu.
func (w *PlayerWidget) pollLocked(gen uint64) {
	w.display.ShowLoading()

	w.inflight.Add(1)
	go w.fetch(gen)
}

func (w *PlayerWidget) fetch(gen uint64) {
	defer w.inflight.Done()

	ctx, cancel := context.WithTimeout(w.ctx, w.opts.FetchTimeout)
	info, err := w.fetcher.Fetch(ctx)
	cancel()

	w.complete(gen, info, err)
}

// complete renders a fetch result and re-arms the poll timer
func (w *PlayerWidget) complete(gen uint64, info domain.NowPlayingInfo, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.polling || gen != w.generation {
		w.logger.Debug("Discarding stale now playing result",
			zap.Uint64("generation", gen),
			zap.Error(err))
		return
	}

	if err != nil {
		w.logger.Warn("Failed to fetch now playing, retrying on next tick",
			zap.Duration("interval", w.opts.PollInterval),
			zap.Error(err))
		w.display.ShowError(err)
	} else {
		w.logger.Info("Now playing",
			zap.String("title", info.SongTitle),
			zap.String("artist", info.ArtistName))
		w.display.ShowNowPlaying(info)
	}

	w.scheduleLocked(gen)
}

// scheduleLocked arms the poll timer unless one is already pending.
// The caller must hold w.mu.
func (w *PlayerWidget) scheduleLocked(gen uint64) {
	if w.pending != nil {
		return
	}
	w.pending = w.clock.AfterFunc(w.opts.PollInterval, func() {
		w.tick(gen)
	})
}

func (w *PlayerWidget) tick(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.polling || gen != w.generation {
		return
	}

	w.pending = nil
	w.pollLocked(gen)
}

func playbackError(op string, err error) error {
	var perr *domain.PlaybackError
	if errors.As(err, &perr) {
		return perr
	}
	return &domain.PlaybackError{Op: op, Err: err}
}
