package domain

import (
	"context"
	"time"
)

// AudioOutput defines the interface for the stream player
// Implementations own the audio device or the external player process
type AudioOutput interface {
	// Play loads the stream and begins playback
	// It returns once playback has started or failed
	Play(ctx context.Context, streamURL string) error

	// Pause halts playback
	Pause(ctx context.Context) error

	// Errors returns a read-only channel that emits an error when
	// playback ends without a Pause
	Errors() <-chan error
}

// NowPlayingFetcher defines the interface for retrieving station metadata
type NowPlayingFetcher interface {
	// Fetch requests the current track from the station server
	// Failures are returned as *FetchError
	Fetch(ctx context.Context) (NowPlayingInfo, error)
}

// Display defines the view bindings driven by the widget
// Implementations must not call back into the widget
type Display interface {
	// SetPlaybackState toggles the start/stop buttons and the record indicator
	SetPlaybackState(playing bool)

	// ShowLoading replaces the info region with a loading indicator
	ShowLoading()

	// ShowNowPlaying renders the song title and artist
	ShowNowPlaying(info NowPlayingInfo)

	// ClearNowPlaying empties the info region
	ClearNowPlaying()

	// ShowError reports a playback or fetch failure to the user
	ShowError(err error)
}

// Timer is a pending callback created by a Clock
type Timer interface {
	// Stop prevents the callback from firing
	// It returns false if the callback already fired or was stopped
	Stop() bool
}

// Clock schedules callbacks, swapped for a manual clock in tests
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

//go:generate mockgen -destination=mocks/domain_mock.go -package=mocks github.com/genricoloni/onair/internal/domain AudioOutput,NowPlayingFetcher,Submitter

// Submitter accepts commands from control surfaces
type Submitter interface {
	Submit(cmd Command) bool
}
