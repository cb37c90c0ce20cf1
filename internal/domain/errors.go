package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios
var (
	ErrPlayerNotFound = errors.New("no supported stream player found")
	ErrPlayerExited   = errors.New("stream player exited")
	ErrUnsupported    = errors.New("not supported on this platform")
)

// FetchErrorKind classifies a now-playing fetch failure
type FetchErrorKind string

const (
	FetchNetwork   FetchErrorKind = "network"
	FetchStatus    FetchErrorKind = "status"
	FetchMalformed FetchErrorKind = "malformed"
)

// FetchError is returned when the now-playing request fails
type FetchError struct {
	Kind FetchErrorKind
	// StatusCode is set for FetchStatus
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchStatus:
		return fmt.Sprintf("now playing: unexpected status code: %d", e.StatusCode)
	default:
		return fmt.Sprintf("now playing: %s error: %v", e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// PlaybackError is returned when the stream could not be started or stopped
type PlaybackError struct {
	// Op is the failed operation ("play", "pause", "stream")
	Op  string
	Err error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("playback %s failed: %v", e.Op, e.Err)
}

func (e *PlaybackError) Unwrap() error {
	return e.Err
}

// Suggestion returns a hint for the user, or an empty string
func Suggestion(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrPlayerNotFound) {
		return "Install mpv, ffplay, mpg123 or vlc, or set player.command in the config file"
	}
	if errors.Is(err, ErrPlayerExited) {
		return "The stream may be offline, press start to try again"
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.Kind {
		case FetchNetwork:
			return "Check your internet connection, the display refreshes on the next tick"
		case FetchStatus:
			if fetchErr.StatusCode >= 500 {
				return "The station server is having issues, the display refreshes on the next tick"
			}
			return "Check server_url in the config file"
		case FetchMalformed:
			return "The station server sent an unexpected response"
		}
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "connection refused") {
		return "Check your internet connection and try again"
	}

	return ""
}

// Describe returns the error message followed by a suggestion if available
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if s := Suggestion(err); s != "" {
		return fmt.Sprintf("%s (%s)", err.Error(), s)
	}
	return err.Error()
}
