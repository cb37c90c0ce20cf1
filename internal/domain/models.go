package domain

// PlaybackStatus represents the state of the audio stream
type PlaybackStatus string

const (
	// StatusPlaying indicates the stream is currently playing
	StatusPlaying PlaybackStatus = "Playing"
	// StatusStopped indicates the stream is stopped
	StatusStopped PlaybackStatus = "Stopped"
)

// PlaybackState is the widget's view of the audio output
type PlaybackState struct {
	Playing bool
}

// Status maps the playback flag to a PlaybackStatus
func (s PlaybackState) Status() PlaybackStatus {
	if s.Playing {
		return StatusPlaying
	}
	return StatusStopped
}

// PollState describes the now-playing poller
type PollState struct {
	// Active is true while metadata refresh is running
	Active bool
	// Pending is true while a scheduled fetch is waiting on its timer
	Pending bool
}

// NowPlayingInfo contains the currently airing track as reported by the station
type NowPlayingInfo struct {
	// SongTitle of the track on air
	SongTitle string `json:"song_string"`
	// ArtistName of the track on air
	ArtistName string `json:"artist_string"`
}

// Command is a user intent coming from a control surface (TUI, MPRIS)
type Command string

const (
	CommandStart  Command = "start"
	CommandStop   Command = "stop"
	CommandToggle Command = "toggle"
	CommandQuit   Command = "quit"
)
