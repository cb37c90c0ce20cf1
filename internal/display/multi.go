package display

import "github.com/genricoloni/onair/internal/domain"

// Multi forwards every update to each display in order
type Multi []domain.Display

// NewMulti skips nil displays
func NewMulti(displays ...domain.Display) Multi {
	m := make(Multi, 0, len(displays))
	for _, d := range displays {
		if d != nil {
			m = append(m, d)
		}
	}
	return m
}

func (m Multi) SetPlaybackState(playing bool) {
	for _, d := range m {
		d.SetPlaybackState(playing)
	}
}

func (m Multi) ShowLoading() {
	for _, d := range m {
		d.ShowLoading()
	}
}

func (m Multi) ShowNowPlaying(info domain.NowPlayingInfo) {
	for _, d := range m {
		d.ShowNowPlaying(info)
	}
}

func (m Multi) ClearNowPlaying() {
	for _, d := range m {
		d.ClearNowPlaying()
	}
}

func (m Multi) ShowError(err error) {
	for _, d := range m {
		d.ShowError(err)
	}
}
