package display

import (
	"github.com/genricoloni/onair/internal/domain"
	"go.uber.org/zap"
)

// LogDisplay renders widget updates as structured log lines (headless mode)
type LogDisplay struct {
	logger *zap.Logger
}

// NewLogDisplay creates a display backed by the given logger
func NewLogDisplay(logger *zap.Logger) *LogDisplay {
	return &LogDisplay{logger: logger.Named("display")}
}

func (d *LogDisplay) SetPlaybackState(playing bool) {
	status := domain.PlaybackState{Playing: playing}.Status()
	d.logger.Info("Playback status", zap.String("status", string(status)))
}

func (d *LogDisplay) ShowLoading() {
	d.logger.Debug("Loading now playing")
}

func (d *LogDisplay) ShowNowPlaying(info domain.NowPlayingInfo) {
	d.logger.Info("On air",
		zap.String("title", Sanitize(info.SongTitle)),
		zap.String("artist", Sanitize(info.ArtistName)))
}

func (d *LogDisplay) ClearNowPlaying() {
	d.logger.Debug("Now playing cleared")
}

func (d *LogDisplay) ShowError(err error) {
	d.logger.Warn(domain.Describe(err))
}
