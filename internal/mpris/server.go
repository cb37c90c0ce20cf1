//go:build linux
// +build linux

package mpris

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/genricoloni/onair/internal/domain"
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"
	"go.uber.org/zap"
)

const (
	busName     = "org.mpris.MediaPlayer2.onair"
	objectPath  = dbus.ObjectPath("/org/mpris/MediaPlayer2")
	rootIface   = "org.mpris.MediaPlayer2"
	playerIface = "org.mpris.MediaPlayer2.Player"

	currentTrack = dbus.ObjectPath("/org/genricoloni/onair/track/current")
	noTrack      = dbus.ObjectPath("/org/mpris/MediaPlayer2/TrackList/NoTrack")
)

var errQueueFull = errors.New("command queue full, try again")

// Server publishes the widget on the session bus as an MPRIS player so
// media keys and desktop shells can start and stop the stream
type Server struct {
	logger    *zap.Logger
	submitter domain.Submitter
	dial      func() (BusConn, error)

	mu      sync.Mutex
	conn    BusConn
	props   PropertySetter
	playing bool
	info    *domain.NowPlayingInfo
}

// NewServer creates an MPRIS server; it connects on Start
func NewServer(logger *zap.Logger, submitter domain.Submitter) *Server {
	return &Server{
		logger:    logger.Named("mpris"),
		submitter: submitter,
		dial:      NewStdBusConn,
	}
}

// Start claims the bus name and exports the MPRIS interfaces
func (s *Server) Start(ctx context.Context) error {
	conn, err := s.dial()
	if err != nil {
		return fmt.Errorf("session bus connection failed: %w", err)
	}

	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		s.closeConn(conn)
		return fmt.Errorf("failed to request %s: %w", busName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		s.closeConn(conn)
		return fmt.Errorf("bus name %s is already taken", busName)
	}

	if err := conn.Export(rootObject{s}, objectPath, rootIface); err != nil {
		s.closeConn(conn)
		return fmt.Errorf("failed to export %s: %w", rootIface, err)
	}
	if err := conn.Export(playerObject{s}, objectPath, playerIface); err != nil {
		s.closeConn(conn)
		return fmt.Errorf("failed to export %s: %w", playerIface, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := conn.ExportProperties(objectPath, s.propertyMapLocked())
	if err != nil {
		s.closeConn(conn)
		return fmt.Errorf("failed to export properties: %w", err)
	}

	s.conn = conn
	s.props = props
	s.logger.Info("MPRIS player published", zap.String("name", busName))
	return nil
}

// Stop releases the bus connection
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	s.closeConn(s.conn)
	s.conn = nil
	s.props = nil

	s.logger.Info("MPRIS player removed")
	return nil
}

func (s *Server) closeConn(conn BusConn) {
	if err := conn.Close(); err != nil {
		s.logger.Warn("Failed to close D-Bus connection", zap.Error(err))
	}
}

func (s *Server) SetPlaybackState(playing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playing = playing
	if s.props != nil {
		s.props.SetMust(playerIface, "PlaybackStatus", s.statusLocked())
	}
}

func (s *Server) ShowLoading() {}

func (s *Server) ShowNowPlaying(info domain.NowPlayingInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.info = &info
	if s.props != nil {
		s.props.SetMust(playerIface, "Metadata", metadata(s.info))
	}
}

func (s *Server) ClearNowPlaying() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.info = nil
	if s.props != nil {
		s.props.SetMust(playerIface, "Metadata", metadata(nil))
	}
}

func (s *Server) ShowError(err error) {
	s.logger.Debug("Error not exposed over MPRIS", zap.Error(err))
}

func (s *Server) statusLocked() string {
	return string(domain.PlaybackState{Playing: s.playing}.Status())
}

// propertyMapLocked describes the MPRIS properties with their current values.
// The caller must hold s.mu.
func (s *Server) propertyMapLocked() prop.Map {
	constant := func(v interface{}) *prop.Prop {
		return &prop.Prop{Value: v, Writable: false, Emit: prop.EmitConst}
	}
	emitted := func(v interface{}) *prop.Prop {
		return &prop.Prop{Value: v, Writable: false, Emit: prop.EmitTrue}
	}

	return prop.Map{
		rootIface: {
			"CanQuit":             constant(true),
			"CanRaise":            constant(false),
			"HasTrackList":        constant(false),
			"Identity":            constant("onair"),
			"SupportedUriSchemes": constant([]string{}),
			"SupportedMimeTypes":  constant([]string{}),
		},
		playerIface: {
			"PlaybackStatus": emitted(s.statusLocked()),
			"Metadata":       emitted(metadata(s.info)),
			"Rate":           constant(1.0),
			"MinimumRate":    constant(1.0),
			"MaximumRate":    constant(1.0),
			"Volume":         constant(1.0),
			"Position":       &prop.Prop{Value: int64(0), Writable: false, Emit: prop.EmitFalse},
			"CanGoNext":      constant(false),
			"CanGoPrevious":  constant(false),
			"CanPlay":        constant(true),
			"CanPause":       constant(true),
			"CanSeek":        constant(false),
			"CanControl":     constant(true),
		},
	}
}

// metadata converts now playing info to MPRIS metadata
func metadata(info *domain.NowPlayingInfo) map[string]dbus.Variant {
	if info == nil {
		return map[string]dbus.Variant{
			"mpris:trackid": dbus.MakeVariant(noTrack),
		}
	}
	return map[string]dbus.Variant{
		"mpris:trackid": dbus.MakeVariant(currentTrack),
		"xesam:title":   dbus.MakeVariant(info.SongTitle),
		"xesam:artist":  dbus.MakeVariant([]string{info.ArtistName}),
	}
}

func (s *Server) submit(cmd domain.Command) *dbus.Error {
	if !s.submitter.Submit(cmd) {
		return dbus.MakeFailedError(errQueueFull)
	}
	s.logger.Debug("MPRIS command", zap.String("command", string(cmd)))
	return nil
}

// rootObject implements org.mpris.MediaPlayer2
type rootObject struct{ s *Server }

func (r rootObject) Raise() *dbus.Error { return nil }

func (r rootObject) Quit() *dbus.Error { return r.s.submit(domain.CommandQuit) }

// playerObject implements org.mpris.MediaPlayer2.Player.
// A live stream cannot pause, so pausing stops it.
type playerObject struct{ s *Server }

func (p playerObject) Play() *dbus.Error { return p.s.submit(domain.CommandStart) }

func (p playerObject) Pause() *dbus.Error { return p.s.submit(domain.CommandStop) }

func (p playerObject) PlayPause() *dbus.Error { return p.s.submit(domain.CommandToggle) }

func (p playerObject) Stop() *dbus.Error { return p.s.submit(domain.CommandStop) }

func (p playerObject) Next() *dbus.Error { return nil }

func (p playerObject) Previous() *dbus.Error { return nil }

func (p playerObject) Seek(offset int64) *dbus.Error { return nil }

func (p playerObject) SetPosition(track dbus.ObjectPath, position int64) *dbus.Error { return nil }

func (p playerObject) OpenUri(uri string) *dbus.Error {
	return dbus.MakeFailedError(fmt.Errorf("OpenUri: %w", domain.ErrUnsupported))
}
