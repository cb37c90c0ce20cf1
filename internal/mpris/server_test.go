//go:build linux
// +build linux

package mpris

import (
	"context"
	"errors"
	"testing"

	"github.com/genricoloni/onair/internal/domain"
	"github.com/genricoloni/onair/internal/domain/mocks"
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeBusConn records exports instead of talking to a bus
type fakeBusConn struct {
	reply    dbus.RequestNameReply
	exported map[string]interface{}
	props    prop.Map
	setter   *fakeSetter
	closed   bool
}

func newFakeBusConn() *fakeBusConn {
	return &fakeBusConn{
		reply:    dbus.RequestNameReplyPrimaryOwner,
		exported: make(map[string]interface{}),
		setter:   &fakeSetter{values: make(map[string]interface{})},
	}
}

func (c *fakeBusConn) RequestName(name string, flags dbus.RequestNameFlags) (dbus.RequestNameReply, error) {
	return c.reply, nil
}

func (c *fakeBusConn) Export(v interface{}, path dbus.ObjectPath, iface string) error {
	c.exported[iface] = v
	return nil
}

func (c *fakeBusConn) ExportProperties(path dbus.ObjectPath, props prop.Map) (PropertySetter, error) {
	c.props = props
	return c.setter, nil
}

func (c *fakeBusConn) Close() error {
	c.closed = true
	return nil
}

type fakeSetter struct {
	values map[string]interface{}
}

func (s *fakeSetter) SetMust(iface, property string, v interface{}) {
	s.values[iface+"."+property] = v
}

func newTestServer(t *testing.T, conn *fakeBusConn, submitter domain.Submitter) *Server {
	t.Helper()
	s := NewServer(zap.NewNop(), submitter)
	s.dial = func() (BusConn, error) { return conn, nil }
	return s
}

func TestServer_StartExportsInterfaces(t *testing.T) {
	conn := newFakeBusConn()
	s := newTestServer(t, conn, nil)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for _, iface := range []string{rootIface, playerIface} {
		if _, ok := conn.exported[iface]; !ok {
			t.Errorf("expected %s to be exported", iface)
		}
	}
	if got := conn.props[playerIface]["PlaybackStatus"].Value; got != "Stopped" {
		t.Errorf("initial PlaybackStatus: expected Stopped, got %v", got)
	}
	if got := conn.props[rootIface]["Identity"].Value; got != "onair" {
		t.Errorf("Identity: expected onair, got %v", got)
	}

	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if !conn.closed {
		t.Error("Stop should close the bus connection")
	}
}

func TestServer_NameTaken(t *testing.T) {
	conn := newFakeBusConn()
	conn.reply = dbus.RequestNameReplyExists
	s := newTestServer(t, conn, nil)

	if err := s.Start(context.Background()); err == nil {
		t.Fatal("expected error when the bus name is taken")
	}
	if !conn.closed {
		t.Error("connection should be closed after a failed start")
	}
}

func TestServer_DialFailure(t *testing.T) {
	s := NewServer(zap.NewNop(), nil)
	s.dial = func() (BusConn, error) { return nil, errors.New("no session bus") }

	if err := s.Start(context.Background()); err == nil {
		t.Fatal("expected error without a session bus")
	}
	// Display calls are safe without a connection
	s.SetPlaybackState(true)
	s.ShowNowPlaying(domain.NowPlayingInfo{SongTitle: "Song A"})
}

func TestServer_DisplayUpdatesProperties(t *testing.T) {
	conn := newFakeBusConn()
	s := newTestServer(t, conn, nil)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	s.SetPlaybackState(true)
	if got := conn.setter.values[playerIface+".PlaybackStatus"]; got != "Playing" {
		t.Errorf("PlaybackStatus: expected Playing, got %v", got)
	}

	s.ShowNowPlaying(domain.NowPlayingInfo{SongTitle: "Song A", ArtistName: "Artist B"})
	meta, ok := conn.setter.values[playerIface+".Metadata"].(map[string]dbus.Variant)
	if !ok {
		t.Fatalf("Metadata has wrong type: %T", conn.setter.values[playerIface+".Metadata"])
	}
	if title, _ := meta["xesam:title"].Value().(string); title != "Song A" {
		t.Errorf("xesam:title: expected 'Song A', got '%s'", title)
	}
	artists, _ := meta["xesam:artist"].Value().([]string)
	if len(artists) != 1 || artists[0] != "Artist B" {
		t.Errorf("xesam:artist: expected [Artist B], got %v", artists)
	}

	s.ClearNowPlaying()
	meta = conn.setter.values[playerIface+".Metadata"].(map[string]dbus.Variant)
	if _, ok := meta["xesam:title"]; ok {
		t.Error("cleared metadata should have no title")
	}
	if id, _ := meta["mpris:trackid"].Value().(dbus.ObjectPath); id != noTrack {
		t.Errorf("cleared metadata should point at NoTrack, got %v", id)
	}
}

func TestPlayerObject_SubmitsCommands(t *testing.T) {
	tests := []struct {
		name     string
		call     func(playerObject) *dbus.Error
		expected domain.Command
	}{
		{"Play", playerObject.Play, domain.CommandStart},
		{"Pause Stops Live Stream", playerObject.Pause, domain.CommandStop},
		{"PlayPause", playerObject.PlayPause, domain.CommandToggle},
		{"Stop", playerObject.Stop, domain.CommandStop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			submitter := mocks.NewMockSubmitter(ctrl)
			submitter.EXPECT().Submit(tt.expected).Return(true)

			s := NewServer(zap.NewNop(), submitter)
			if err := tt.call(playerObject{s}); err != nil {
				t.Errorf("unexpected D-Bus error: %v", err)
			}
		})
	}
}

func TestRootObject_QuitAndFullQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submitter := mocks.NewMockSubmitter(ctrl)
	submitter.EXPECT().Submit(domain.CommandQuit).Return(false)

	s := NewServer(zap.NewNop(), submitter)
	if err := (rootObject{s}).Quit(); err == nil {
		t.Error("expected a D-Bus error when the command queue is full")
	}
}
