//go:build !linux
// +build !linux

package mpris

import (
	"context"
	"fmt"

	"github.com/genricoloni/onair/internal/domain"
	"go.uber.org/zap"
)

// Server stub for non-Linux platforms
type Server struct {
	logger *zap.Logger
}

// NewServer creates a stub server that returns an error on non-Linux platforms
func NewServer(logger *zap.Logger, submitter domain.Submitter) *Server {
	return &Server{logger: logger}
}

// Start returns an error indicating MPRIS is not supported on this platform
func (s *Server) Start(ctx context.Context) error {
	return fmt.Errorf("MPRIS: %w", domain.ErrUnsupported)
}

// Stop is a no-op on non-Linux platforms
func (s *Server) Stop(ctx context.Context) error {
	return nil
}

func (s *Server) SetPlaybackState(playing bool)             {}
func (s *Server) ShowLoading()                              {}
func (s *Server) ShowNowPlaying(info domain.NowPlayingInfo) {}
func (s *Server) ClearNowPlaying()                          {}
func (s *Server) ShowError(err error)                       {}
