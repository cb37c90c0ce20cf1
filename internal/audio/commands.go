package audio

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/genricoloni/onair/internal/config"
	"github.com/genricoloni/onair/internal/domain"
	"go.uber.org/zap"
)

// PlayerCommand represents an external stream player
type PlayerCommand struct {
	Name   string
	Binary string
	Args   []string // %s will be replaced with the stream URL
}

var (
	// Ordered list of players to try (highest priority first)
	playerCommands = []PlayerCommand{
		{Name: "mpv", Binary: "mpv", Args: []string{"--no-video", "--no-terminal", "--cache=yes", "%s"}},
		{Name: "ffplay", Binary: "ffplay", Args: []string{"-nodisp", "-loglevel", "error", "%s"}},
		{Name: "mpg123", Binary: "mpg123", Args: []string{"-q", "%s"}},
		{Name: "vlc", Binary: "cvlc", Args: []string{"--intf", "dummy", "--quiet", "--play-and-exit", "%s"}},
	}

	// lookPath is swapped in tests
	lookPath = exec.LookPath
)

// detectCommand picks the configured player, or the first known player in PATH
func detectCommand(logger *zap.Logger, cfg config.PlayerConfig) (PlayerCommand, error) {
	if cfg.Command != "" {
		if _, err := lookPath(cfg.Command); err != nil {
			return PlayerCommand{}, fmt.Errorf("%w: %s: %v", domain.ErrPlayerNotFound, cfg.Command, err)
		}
		return configuredCommand(cfg), nil
	}

	for _, cmd := range playerCommands {
		if commandExists(cmd.Binary) {
			logger.Debug("Stream player detected", zap.String("name", cmd.Name))
			return cmd, nil
		}
	}

	names := make([]string, len(playerCommands))
	for i, cmd := range playerCommands {
		names[i] = cmd.Binary
	}
	return PlayerCommand{}, fmt.Errorf("%w: tried %s", domain.ErrPlayerNotFound, strings.Join(names, ", "))
}

// configuredCommand builds a command from config, borrowing default
// arguments when the binary is a known player
func configuredCommand(cfg config.PlayerConfig) PlayerCommand {
	cmd := PlayerCommand{
		Name:   filepath.Base(cfg.Command),
		Binary: cfg.Command,
		Args:   cfg.Args,
	}
	if len(cmd.Args) > 0 {
		return cmd
	}

	for _, known := range playerCommands {
		if known.Binary == cmd.Name {
			cmd.Name = known.Name
			cmd.Args = known.Args
			return cmd
		}
	}
	cmd.Args = []string{"%s"}
	return cmd
}

// commandExists checks if a binary exists in PATH
func commandExists(binary string) bool {
	_, err := lookPath(binary)
	return err == nil
}

// expandArgs substitutes the stream URL into the argument template
func expandArgs(template []string, streamURL string) []string {
	args := make([]string, len(template))
	for i, arg := range template {
		args[i] = strings.ReplaceAll(arg, "%s", streamURL)
	}
	return args
}
