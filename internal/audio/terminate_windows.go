//go:build windows
// +build windows

package audio

import "os"

// terminate kills the player, Windows has no SIGTERM
func terminate(proc *os.Process) error {
	return proc.Kill()
}
