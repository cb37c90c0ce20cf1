//go:build !windows
// +build !windows

package audio

import (
	"os"
	"syscall"
)

// terminate asks the player to quit
func terminate(proc *os.Process) error {
	return proc.Signal(syscall.SIGTERM)
}
