//go:build !windows

package subprocess

import (
	"os"
	"syscall"
)

// interruptProcess sends the polite termination signal.
func interruptProcess(proc *os.Process) error {
	return proc.Signal(os.Interrupt)
}

// killProcess sends the forceful termination signal.
func killProcess(proc *os.Process) error {
	return proc.Kill()
}

// processAlive probes the process with signal 0. A failed probe means the
// process no longer exists or is inaccessible; both count as not alive.
func processAlive(proc *os.Process) bool {
	return proc.Signal(syscall.Signal(0)) == nil
}
