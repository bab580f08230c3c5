//go:build windows

package subprocess

import "os"

// interruptProcess terminates the process. Windows has no SIGINT delivery
// for unrelated processes, so polite and forceful termination coincide.
func interruptProcess(proc *os.Process) error {
	return proc.Kill()
}

// killProcess terminates the process.
func killProcess(proc *os.Process) error {
	return proc.Kill()
}

// processAlive reports whether the process handle is still usable. The
// signal-0 probe is not supported on Windows; the transport's exit
// tracking covers actual liveness.
func processAlive(proc *os.Process) bool {
	return proc != nil
}
