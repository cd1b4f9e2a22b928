//go:build unix

package cmdexec

import (
	"os/exec"
	"syscall"
)

// setProcGroup starts the command in a new process group.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

// killProcGroup sends SIGKILL to the command's whole process group.
//
// pip may spawn build backends (setup.py, PEP 517 hooks); killing the group
// stops them together with pip when the run is interrupted.
//
// Parameters:
//   - cmd: The started command
//
// Returns:
//   - error: Error if the kill fails, nil if the process was never started
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	// Negative PID addresses the process group.
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
