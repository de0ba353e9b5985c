//go:build !windows

package clipboard

import (
	"os/exec"
	"syscall"
)

// Helpers such as xclip fork to keep owning the selection; a dedicated
// process group lets a timeout take the whole tree down.
func setupProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func forceKillProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
