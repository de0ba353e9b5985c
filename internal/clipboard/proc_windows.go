//go:build windows

package clipboard

import "os/exec"

func setupProcessGroup(cmd *exec.Cmd) {}

func forceKillProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
