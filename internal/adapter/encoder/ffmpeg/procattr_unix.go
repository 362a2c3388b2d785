//go:build unix

package ffmpeg

import (
	"os"
	"syscall"
)

// The encoder gets its own process group so a Ctrl-C on the server does
// not reach it before the recorder has a chance to stop it.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

func exitSignal(state *os.ProcessState) string {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return ""
	}
	return ws.Signal().String()
}
