//go:build !unix && !windows

package ffmpeg

import (
	"os"
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

func exitSignal(*os.ProcessState) string {
	return ""
}
