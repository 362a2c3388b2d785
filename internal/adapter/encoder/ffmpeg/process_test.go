package ffmpeg

import (
	"bytes"
	"log"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, p *Process) {
	t.Helper()
	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("process did not exit")
	}
}

func TestProcess_ExitCodes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	t.Run("clean exit", func(t *testing.T) {
		p, err := start("sh", []string{"-c", "exit 0"}, "test")
		require.NoError(t, err)
		waitDone(t, p)

		res := p.Result()
		assert.True(t, res.Success())
		assert.Equal(t, 0, res.Code)
	})

	t.Run("non-zero exit", func(t *testing.T) {
		p, err := start("sh", []string{"-c", "exit 3"}, "test")
		require.NoError(t, err)
		waitDone(t, p)

		res := p.Result()
		assert.False(t, res.Success())
		assert.Equal(t, 3, res.Code)
		assert.Empty(t, res.Signal)
		assert.Contains(t, res.Message(), "error code 3")
	})

	t.Run("killed", func(t *testing.T) {
		p, err := start("sleep", []string{"30"}, "test")
		require.NoError(t, err)
		assert.Positive(t, p.PID())

		require.NoError(t, p.Kill())
		waitDone(t, p)

		res := p.Result()
		assert.False(t, res.Success())
		assert.Equal(t, -1, res.Code)
		assert.Equal(t, "killed", res.Signal)
	})

	t.Run("interrupted", func(t *testing.T) {
		p, err := start("sleep", []string{"30"}, "test")
		require.NoError(t, err)

		require.NoError(t, p.Interrupt())
		waitDone(t, p)

		res := p.Result()
		assert.Equal(t, "interrupt", res.Signal)
	})
}

func TestStart_MissingBinary(t *testing.T) {
	_, err := start("pagerec-no-such-binary", nil, "test")
	assert.Error(t, err)
}

func TestLineLogger(t *testing.T) {
	var out, progress bytes.Buffer
	w := newLineLogger(log.New(&out, "", 0), log.New(&progress, "", 0), "ffmpeg[1.mp4] ")

	_, _ = w.Write([]byte("frame=  1 fps=0.0\rframe=  2"))
	_, _ = w.Write([]byte(" fps=30\nInput #0, x11grab\n\n"))
	_, _ = w.Write([]byte("size=     256kB time=00:00:01.00\r[x11grab @ 0x1] Stream #0: not enough frames\n"))

	assert.Equal(t,
		"ffmpeg[1.mp4] Input #0, x11grab\nffmpeg[1.mp4] [x11grab @ 0x1] Stream #0: not enough frames\n",
		out.String())
	assert.Equal(t,
		"ffmpeg[1.mp4] frame=  1 fps=0.0\nffmpeg[1.mp4] frame=  2 fps=30\nffmpeg[1.mp4] size=     256kB time=00:00:01.00\n",
		progress.String())
}
