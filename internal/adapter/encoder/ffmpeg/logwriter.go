package ffmpeg

import (
	"bytes"
	"log"
	"sync"
)

// lineLogger forwards process output to a logger one line at a time.
// ffmpeg's periodic progress lines go to progress instead of out.
type lineLogger struct {
	mu       sync.Mutex
	out      *log.Logger
	progress *log.Logger
	prefix   string
	buf      []byte
}

func newLineLogger(out, progress *log.Logger, prefix string) *lineLogger {
	return &lineLogger{out: out, progress: progress, prefix: prefix}
}

func isProgressLine(line []byte) bool {
	return bytes.HasPrefix(line, []byte("frame=")) || bytes.HasPrefix(line, []byte("size="))
}

func (w *lineLogger) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		// ffmpeg redraws its progress line with \r
		i := bytes.IndexAny(w.buf, "\r\n")
		if i < 0 {
			break
		}
		line := bytes.TrimSpace(w.buf[:i])
		w.buf = w.buf[i+1:]
		switch {
		case len(line) == 0:
		case isProgressLine(line):
			w.progress.Print(w.prefix + string(line))
		default:
			w.out.Print(w.prefix + string(line))
		}
	}
	return len(p), nil
}
