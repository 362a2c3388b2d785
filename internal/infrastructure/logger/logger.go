package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	Info  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Warn  *log.Logger
)

const logFlags = log.Ldate | log.Ltime | log.LUTC | log.Lshortfile

func init() {
	Info = log.New(os.Stdout, "INFO: ", logFlags)
	Error = log.New(os.Stdout, "ERROR: ", logFlags)
	Debug = log.New(io.Discard, "DEBUG: ", logFlags)
	Warn = log.New(os.Stdout, "WARN: ", logFlags)
}

type Options struct {
	// Dir receives pagerec.log, rotated at 100MB and kept for MaxAgeDays.
	Dir        string
	MaxAgeDays int
	Console    bool
	Debug      bool
}

// Setup points the package loggers at the console, a rotated log file, or
// both. The returned closer flushes the file; it is never nil.
func Setup(opts Options) io.Closer {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if opts.Console {
		writers = append(writers, os.Stdout)
	}
	if opts.Dir != "" {
		maxAge := opts.MaxAgeDays
		if maxAge == 0 {
			maxAge = 30
		}
		file := &lumberjack.Logger{
			Filename:  filepath.Join(opts.Dir, "pagerec.log"),
			MaxSize:   100,
			MaxAge:    maxAge,
			LocalTime: false,
			Compress:  true,
		}
		writers = append(writers, file)
		closer = file
	}

	out := io.Discard
	if len(writers) > 0 {
		out = io.MultiWriter(writers...)
	}

	Info.SetOutput(out)
	Warn.SetOutput(out)
	Error.SetOutput(out)
	if opts.Debug {
		Debug.SetOutput(out)
	} else {
		Debug.SetOutput(io.Discard)
	}

	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
