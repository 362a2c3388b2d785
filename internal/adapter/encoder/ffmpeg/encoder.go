package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/pagerec/internal/infrastructure/logger"
	"github.com/bnema/pagerec/internal/port"
)

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrInvalidPath = errors.New("path contains null byte")
)

type Encoder struct {
	binary string
}

func NewEncoder(binary string) *Encoder {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Encoder{binary: binary}
}

// CheckAvailable runs "<binary> -version" and expects an ffmpeg banner.
func (e *Encoder) CheckAvailable(ctx context.Context) error {
	output, err := exec.CommandContext(ctx, e.binary, "-version").Output()
	if err != nil {
		return fmt.Errorf("run %s -version: %w", e.binary, err)
	}
	if !strings.Contains(string(output), "ffmpeg version") {
		return fmt.Errorf("%s is not an ffmpeg binary", e.binary)
	}
	return nil
}

func (e *Encoder) Start(req port.EncodeRequest) (port.EncoderProcess, error) {
	if err := validatePath(req.OutputPath); err != nil {
		return nil, fmt.Errorf("invalid output path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(req.OutputPath), 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	return start(e.binary, BuildArgs(req), filepath.Base(req.OutputPath))
}

// BuildArgs renders the ffmpeg command line for a screen capture into a
// fragmented MP4, which stays playable if the process is killed mid-write.
func BuildArgs(req port.EncodeRequest) []string {
	s := req.Settings
	return []string{
		"-y",
		"-f", req.Backend.Format,
		"-r", strconv.Itoa(s.FrameRate),
		"-i", req.Backend.Target,
		"-vcodec", s.Codec,
		"-crf", strconv.Itoa(s.CRF),
		"-vf", s.Scale(),
		"-preset", s.Preset,
		"-movflags", "frag_keyframe+empty_moov",
		req.OutputPath,
	}
}

func start(name string, args []string, tag string) (*Process, error) {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdout = newLineLogger(logger.Debug, logger.Debug, "ffmpeg["+tag+"] ")
	cmd.Stderr = newLineLogger(logger.Warn, logger.Debug, "ffmpeg["+tag+"] ")

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	p := &Process{
		cmd:   cmd,
		stdin: stdin,
		done:  make(chan struct{}),
	}
	go p.wait()

	logger.Info.Printf("ffmpeg started (pid=%d, output=%s)", cmd.Process.Pid, tag)
	return p, nil
}

func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, 0) {
		return ErrInvalidPath
	}
	return nil
}

var _ port.Encoder = (*Encoder)(nil)
