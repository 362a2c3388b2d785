package domain

import "fmt"

type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformDarwin  Platform = "darwin"
	PlatformLinux   Platform = "linux"
)

// CaptureBackend is the ffmpeg input device and the target it reads from.
type CaptureBackend struct {
	Format string
	Target string
}

// CaptureBackendFor maps a GOOS value to its screen capture backend. Every
// platform that is neither Windows nor macOS is assumed to run X11.
func CaptureBackendFor(p Platform) CaptureBackend {
	switch p {
	case PlatformWindows:
		return CaptureBackend{Format: "gdigrab", Target: "desktop"}
	case PlatformDarwin:
		return CaptureBackend{Format: "avfoundation", Target: "1:0"}
	default:
		return CaptureBackend{Format: "x11grab", Target: ":99.0"}
	}
}

// WithTarget overrides the capture target, ignoring empty values.
func (b CaptureBackend) WithTarget(target string) CaptureBackend {
	if target != "" {
		b.Target = target
	}
	return b
}

type CaptureSettings struct {
	FrameRate int
	Width     int
	Height    int
	CRF       int
	Codec     string
	Preset    string
}

func DefaultCaptureSettings() CaptureSettings {
	return CaptureSettings{
		FrameRate: 30,
		Width:     1920,
		Height:    1080,
		CRF:       18,
		Codec:     "libx264",
		Preset:    "ultrafast",
	}
}

func (s CaptureSettings) Scale() string {
	return fmt.Sprintf("scale=%d:%d", s.Width, s.Height)
}
