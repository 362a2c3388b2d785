package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureBackendFor(t *testing.T) {
	tests := []struct {
		platform Platform
		want     CaptureBackend
	}{
		{PlatformWindows, CaptureBackend{Format: "gdigrab", Target: "desktop"}},
		{PlatformDarwin, CaptureBackend{Format: "avfoundation", Target: "1:0"}},
		{PlatformLinux, CaptureBackend{Format: "x11grab", Target: ":99.0"}},
		{Platform("freebsd"), CaptureBackend{Format: "x11grab", Target: ":99.0"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			assert.Equal(t, tt.want, CaptureBackendFor(tt.platform))
		})
	}
}

func TestCaptureBackend_WithTarget(t *testing.T) {
	b := CaptureBackendFor(PlatformLinux)

	assert.Equal(t, ":1.0", b.WithTarget(":1.0").Target)
	assert.Equal(t, ":99.0", b.WithTarget("").Target)
	assert.Equal(t, ":99.0", b.Target, "receiver must not be modified")
}

func TestDefaultCaptureSettings(t *testing.T) {
	s := DefaultCaptureSettings()

	assert.Equal(t, 30, s.FrameRate)
	assert.Equal(t, 18, s.CRF)
	assert.Equal(t, "libx264", s.Codec)
	assert.Equal(t, "scale=1920:1080", s.Scale())
}
