package chrome

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{":99.0", ":99"},
		{":0", ":0"},
		{"localhost:10.0", "localhost:10"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, displayName(tt.in))
		})
	}
}

func TestNewBrowser_Defaults(t *testing.T) {
	b := NewBrowser(Options{Headless: true})

	assert.Equal(t, 1920, b.opts.Width)
	assert.Equal(t, 1080, b.opts.Height)
}

func TestAllocatorOptions(t *testing.T) {
	headless := NewBrowser(Options{Headless: true})
	visible := NewBrowser(Options{Headless: false, Display: ":99.0"})

	base := len(chromedp.DefaultExecAllocatorOptions)
	assert.Len(t, headless.allocatorOptions(), base+2)
	assert.Len(t, visible.allocatorOptions(), base+6)
}

func findChrome(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	t.Skip("no chrome binary found")
	return ""
}

func TestBrowser_Open(t *testing.T) {
	if testing.Short() {
		t.Skip("launches a real browser")
	}
	execPath := findChrome(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body><h1>recording target</h1></body></html>")
	}))
	defer srv.Close()

	b := NewBrowser(Options{ExecPath: execPath, Headless: true})

	session, err := b.Open(srv.URL, 30*time.Second)
	require.NoError(t, err)
	assert.NoError(t, session.Close())
	assert.NoError(t, session.Close())
}

func TestBrowser_Open_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("launches a real browser")
	}
	execPath := findChrome(t)

	b := NewBrowser(Options{ExecPath: execPath, Headless: true})

	_, err := b.Open("http://127.0.0.1:1/", 10*time.Second)
	assert.Error(t, err)
}
