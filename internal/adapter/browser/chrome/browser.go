package chrome

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/bnema/pagerec/internal/infrastructure/logger"
	"github.com/bnema/pagerec/internal/port"
)

type Options struct {
	ExecPath string
	Headless bool
	// Display is the X11 display a non-headless browser is shown on.
	Display string
	Width   int
	Height  int
}

type Browser struct {
	opts Options
}

func NewBrowser(opts Options) *Browser {
	if opts.Width == 0 {
		opts.Width = 1920
	}
	if opts.Height == 0 {
		opts.Height = 1080
	}
	return &Browser{opts: opts}
}

func (b *Browser) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.NoSandbox,
		chromedp.WindowSize(b.opts.Width, b.opts.Height),
	)
	if b.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.opts.ExecPath))
	}
	if !b.opts.Headless {
		opts = append(opts,
			chromedp.Flag("headless", false),
			chromedp.Flag("kiosk", true),
			chromedp.Flag("start-fullscreen", true),
		)
		if b.opts.Display != "" {
			opts = append(opts, chromedp.Env("DISPLAY="+displayName(b.opts.Display)))
		}
	}
	return opts
}

// Open launches a dedicated browser for url. The browser outlives the call
// and is only released by Session.Close.
func (b *Browser) Open(url string, timeout time.Duration) (port.BrowserSession, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), b.allocatorOptions()...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	s := &Session{tabCtx: tabCtx, tabCancel: tabCancel, allocCancel: allocCancel}

	if err := chromedp.Run(tabCtx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	if err := navigate(tabCtx, url, timeout); err != nil {
		_ = s.Close()
		return nil, err
	}

	logger.Info.Printf("browser navigated to %s", logger.SanitizeForLog(url))
	return s, nil
}

// navigate loads url and waits until the main frame reports
// networkAlmostIdle (no more than two connections for 500ms).
func navigate(tabCtx context.Context, url string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(tabCtx, timeout)
	defer cancel()

	idle := make(chan struct{})
	var (
		mu       sync.Mutex
		armed    bool
		loaderID cdp.LoaderID
		once     sync.Once
	)

	chromedp.ListenTarget(ctx, func(ev interface{}) {
		e, ok := ev.(*page.EventLifecycleEvent)
		if !ok {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if !armed {
			return
		}
		switch e.Name {
		case "init":
			if loaderID == "" {
				loaderID = e.LoaderID
			}
		case "networkAlmostIdle":
			if e.LoaderID == loaderID {
				once.Do(func() { close(idle) })
			}
		}
	})

	err := chromedp.Run(ctx,
		page.SetLifecycleEventsEnabled(true),
		chromedp.ActionFunc(func(context.Context) error {
			mu.Lock()
			armed = true
			mu.Unlock()
			return nil
		}),
		chromedp.Navigate(url),
	)
	if err != nil {
		return fmt.Errorf("navigate: %w", err)
	}

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("navigation timeout of %s exceeded", timeout)
		}
		return ctx.Err()
	}
}

// displayName strips the screen suffix from an X11 capture target, so
// ":99.0" becomes ":99".
func displayName(target string) string {
	for i := len(target) - 1; i > 0; i-- {
		if target[i] == '.' {
			return target[:i]
		}
		if target[i] == ':' {
			break
		}
	}
	return target
}

type Session struct {
	tabCtx      context.Context
	tabCancel   context.CancelFunc
	allocCancel context.CancelFunc
	once        sync.Once
	err         error
}

func (s *Session) Close() error {
	s.once.Do(func() {
		s.err = chromedp.Cancel(s.tabCtx)
		s.tabCancel()
		s.allocCancel()
		if errors.Is(s.err, context.Canceled) {
			s.err = nil
		}
	})
	return s.err
}

var (
	_ port.Browser        = (*Browser)(nil)
	_ port.BrowserSession = (*Session)(nil)
)
