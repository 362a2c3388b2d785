package port

import "time"

type Browser interface {
	// Open launches a browser, navigates it to url and waits for the network
	// to settle. The browser is closed before a non-nil error is returned.
	Open(url string, timeout time.Duration) (BrowserSession, error)
}

type BrowserSession interface {
	Close() error
}
