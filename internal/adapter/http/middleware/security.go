package middleware

import (
	"net/http"
	"strings"
)

const hstsValue = "max-age=31536000; includeSubDomains"

// The dashboard is server-rendered with inline styles only; the API and the
// event stream are same-origin.
var cspDirectives = []string{
	"default-src 'self'",
	"script-src 'self'",
	"style-src 'self' 'unsafe-inline'",
	"img-src 'self' data:",
	"media-src 'self'",
	"connect-src 'self'",
	"frame-ancestors 'none'",
	"form-action 'self'",
}

var staticHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	// The recorder captures its own display; pages must not ask for it.
	{"Permissions-Policy", "camera=(), microphone=(), geolocation=(), display-capture=()"},
	{"Content-Security-Policy", strings.Join(cspDirectives, "; ")},
}

// SecurityHeaders sets the static security headers on every response.
// Recording status under /api/ changes from one request to the next and is
// marked no-store. HSTS is only sent over TLS.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, kv := range staticHeaders {
			h.Set(kv[0], kv[1])
		}
		if strings.HasPrefix(r.URL.Path, "/api/") {
			h.Set("Cache-Control", "no-store")
		}
		if servedOverTLS(r) {
			h.Set("Strict-Transport-Security", hstsValue)
		}
		next.ServeHTTP(w, r)
	})
}

// servedOverTLS reports a TLS connection, directly or behind a proxy that
// sets X-Forwarded-Proto.
func servedOverTLS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
