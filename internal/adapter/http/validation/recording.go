package validation

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// Messages are returned to API clients verbatim.
var (
	ErrURLAndIDRequired = errors.New("URL and ID are required.")
	ErrIDNotPositive    = errors.New("ID must be a positive number.")
	ErrInvalidURL       = errors.New("Invalid URL format.")
	ErrIDRequired       = errors.New("ID is required.")
)

// StartRequest is the body of POST /api/start. ID is decoded with
// json.Decoder.UseNumber so its JSON type can be checked.
type StartRequest struct {
	URL string `json:"url"`
	ID  any    `json:"id"`
}

// Validate checks the request and returns the recording id. The id must be
// a JSON number; strings are rejected even if they contain digits.
func (r StartRequest) Validate() (int64, error) {
	if strings.TrimSpace(r.URL) == "" || isEmptyID(r.ID) {
		return 0, ErrURLAndIDRequired
	}

	n, ok := r.ID.(json.Number)
	if !ok {
		return 0, ErrIDNotPositive
	}
	id, err := positiveInt(string(n))
	if err != nil {
		return 0, err
	}

	if err := ValidateURL(r.URL); err != nil {
		return 0, err
	}
	return id, nil
}

type StopRequest struct {
	ID any `json:"id"`
}

// Validate accepts the id as a JSON number or a numeric string.
func (r StopRequest) Validate() (int64, error) {
	if isEmptyID(r.ID) {
		return 0, ErrIDRequired
	}
	switch v := r.ID.(type) {
	case json.Number:
		return positiveInt(string(v))
	case string:
		return positiveInt(strings.TrimSpace(v))
	default:
		return 0, ErrIDNotPositive
	}
}

// ParseID parses a recording id taken from a URL path.
func ParseID(raw string) (int64, error) {
	if raw == "" {
		return 0, ErrIDRequired
	}
	return positiveInt(raw)
}

// ValidateURL requires an absolute URL with a scheme and, for hierarchical
// URLs, a host.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return ErrInvalidURL
	}
	if u.Opaque == "" && u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

func isEmptyID(v any) bool {
	switch id := v.(type) {
	case nil:
		return true
	case string:
		return id == ""
	case bool:
		return !id
	case json.Number:
		f, err := id.Float64()
		return err == nil && f == 0
	}
	return false
}

func positiveInt(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrIDNotPositive
	}
	return id, nil
}
