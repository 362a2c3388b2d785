package logger

import (
	"fmt"
	"strings"
)

// maxLogValue bounds how much of a caller-supplied value reaches the log.
const maxLogValue = 1024

// SanitizeForLog escapes control characters in caller-supplied values such
// as URLs so they cannot forge log lines or drive the terminal. Unicode is
// kept as is. Values longer than maxLogValue runes are truncated.
func SanitizeForLog(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	n := 0
	for _, r := range s {
		if n == maxLogValue {
			result.WriteString("...(truncated)")
			break
		}
		n++

		switch r {
		case '\n':
			result.WriteString("\\n")
		case '\r':
			result.WriteString("\\r")
		case '\t':
			result.WriteString("\\t")
		default:
			if r < 32 || r == 127 {
				result.WriteString(fmt.Sprintf("\\x%02x", r))
			} else {
				result.WriteRune(r)
			}
		}
	}
	return result.String()
}
