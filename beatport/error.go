package beatport

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxErrorBody = 2048

// APIError represents a non-2xx Beatport response
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut] + "..."
	}
	if body == "" {
		return fmt.Sprintf("beatport: %v %v: %v", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("beatport: %v %v: %v: %s", e.Method, e.URL, e.Status, body)
}

// StatusCode returns the upstream status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
