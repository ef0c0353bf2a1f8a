package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrFetch matches every fetch failure via errors.Is
	ErrFetch = errors.New("fetch failed")

	ErrInvalidURL   = errors.New("invalid url")
	ErrBodyTooLarge = errors.New("response body too large")
)

// Error describes a failed fetch. StatusCode is zero for transport
// failures (DNS, connection, timeout).
type Error struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: http status %s", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every *Error match ErrFetch
func (e *Error) Is(target error) bool {
	return target == ErrFetch
}

// IsStatus reports whether err is a fetch that reached the server and was
// answered with a non-2xx status
func IsStatus(err error) bool {
	return StatusCode(err) != 0
}

// StatusCode returns the HTTP status of a failed fetch, or 0
func StatusCode(err error) int {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.StatusCode
	}
	return 0
}

// IsNotFound reports a 404 or 410 answer
func IsNotFound(err error) bool {
	code := StatusCode(err)
	return code == http.StatusNotFound || code == http.StatusGone
}
