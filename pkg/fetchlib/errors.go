package fetchlib

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTooManyRedirects is returned when a redirect chain exceeds the
	// configured maximum number of hops.
	ErrTooManyRedirects = errors.New("redirect loop detected")
	// ErrMissingLocation is returned when a redirect response carries no
	// Location header to follow.
	ErrMissingLocation = errors.New("redirect response has no location header")

	ErrDirectoryNotFound    = errors.New("download directory not found")
	ErrNotADirectory        = errors.New("download path is not a directory")
	ErrDirectoryNotWritable = errors.New("download directory is not writable")

	ErrInsufficientDiskSpace = errors.New("insufficient disk space")

	ErrEmptyProxyURL          = errors.New("proxy URL cannot be empty")
	ErrInvalidProxyURL        = errors.New("invalid proxy URL")
	ErrUnsupportedProxyScheme = errors.New("unsupported proxy scheme")
)

// ConnError reports a failure to reach the remote host (DNS resolution,
// TCP connect, TLS handshake, or a connection dropped mid-transfer).
// Connection errors are retriable.
type ConnError struct {
	URL string
	Err error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("connection failed: %s: %s", e.URL, e.Err.Error())
}

func (e *ConnError) Unwrap() error { return e.Err }

// TimeoutError reports an attempt that exceeded its per-attempt timeout.
// Timeout errors are retriable.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s: %s", e.Timeout, e.URL)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// StatusError reports a terminal HTTP status, i.e. anything other than
// 200 OK or a followable redirect. Status errors are never retried.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %s: %s", e.Status, e.URL)
}

// WriteError reports a filesystem failure while streaming a response
// body to its destination. The partial file has already been removed
// when a WriteError is returned. Write errors are terminal.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed: %s: %s", e.Path, e.Err.Error())
}

func (e *WriteError) Unwrap() error { return e.Err }
