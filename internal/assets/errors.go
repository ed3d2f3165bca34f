package assets

import (
	"fmt"
)

// Kind classifies why a fetch failed.
type Kind int

const (
	// KindHTTPStatus means the server answered outside [200,300).
	KindHTTPStatus Kind = iota
	// KindTimeout means the deadline passed before the body was read.
	KindTimeout
	// KindConnectionFailed covers DNS, dial, TLS and transport errors.
	KindConnectionFailed
)

func (k Kind) String() string {
	switch k {
	case KindHTTPStatus:
		return "http_status"
	case KindTimeout:
		return "timeout"
	case KindConnectionFailed:
		return "connection_failed"
	default:
		return "unknown"
	}
}

// FetchError is returned by Fetcher for transport level failures.
type FetchError struct {
	Kind       Kind
	URL        string
	StatusCode int // set only for KindHTTPStatus
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Kind)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a body is not valid JSON or not a usable image.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
