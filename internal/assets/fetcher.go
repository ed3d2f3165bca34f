// Package assets fetches and memoizes the decorative assets of the page:
// the hero animation descriptor and the hero/project images.
package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout bounds every fetch unless overridden with WithTimeout.
const DefaultTimeout = 8 * time.Second

// DefaultMaxBodySize caps how much of an asset body is read.
const DefaultMaxBodySize int64 = 16 << 20

// ErrBodyTooLarge is wrapped in a DecodeError when a body exceeds the cap.
var ErrBodyTooLarge = errors.New("body exceeds size limit")

// Fetcher issues single GET requests for asset URLs. It never retries.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	maxBody int64
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithMaxBodySize overrides DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBody = n
		}
	}
}

// WithRateLimit paces outbound requests. A zero limit leaves fetches unpaced.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(f *Fetcher) {
		if limit <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		f.limiter = rate.NewLimiter(limit, burst)
	}
}

// NewFetcher builds a Fetcher around client. A nil client uses a fresh
// http.Client so the default transport is still shared.
func NewFetcher(client *http.Client, opts ...Option) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	f := &Fetcher{
		client:  client,
		timeout: DefaultTimeout,
		maxBody: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Timeout reports the per-fetch deadline.
func (f *Fetcher) Timeout() time.Duration {
	return f.timeout
}

// FetchBytes returns the raw body of url when the status is 2xx.
func (f *Fetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, &FetchError{Kind: KindTimeout, URL: url, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindConnectionFailed, URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: classify(ctx, err), URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		return nil, &FetchError{Kind: KindHTTPStatus, URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, &FetchError{Kind: classify(ctx, err), URL: url, Err: err}
	}
	if int64(len(body)) > f.maxBody {
		return nil, &DecodeError{What: "body", Err: fmt.Errorf("%w: %s over %d bytes", ErrBodyTooLarge, url, f.maxBody)}
	}
	return body, nil
}

// FetchJSON fetches url and decodes the body as an arbitrary JSON value.
func (f *Fetcher) FetchJSON(ctx context.Context, url string) (any, error) {
	body, err := f.FetchBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	return DecodeJSON(body)
}

// DecodeJSON parses body into a generic JSON value.
func DecodeJSON(body []byte) (any, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, &DecodeError{What: "json", Err: err}
	}
	return v, nil
}

func classify(ctx context.Context, err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindConnectionFailed
}

// IsFetchKind reports whether err is a *FetchError of kind k.
func IsFetchKind(err error, k Kind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == k
}

func jsonKey(url string) string  { return fmt.Sprintf("json:%s", url) }
func bytesKey(url string) string { return fmt.Sprintf("bytes:%s", url) }
