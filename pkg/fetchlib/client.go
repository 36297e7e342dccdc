package fetchlib

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	DEF_TIMEOUT    = 30 * time.Second
	DEF_USER_AGENT = "bulkget/1.0"
)

// Response is the outcome of a single fetch attempt: the raw status,
// headers, and an unconsumed body stream. Close must be called exactly
// once, after the body has been drained or abandoned.
type Response struct {
	StatusCode    int
	Status        string
	Header        http.Header
	Body          io.ReadCloser
	ContentLength ContentLength

	cancel context.CancelFunc
}

// Close releases the body stream and the connection backing it.
func (r *Response) Close() error {
	err := r.Body.Close()
	if r.cancel != nil {
		r.cancel()
	}
	return err
}

// Client issues single HTTP GET attempts. It never retries and never
// follows redirects; both policies belong to the task driving it. The
// per-attempt timeout covers connection establishment and header
// receipt, and firing it aborts the underlying connection.
type Client struct {
	hc      *http.Client
	timeout time.Duration
	headers Headers
}

// ClientOpts are optional settings for NewClient.
type ClientOpts struct {
	// Timeout bounds each attempt from dial to header receipt.
	// Zero means DEF_TIMEOUT; negative disables the timeout.
	Timeout time.Duration
	// Headers are applied to every request. A User-Agent is filled in
	// when not supplied.
	Headers Headers
	// Transport overrides the default transport, e.g. to route through
	// a proxy (see NewTransport).
	Transport http.RoundTripper
}

// NewClient creates a single-attempt HTTP client.
func NewClient(opts *ClientOpts) *Client {
	if opts == nil {
		opts = &ClientOpts{}
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DEF_TIMEOUT
	}
	headers := opts.Headers
	headers.InitOrUpdate(USER_AGENT_KEY, DEF_USER_AGENT)
	hc := &http.Client{
		Transport: opts.Transport,
		// Redirects are resolved by the caller so that the retry state
		// machine can observe every hop.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &Client{
		hc:      hc,
		timeout: timeout,
		headers: headers,
	}
}

// Timeout returns the per-attempt timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Fetch issues one GET request for rawURL. Transport failures map to
// *ConnError, expired attempts to *TimeoutError, and caller
// cancellation surfaces as the context error. The response body remains
// readable after Fetch returns; the attempt timer stops at header
// receipt so large bodies can stream for as long as they need.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	actx, cancel := context.WithCancel(ctx)

	var timedOut atomic.Bool
	var timer *time.Timer
	if c.timeout > 0 {
		timer = time.AfterFunc(c.timeout, func() {
			timedOut.Store(true)
			cancel()
		})
	}

	req, err := http.NewRequestWithContext(actx, http.MethodGet, rawURL, nil)
	if err != nil {
		cancel()
		return nil, &ConnError{URL: rawURL, Err: err}
	}
	c.headers.Set(req.Header)

	resp, err := c.hc.Do(req)
	if timer != nil {
		timer.Stop()
	}
	if err != nil {
		cancel()
		if timedOut.Load() {
			return nil, &TimeoutError{URL: rawURL, Timeout: c.timeout, Err: err}
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, &TimeoutError{URL: rawURL, Timeout: c.timeout, Err: err}
		}
		return nil, &ConnError{URL: rawURL, Err: err}
	}

	return &Response{
		StatusCode:    resp.StatusCode,
		Status:        resp.Status,
		Header:        resp.Header,
		Body:          resp.Body,
		ContentLength: ContentLength(resp.ContentLength),
		cancel:        cancel,
	}, nil
}
