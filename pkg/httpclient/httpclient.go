package httpclient

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "newsfeed/1.0 (+https://github.com/Adda-Baaj/newsfeed)"

// Response is the subset of an HTTP response the app reads.
type Response interface {
	StatusCode() int
	Body() []byte
}

// Client performs GET requests. Non-2xx responses are returned, not turned into errors.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// Options tunes the resty-backed client.
type Options struct {
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	UserAgent      string
}

type restyClient struct {
	rc *resty.Client
}

// NewRestyClient builds a Client whose dial and TLS handshake are bounded by
// ConnectTimeout and whose wait for response headers is bounded by ReadTimeout.
func NewRestyClient(opts Options) Client {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 15 * time.Second
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	ua := strings.TrimSpace(opts.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   opts.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   opts.ConnectTimeout,
		ResponseHeaderTimeout: opts.ReadTimeout,
		IdleConnTimeout:       90 * time.Second,
	}

	rc := resty.New().
		SetTransport(transport).
		SetTimeout(opts.ConnectTimeout + opts.ReadTimeout).
		SetHeader("User-Agent", ua).
		SetHeader("Accept", "application/json")

	return &restyClient{rc: rc}
}

// Get issues a GET request with the given headers.
func (c *restyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeaders(headers).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	return resp, nil
}
