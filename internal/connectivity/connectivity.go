package connectivity

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/Adda-Baaj/newsfeed/internal/logger"
)

// Checker reports whether the news API host is reachable.
type Checker interface {
	Connected(ctx context.Context) bool
}

// DialChecker probes reachability with a TCP dial to a fixed address.
type DialChecker struct {
	addr    string
	timeout time.Duration
	log     logger.Logger
}

// NewDialChecker derives the probe address from endpoint (host plus explicit port,
// or 443/80 by scheme).
func NewDialChecker(endpoint string, timeout time.Duration, log logger.Logger) (*DialChecker, error) {
	addr, err := probeAddr(endpoint)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &DialChecker{addr: addr, timeout: timeout, log: logger.Ensure(log)}, nil
}

// Addr returns the probed host:port.
func (c *DialChecker) Addr() string { return c.addr }

// Connected dials the probe address once.
func (c *DialChecker) Connected(ctx context.Context) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		c.log.InfoObj("network unavailable", "connectivity", map[string]any{
			"addr":  c.addr,
			"error": err.Error(),
		})
		return false
	}
	conn.Close()
	return true
}

func probeAddr(endpoint string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return "", fmt.Errorf("parse connectivity endpoint: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("connectivity endpoint %q has no host", endpoint)
	}

	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "http":
			port = "80"
		default:
			port = "443"
		}
	}
	return net.JoinHostPort(host, port), nil
}

// Static is a Checker with a fixed answer.
type Static bool

func (s Static) Connected(context.Context) bool { return bool(s) }
