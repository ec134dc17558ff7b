package providers

import (
	"context"
	"strings"
	"time"

	"github.com/Adda-Baaj/newsfeed/internal/domain"
	"github.com/Adda-Baaj/newsfeed/pkg/httpclient"
)

// GuardianProviderID identifies The Guardian content API.
const GuardianProviderID = "guardian"

// HTTPClient is the transport used by fetchers.
type HTTPClient = httpclient.Client

// Provider describes a news API endpoint and the fixed parameters sent with every query.
type Provider struct {
	ID         string
	SourceURL  string
	APIKey     string
	ShowTags   string
	ShowFields string
	PageSize   int
	Headers    map[string]string
}

// Query holds the user-controlled search parameters.
type Query struct {
	Keywords string
	OrderBy  string
}

// Fetcher retrieves the raw JSON body behind a query URL.
type Fetcher interface {
	FetchJSON(ctx context.Context, queryURL string) (string, error)
}

// Source turns a query URL into news records, degrading every failure to nil.
type Source interface {
	FetchNews(ctx context.Context, queryURL string) []domain.News
}

// DefaultHTTPClient returns a client with the connect and read timeouts the feed expects.
func DefaultHTTPClient() HTTPClient {
	return httpclient.NewRestyClient(httpclient.Options{
		ConnectTimeout: 15 * time.Second,
		ReadTimeout:    10 * time.Second,
	})
}

// Headers returns a trimmed copy of the provider's extra request headers.
func Headers(cfg Provider) map[string]string {
	if len(cfg.Headers) == 0 {
		return nil
	}
	out := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if key == "" || val == "" {
			continue
		}
		out[key] = val
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
