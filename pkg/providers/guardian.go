package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Adda-Baaj/newsfeed/internal/domain"
	"github.com/Adda-Baaj/newsfeed/internal/logger"
)

// GuardianFetcher queries The Guardian's content API.
type GuardianFetcher struct {
	client  HTTPClient
	headers map[string]string
	log     logger.Logger
}

// NewGuardianFetcher builds a fetcher sending cfg's extra headers with each request.
func NewGuardianFetcher(client HTTPClient, cfg Provider, log logger.Logger) *GuardianFetcher {
	if client == nil {
		client = DefaultHTTPClient()
	}
	return &GuardianFetcher{
		client:  client,
		headers: Headers(cfg),
		log:     logger.Ensure(log),
	}
}

// ID returns the provider id served by this fetcher.
func (f *GuardianFetcher) ID() string {
	return GuardianProviderID
}

// FetchJSON performs a single GET and returns the body when the API answers 200.
func (f *GuardianFetcher) FetchJSON(ctx context.Context, queryURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(queryURL))
	if err != nil {
		return "", fmt.Errorf("parse query url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("query url %q is not absolute", queryURL)
	}

	resp, err := f.client.Get(ctx, u.String(), f.headers)
	if err != nil {
		return "", fmt.Errorf("fetch %s search: %w", GuardianProviderID, err)
	}

	body := resp.Body()
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%s search returned status %d body: %s", GuardianProviderID, resp.StatusCode(), responseSnippet(body))
	}
	return string(body), nil
}

// FetchNews fetches and parses queryURL. Failures are logged and yield nil.
func (f *GuardianFetcher) FetchNews(ctx context.Context, queryURL string) []domain.News {
	body, err := f.FetchJSON(ctx, queryURL)
	if err != nil {
		f.log.ErrorObj("news fetch failed", "fetch_error", map[string]any{
			"provider_id": GuardianProviderID,
			"url":         redactAPIKey(queryURL),
			"error":       err.Error(),
		})
		return nil
	}

	news, err := ParseNews(body, f.log)
	if err != nil {
		f.log.ErrorObj("news parse failed", "parse_error", map[string]any{
			"provider_id": GuardianProviderID,
			"error":       err.Error(),
			"body":        responseSnippet([]byte(body)),
		})
		return nil
	}

	f.log.DebugObj("news fetched", "fetch_done", map[string]any{
		"provider_id": GuardianProviderID,
		"count":       len(news),
	})
	return news
}

// redactAPIKey masks the api-key query parameter so keys stay out of logs.
func redactAPIKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	params := u.Query()
	if params.Get("api-key") == "" {
		return raw
	}
	params.Set("api-key", "REDACTED")
	u.RawQuery = params.Encode()
	return u.String()
}

var (
	_ Fetcher = (*GuardianFetcher)(nil)
	_ Source  = (*GuardianFetcher)(nil)
)
