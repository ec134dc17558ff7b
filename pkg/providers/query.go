package providers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// BuildQueryURL composes the search URL for cfg with the user's query applied.
// Blank values are left out so the API falls back to its own defaults.
func BuildQueryURL(cfg Provider, q Query) (string, error) {
	base := strings.TrimSpace(cfg.SourceURL)
	if base == "" {
		return "", fmt.Errorf("provider %q source_url is empty", cfg.ID)
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse provider %q source_url: %w", cfg.ID, err)
	}
	if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("provider %q source_url %q is not an absolute http(s) url", cfg.ID, base)
	}

	params := u.Query()
	setIfPresent(params, "q", q.Keywords)
	setIfPresent(params, "order-by", strings.ToLower(strings.TrimSpace(q.OrderBy)))
	setIfPresent(params, "show-tags", cfg.ShowTags)
	setIfPresent(params, "show-fields", cfg.ShowFields)
	if cfg.PageSize > 0 {
		params.Set("page-size", strconv.Itoa(cfg.PageSize))
	}
	setIfPresent(params, "api-key", cfg.APIKey)

	u.RawQuery = params.Encode()
	return u.String(), nil
}

func setIfPresent(params url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		params.Set(key, v)
	}
}
