package providers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQueryURL(t *testing.T) {
	cfg := Provider{
		ID:         GuardianProviderID,
		SourceURL:  "https://content.guardianapis.com/search",
		APIKey:     "test",
		ShowTags:   "contributor",
		ShowFields: "thumbnail,trailText",
		PageSize:   20,
	}

	raw, err := BuildQueryURL(cfg, Query{Keywords: "climate change", OrderBy: " Newest "})
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "content.guardianapis.com", u.Host)
	assert.Equal(t, "/search", u.Path)

	params := u.Query()
	assert.Equal(t, "climate change", params.Get("q"))
	assert.Equal(t, "newest", params.Get("order-by"))
	assert.Equal(t, "contributor", params.Get("show-tags"))
	assert.Equal(t, "thumbnail,trailText", params.Get("show-fields"))
	assert.Equal(t, "20", params.Get("page-size"))
	assert.Equal(t, "test", params.Get("api-key"))
}

func TestBuildQueryURLOmitsBlankValues(t *testing.T) {
	raw, err := BuildQueryURL(Provider{SourceURL: "https://content.guardianapis.com/search"}, Query{Keywords: "  "})
	require.NoError(t, err)
	assert.Equal(t, "https://content.guardianapis.com/search", raw)
}

func TestBuildQueryURLKeepsExistingParams(t *testing.T) {
	raw, err := BuildQueryURL(Provider{SourceURL: "https://example.com/search?section=technology"}, Query{Keywords: "go"})
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "technology", u.Query().Get("section"))
	assert.Equal(t, "go", u.Query().Get("q"))
}

func TestBuildQueryURLRejectsBadBase(t *testing.T) {
	for _, base := range []string{"", "content.guardianapis.com/search", "ftp://example.com/x", "http://[::1"} {
		_, err := BuildQueryURL(Provider{ID: GuardianProviderID, SourceURL: base}, Query{})
		assert.Error(t, err, base)
	}
}
