package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adda-Baaj/newsfeed/internal/domain"
	"github.com/Adda-Baaj/newsfeed/internal/logger"
)

const threeResults = `{
  "response": {
    "status": "ok",
    "results": [
      {
        "webUrl": "https://www.theguardian.com/technology/1",
        "webTitle": "First",
        "sectionName": "Technology",
        "webPublicationDate": "2018-03-01T10:00:00Z",
        "tags": [{"webTitle": "Alex Hern"}, {"webTitle": "Samuel Gibbs"}],
        "fields": {"thumbnail": "https://media.guim.co.uk/1.jpg", "trailText": "<strong>Big</strong>   news\n today"}
      },
      {
        "webUrl": "https://www.theguardian.com/business/2",
        "webTitle": "Second",
        "sectionName": "Business",
        "tags": []
      },
      {
        "webUrl": "https://www.theguardian.com/world/3",
        "webTitle": "Third",
        "sectionName": "World news",
        "webPublicationDate": "2018-02-27T08:30:00Z"
      }
    ]
  }
}`

func TestParseNewsKeepsCountAndOrder(t *testing.T) {
	news, err := ParseNews(threeResults, nil)
	require.NoError(t, err)
	require.Len(t, news, 3)

	assert.Equal(t, []string{"First", "Second", "Third"}, []string{news[0].Title, news[1].Title, news[2].Title})

	want := domain.News{
		URL:       "https://www.theguardian.com/technology/1",
		Title:     "First",
		Section:   "Technology",
		Date:      "2018-03-01T10:00:00Z",
		Authors:   []string{"Alex Hern", "Samuel Gibbs"},
		Thumbnail: "https://media.guim.co.uk/1.jpg",
		TrailText: "Big news today",
	}
	assert.True(t, want.Equal(news[0]), "got %+v", news[0])
}

func TestParseNewsMissingDateIsEmpty(t *testing.T) {
	news, err := ParseNews(threeResults, nil)
	require.NoError(t, err)
	assert.Equal(t, "", news[1].Date)
}

func TestParseNewsEmptyOrMissingTags(t *testing.T) {
	news, err := ParseNews(threeResults, nil)
	require.NoError(t, err)

	require.NotNil(t, news[1].Authors)
	assert.Empty(t, news[1].Authors)
	require.NotNil(t, news[2].Authors)
	assert.Empty(t, news[2].Authors)
}

func TestParseNewsEmptyBody(t *testing.T) {
	news, err := ParseNews("   ", nil)
	require.NoError(t, err)
	assert.Nil(t, news)
}

func TestParseNewsMalformed(t *testing.T) {
	cases := map[string]string{
		"broken json":     `{"response": {"results": [`,
		"no response":     `{"message": "Unauthorized"}`,
		"no results":      `{"response": {"status": "error"}}`,
		"results not arr": `{"response": {"results": "x"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			news, err := ParseNews(body, nil)
			require.Error(t, err)
			assert.Nil(t, news)
		})
	}
}

func TestParseNewsEmptyResults(t *testing.T) {
	news, err := ParseNews(`{"response": {"results": []}}`, nil)
	require.NoError(t, err)
	require.NotNil(t, news)
	assert.Empty(t, news)
}

func TestParseNewsSkipsIncompleteResults(t *testing.T) {
	body := `{"response": {"results": [
		{"webTitle": "No url", "sectionName": "News"},
		{"webUrl": "https://example.com/ok", "webTitle": "Ok", "sectionName": "News"}
	]}}`

	news, err := ParseNews(body, logger.NopLogger{})
	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, "Ok", news[0].Title)
}

func TestHTMLToText(t *testing.T) {
	assert.Equal(t, "", htmlToText("  "))
	assert.Equal(t, "plain words", htmlToText("plain   words"))
	assert.Equal(t, "a link and more", htmlToText(`<p>a <a href="/x">link</a></p> and more`))
}
