package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Adda-Baaj/newsfeed/internal/domain"
	"github.com/Adda-Baaj/newsfeed/internal/logger"
)

type guardianEnvelope struct {
	Response *guardianResponse `json:"response"`
}

type guardianResponse struct {
	Status  string           `json:"status"`
	Results []guardianResult `json:"results"`
}

type guardianResult struct {
	WebURL             *string         `json:"webUrl"`
	WebTitle           *string         `json:"webTitle"`
	SectionName        *string         `json:"sectionName"`
	WebPublicationDate string          `json:"webPublicationDate"`
	Tags               []guardianTag   `json:"tags"`
	Fields             *guardianFields `json:"fields"`
}

type guardianTag struct {
	WebTitle string `json:"webTitle"`
}

type guardianFields struct {
	Thumbnail string `json:"thumbnail"`
	TrailText string `json:"trailText"`
}

var errNoResults = errors.New("response.results missing from payload")

// ParseNews decodes a search response body into news records, keeping the API order.
// An empty body yields nil and no error. Results lacking url, title or section are
// skipped and logged.
func ParseNews(body string, log logger.Logger) ([]domain.News, error) {
	log = logger.Ensure(log)

	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	var env guardianEnvelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if env.Response == nil || env.Response.Results == nil {
		return nil, errNoResults
	}

	news := make([]domain.News, 0, len(env.Response.Results))
	for idx, res := range env.Response.Results {
		item, ok := newsFromResult(res)
		if !ok {
			log.WarnObj("skipping incomplete search result", "parse_skip", map[string]any{
				"index":        idx,
				"has_url":      res.WebURL != nil,
				"has_title":    res.WebTitle != nil,
				"has_section":  res.SectionName != nil,
				"result_count": len(env.Response.Results),
			})
			continue
		}
		news = append(news, item)
	}
	return news, nil
}

// newsFromResult maps a single result; ok is false when a required field is absent.
func newsFromResult(res guardianResult) (domain.News, bool) {
	if res.WebURL == nil || res.WebTitle == nil || res.SectionName == nil {
		return domain.News{}, false
	}

	authors := make([]string, 0, len(res.Tags))
	for _, tag := range res.Tags {
		if name := strings.TrimSpace(tag.WebTitle); name != "" {
			authors = append(authors, name)
		}
	}

	item := domain.News{
		URL:     strings.TrimSpace(*res.WebURL),
		Title:   strings.TrimSpace(*res.WebTitle),
		Section: strings.TrimSpace(*res.SectionName),
		Date:    strings.TrimSpace(res.WebPublicationDate),
		Authors: authors,
	}
	if res.Fields != nil {
		item.Thumbnail = strings.TrimSpace(res.Fields.Thumbnail)
		item.TrailText = htmlToText(res.Fields.TrailText)
	}
	return item, true
}
