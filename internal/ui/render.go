package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Adda-Baaj/newsfeed/internal/domain"
	"github.com/Adda-Baaj/newsfeed/internal/logger"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const (
	dateUnavailable = "Date N/A"
	apiDateLayout   = "2006-01-02"
	displayLayout   = "Jan 02, 2006"
)

// Row is one bound list entry.
type Row struct {
	Index     int    `json:"index" yaml:"index"`
	Title     string `json:"title" yaml:"title"`
	Section   string `json:"section" yaml:"section"`
	Date      string `json:"date" yaml:"date"`
	Authors   string `json:"authors" yaml:"authors"`
	URL       string `json:"url" yaml:"url"`
	TrailText string `json:"trail_text,omitempty" yaml:"trail_text,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
}

// Renderer binds news records to rows and writes them in one format.
type Renderer struct {
	format string
	log    logger.Logger
}

// NewRenderer validates format; an empty format means table.
func NewRenderer(format string, log logger.Logger) (*Renderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatTable
	}
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q (want table, json or yaml)", format)
	}
	return &Renderer{format: format, log: logger.Ensure(log)}, nil
}

// Format returns the renderer's output format.
func (r *Renderer) Format() string { return r.format }

// Rows binds each record to a 1-based row.
func (r *Renderer) Rows(news []domain.News) []Row {
	rows := make([]Row, 0, len(news))
	for i, n := range news {
		rows = append(rows, Row{
			Index:     i + 1,
			Title:     n.Title,
			Section:   n.Section,
			Date:      FormatDate(n.Date, r.log),
			Authors:   strings.Join(n.Authors, ", "),
			URL:       n.URL,
			TrailText: n.TrailText,
			Thumbnail: n.Thumbnail,
		})
	}
	return rows
}

// Render writes news to w. Empty input renders an empty list for json and yaml and
// nothing for table; callers print the empty-state message.
func (r *Renderer) Render(w io.Writer, news []domain.News) error {
	rows := r.Rows(news)

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	if len(rows) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tSECTION\tDATE\tAUTHORS")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", row.Index, row.Title, row.Section, row.Date, row.Authors)
	}
	return tw.Flush()
}

// FormatDate renders the yyyy-MM-dd prefix of an API timestamp as "Jan 02, 2006".
// Empty input yields "Date N/A"; unparsable input is logged and returned unchanged.
func FormatDate(raw string, log logger.Logger) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return dateUnavailable
	}

	prefix := raw
	if len(prefix) > len(apiDateLayout) {
		prefix = prefix[:len(apiDateLayout)]
	}
	t, err := time.Parse(apiDateLayout, prefix)
	if err != nil {
		logger.Ensure(log).WarnObj("unparsable publication date", "date_error", map[string]any{
			"date":  raw,
			"error": err.Error(),
		})
		return raw
	}
	return t.Format(displayLayout)
}
