package loader

import (
	"context"
	"strings"
	"sync"

	"github.com/Adda-Baaj/newsfeed/internal/domain"
	"github.com/Adda-Baaj/newsfeed/internal/logger"
	"github.com/Adda-Baaj/newsfeed/pkg/providers"
)

// Loader runs one fetch-and-parse cycle off the caller's goroutine and hands the
// result back once.
type Loader struct {
	queryURL string
	source   providers.Source
	log      logger.Logger

	once   sync.Once
	done   chan struct{}
	result []domain.News
}

// New creates a loader for queryURL.
func New(queryURL string, source providers.Source, log logger.Logger) *Loader {
	return &Loader{
		queryURL: queryURL,
		source:   source,
		log:      logger.Ensure(log),
		done:     make(chan struct{}),
	}
}

// Start launches the background load. Calls after the first are no-ops.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		go l.run(ctx)
	})
}

func (l *Loader) run(ctx context.Context) {
	defer close(l.done)

	if strings.TrimSpace(l.queryURL) == "" || l.source == nil {
		l.log.WarnObj("loader has nothing to fetch", "loader_skip", map[string]any{
			"has_url":    l.queryURL != "",
			"has_source": l.source != nil,
		})
		return
	}

	l.log.DebugObj("loading news in background", "loader_start", map[string]any{
		"provider_id": providers.GuardianProviderID,
	})
	l.result = l.source.FetchNews(ctx, l.queryURL)
}

// Wait blocks until the load has finished or ctx ends. The result may be nil.
func (l *Loader) Wait(ctx context.Context) ([]domain.News, error) {
	select {
	case <-l.done:
		return l.result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Load starts the loader if needed and waits for its result.
func (l *Loader) Load(ctx context.Context) ([]domain.News, error) {
	l.Start(ctx)
	return l.Wait(ctx)
}
