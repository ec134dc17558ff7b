package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Adda-Baaj/newsfeed/internal/connectivity"
	"github.com/Adda-Baaj/newsfeed/internal/domain"
	"github.com/Adda-Baaj/newsfeed/internal/logger"
)

// Empty-state messages.
const (
	MsgNoNews     = "No news found."
	MsgNoInternet = "No internet connection."
)

// ErrNoSuchRow is returned when a row index falls outside the list.
var ErrNoSuchRow = errors.New("no such row")

// NewsLoader is the background loader the screen drives.
type NewsLoader interface {
	Load(ctx context.Context) ([]domain.News, error)
}

// NewsScreen shows the feed: connectivity check, one background load, then rows or
// an empty-state message.
type NewsScreen struct {
	checker  connectivity.Checker
	loader   NewsLoader
	renderer *Renderer
	opener   Opener
	out      io.Writer
	log      logger.Logger

	news []domain.News
}

// NewNewsScreen wires a screen. A nil checker assumes the network is up and a nil
// opener uses the default browser.
func NewNewsScreen(checker connectivity.Checker, ld NewsLoader, renderer *Renderer, opener Opener, out io.Writer, log logger.Logger) *NewsScreen {
	if checker == nil {
		checker = connectivity.Static(true)
	}
	if opener == nil {
		opener = BrowserOpener{}
	}
	log = logger.Ensure(log)
	if renderer == nil {
		renderer = &Renderer{format: FormatTable, log: log}
	}
	return &NewsScreen{
		checker:  checker,
		loader:   ld,
		renderer: renderer,
		opener:   opener,
		out:      out,
		log:      log,
	}
}

// Show runs the screen once. Only output failures and ctx cancellation are errors.
func (s *NewsScreen) Show(ctx context.Context) error {
	s.news = nil

	if !s.checker.Connected(ctx) {
		return s.empty(MsgNoInternet)
	}

	var news []domain.News
	if s.loader != nil {
		loaded, err := s.loader.Load(ctx)
		if err != nil {
			return fmt.Errorf("load news: %w", err)
		}
		news = loaded
	}

	if len(news) == 0 {
		return s.empty(MsgNoNews)
	}
	s.news = news
	return s.renderer.Render(s.out, news)
}

func (s *NewsScreen) empty(msg string) error {
	if s.renderer.Format() != FormatTable {
		s.log.InfoObj(msg, "empty_state", map[string]any{"format": s.renderer.Format()})
		return s.renderer.Render(s.out, nil)
	}
	_, err := fmt.Fprintln(s.out, msg)
	return err
}

// News returns the rows currently shown.
func (s *NewsScreen) News() []domain.News {
	out := make([]domain.News, len(s.news))
	copy(out, s.news)
	return out
}

// Open sends the article at the 1-based row index to the opener.
func (s *NewsScreen) Open(index int) error {
	if index < 1 || index > len(s.news) {
		return fmt.Errorf("%w %d (have %d)", ErrNoSuchRow, index, len(s.news))
	}
	item := s.news[index-1]
	s.log.DebugObj("opening article", "open", map[string]any{
		"index": index,
		"url":   item.URL,
	})
	return s.opener.Open(item.URL)
}

// Interact reads row numbers from in and opens each one until EOF, a blank line or "q".
func (s *NewsScreen) Interact(ctx context.Context, in io.Reader) error {
	if len(s.news) == 0 {
		return nil
	}

	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fmt.Fprintf(s.out, "Open article [1-%d] (enter to quit): ", len(s.news))
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.EqualFold(line, "q") {
			return nil
		}

		idx, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(s.out, "%q is not a row number\n", line)
			continue
		}
		if err := s.Open(idx); err != nil {
			fmt.Fprintln(s.out, err)
		}
	}
}
