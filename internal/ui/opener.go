package ui

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// Opener hands a URL to something outside the process.
type Opener interface {
	Open(url string) error
}

// BrowserOpener opens URLs in the platform's default browser.
type BrowserOpener struct{}

func init() {
	// keep helper-process chatter off the rendered list
	browser.Stdout = io.Discard
}

// Open launches the default browser on url.
func (BrowserOpener) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open %s in browser: %w", url, err)
	}
	return nil
}
