// Package share hands an article off to the host's share capability. In a
// terminal that capability is the system clipboard.
package share

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnsupported means the host has no share capability.
var ErrUnsupported = errors.New("sharing is not supported in this environment")

// Payload is what gets shared for one article.
type Payload struct {
	Title string
	Text  string
	URL   string
}

// String formats the payload as clipboard text: title, text, then URL.
func (p Payload) String() string {
	var parts []string
	if p.Title != "" {
		parts = append(parts, p.Title)
	}
	if p.Text != "" {
		parts = append(parts, p.Text)
	}
	if p.URL != "" {
		parts = append(parts, p.URL)
	}
	return strings.Join(parts, "\n\n")
}

type Sharer interface {
	Share(ctx context.Context, p Payload) error
}

// Clipboard abstracts the system clipboard.
type Clipboard interface {
	Supported() bool
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) Supported() bool            { return !clipboard.Unsupported }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// ClipboardSharer copies the payload to the clipboard.
type ClipboardSharer struct {
	cb Clipboard
}

func NewClipboardSharer() *ClipboardSharer {
	return &ClipboardSharer{cb: systemClipboard{}}
}

func newClipboardSharerWith(cb Clipboard) *ClipboardSharer {
	return &ClipboardSharer{cb: cb}
}

// Share returns ErrUnsupported when no clipboard is available and ctx.Err()
// when the share was cancelled before it ran.
func (s *ClipboardSharer) Share(ctx context.Context, p Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.cb.Supported() {
		return ErrUnsupported
	}
	if err := s.cb.WriteAll(p.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return nil
}

// IsCanceled reports whether err means the user backed out of the share.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
