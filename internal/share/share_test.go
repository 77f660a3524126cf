package share

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	supported bool
	err       error
	got       string
}

func (f *fakeClipboard) Supported() bool { return f.supported }

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.got = text
	return nil
}

func TestShareCopiesPayload(t *testing.T) {
	cb := &fakeClipboard{supported: true}
	s := newClipboardSharerWith(cb)

	err := s.Share(context.Background(), Payload{
		Title: "Seoraksan",
		Text:  "A mountain.",
		URL:   "https://en.m.wikipedia.org/wiki/Seoraksan",
	})
	require.NoError(t, err)
	assert.Equal(t, "Seoraksan\n\nA mountain.\n\nhttps://en.m.wikipedia.org/wiki/Seoraksan", cb.got)
}

func TestShareUnsupported(t *testing.T) {
	s := newClipboardSharerWith(&fakeClipboard{supported: false})
	err := s.Share(context.Background(), Payload{Title: "x"})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestShareWriteFailureIsUnsupported(t *testing.T) {
	s := newClipboardSharerWith(&fakeClipboard{supported: true, err: errors.New("no xclip")})
	err := s.Share(context.Background(), Payload{Title: "x"})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestShareCanceled(t *testing.T) {
	cb := &fakeClipboard{supported: true}
	s := newClipboardSharerWith(cb)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Share(ctx, Payload{Title: "x"})
	assert.True(t, IsCanceled(err))
	assert.Empty(t, cb.got)
}

func TestPayloadStringSkipsEmpty(t *testing.T) {
	assert.Equal(t, "T\n\nhttps://u", Payload{Title: "T", URL: "https://u"}.String())
}
