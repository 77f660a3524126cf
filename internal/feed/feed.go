// Package feed accumulates random summaries into a deduplicated list and
// guards against overlapping batch fetches.
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matheuskafuri/wikiscroll/internal/logging"
	"github.com/matheuskafuri/wikiscroll/internal/metrics"
	"github.com/matheuskafuri/wikiscroll/internal/wiki"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchSize is the number of concurrent requests issued per trigger.
const DefaultBatchSize = 5

var (
	ErrBatchInFlight = errors.New("a batch is already in flight")
	ErrStaleBatch    = errors.New("batch belongs to a previous language selection")
)

type Fetcher interface {
	RandomSummary(ctx context.Context, lang wiki.Language) (wiki.Summary, error)
}

// Batch is one in-flight group of fetches. It is created by Start and
// must be passed back to Complete exactly once.
type Batch struct {
	ID   string
	Lang wiki.Language
	Size int

	gen uint64
	ctx context.Context
}

// Result is the outcome of running a batch.
type Result struct {
	Batch    *Batch
	Items    []wiki.Summary
	Err      error
	Duration time.Duration
}

type Feed struct {
	fetcher   Fetcher
	batchSize int
	logger    *slog.Logger

	mu      sync.Mutex
	lang    wiki.Language
	items   []wiki.Summary
	seen    map[int64]struct{}
	loading bool
	gen     uint64
	cancel  context.CancelFunc
}

type Option func(*Feed)

func WithBatchSize(n int) Option {
	return func(f *Feed) {
		if n > 0 {
			f.batchSize = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Feed) { f.logger = l }
}

func New(fetcher Fetcher, lang wiki.Language, opts ...Option) *Feed {
	if !lang.Valid() {
		lang = wiki.DefaultLanguage
	}
	f := &Feed{
		fetcher:   fetcher,
		batchSize: DefaultBatchSize,
		logger:    slog.Default(),
		lang:      lang,
		seen:      make(map[int64]struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Start claims the in-flight guard and returns a batch to run. It returns
// false when another batch is still running; the caller must not fetch.
func (f *Feed) Start(ctx context.Context) (*Batch, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loading {
		return nil, false
	}
	f.loading = true

	bctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel

	return &Batch{
		ID:   uuid.NewString(),
		Lang: f.lang,
		Size: f.batchSize,
		gen:  f.gen,
		ctx:  bctx,
	}, true
}

// Run issues the batch's requests concurrently. Any single failure fails the
// whole batch. Run does not touch the list, so it can run off the UI goroutine.
func (f *Feed) Run(b *Batch) Result {
	start := time.Now()
	items := make([]wiki.Summary, b.Size)

	g, ctx := errgroup.WithContext(b.ctx)
	for i := 0; i < b.Size; i++ {
		g.Go(func() error {
			s, err := f.fetcher.RandomSummary(ctx, b.Lang)
			if err != nil {
				return err
			}
			items[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{Batch: b, Err: fmt.Errorf("batch %s: %w", b.ID, err), Duration: time.Since(start)}
	}
	return Result{Batch: b, Items: items, Duration: time.Since(start)}
}

// Complete merges a finished batch and releases the guard. It reports how many
// summaries were appended. Results from before the last language switch are
// dropped with ErrStaleBatch.
func (f *Feed) Complete(res Result) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b := res.Batch
	log := logging.WithFields(f.logger, map[string]any{
		"batch_id":   b.ID,
		"batch_lang": string(b.Lang),
	})
	if b.gen != f.gen {
		metrics.RecordBatch("stale")
		log.Debug("discarding stale batch", slog.String("lang", string(f.lang)))
		return 0, ErrStaleBatch
	}

	f.loading = false
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}

	if res.Err != nil {
		metrics.RecordBatch("error")
		log.Warn("failed to load articles", slog.Any("error", res.Err))
		return 0, res.Err
	}

	added := f.merge(res.Items)
	metrics.RecordBatch("ok")
	metrics.FeedItems.Set(float64(len(f.items)))
	log.Debug("batch merged",
		slog.Int("fetched", len(res.Items)),
		slog.Int("added", added),
		slog.Duration("took", res.Duration))
	return added, nil
}

// merge appends summaries whose IDs are not yet listed. Caller holds mu.
func (f *Feed) merge(batch []wiki.Summary) int {
	added := 0
	for _, s := range batch {
		if _, dup := f.seen[s.ID]; dup {
			metrics.FeedDuplicatesDropped.Inc()
			continue
		}
		f.seen[s.ID] = struct{}{}
		f.items = append(f.items, s)
		added++
	}
	return added
}

// LoadMore runs one batch synchronously.
func (f *Feed) LoadMore(ctx context.Context) (int, error) {
	b, ok := f.Start(ctx)
	if !ok {
		return 0, ErrBatchInFlight
	}
	return f.Complete(f.Run(b))
}

// SetLanguage discards the list and switches editions. Any in-flight batch is
// cancelled and its result will be reported as stale.
func (f *Feed) SetLanguage(lang wiki.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", wiki.ErrUnsupportedLanguage, lang)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.gen++
	f.loading = false
	f.lang = lang
	f.items = nil
	f.seen = make(map[int64]struct{})
	metrics.FeedItems.Set(0)

	f.logger.Info("language switched", slog.String("lang", string(lang)))
	return nil
}

// ToggleLanguage switches to the other edition and returns it.
func (f *Feed) ToggleLanguage() wiki.Language {
	next := f.Language().Toggle()
	_ = f.SetLanguage(next)
	return next
}

// NearEnd reports whether cursor is within margin cards of the end of the
// list. An empty list is always near its end.
func (f *Feed) NearEnd(cursor, margin int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if margin < 0 {
		margin = 0
	}
	return cursor >= len(f.items)-1-margin
}

// Items returns a copy of the current list.
func (f *Feed) Items() []wiki.Summary {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]wiki.Summary, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// At returns the summary at index i.
func (f *Feed) At(i int) (wiki.Summary, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.items) {
		return wiki.Summary{}, false
	}
	return f.items[i], true
}

func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *Feed) Language() wiki.Language {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lang
}

func (f *Feed) BatchSize() int {
	return f.batchSize
}
