// Package wiki fetches random article summaries from the Wikipedia REST API.
package wiki

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/matheuskafuri/wikiscroll/internal/metrics"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	// DefaultEndpoint is the per-edition host; {lang} is replaced by the language code.
	DefaultEndpoint = "https://{lang}.wikipedia.org"

	randomSummaryPath = "/api/rest_v1/page/random/summary"
	maxBodyBytes      = 1 << 20
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("wikipedia API %d", e.Code)
	}
	return fmt.Sprintf("wikipedia API %d: %s", e.Code, e.Body)
}

// BreakerConfig tunes the circuit breaker in front of the REST API.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// Client fetches random summaries. It is safe for concurrent use.
type Client struct {
	http      *http.Client
	endpoint  string
	userAgent string
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker
	logger    *slog.Logger
}

type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	rps        float64
	burst      int
	breaker    BreakerConfig
	logger     *slog.Logger
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// WithEndpoint overrides the host template. A template without {lang} is used as is.
func WithEndpoint(endpoint string) Option {
	return func(o *clientOptions) { o.endpoint = strings.TrimRight(endpoint, "/") }
}

func WithUserAgent(ua string) Option {
	return func(o *clientOptions) { o.userAgent = ua }
}

// WithRateLimit caps outgoing requests. A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *clientOptions) {
		o.rps = rps
		o.burst = burst
	}
}

func WithBreaker(cfg BreakerConfig) Option {
	return func(o *clientOptions) { o.breaker = cfg }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

func NewClient(opts ...Option) *Client {
	o := clientOptions{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   DefaultEndpoint,
		userAgent:  "wikiscroll/dev",
		rps:        10,
		burst:      5,
		breaker:    DefaultBreakerConfig(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	limit := rate.Limit(o.rps)
	if o.rps <= 0 {
		limit = rate.Inf
	}
	if o.burst < 1 {
		o.burst = 1
	}

	return &Client{
		http:      o.httpClient,
		endpoint:  o.endpoint,
		userAgent: o.userAgent,
		limiter:   rate.NewLimiter(limit, o.burst),
		breaker:   newBreaker(o.breaker, o.logger),
		logger:    o.logger,
	}
}

func newBreaker(cfg BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "wikipedia-summary",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
		},
		// Cancellation comes from the caller, not from the API.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
}

// SummaryURL returns the random summary URL for lang.
func (c *Client) SummaryURL(lang Language) string {
	return strings.ReplaceAll(c.endpoint, "{lang}", string(lang)) + randomSummaryPath
}

// RandomSummary issues one request for a random article in the given edition.
func (c *Client) RandomSummary(ctx context.Context, lang Language) (Summary, error) {
	if !lang.Valid() {
		return Summary{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return Summary{}, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	start := time.Now()
	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doFetch(ctx, lang)
	})
	metrics.RecordWikiRequest(string(lang), err == nil, time.Since(start))
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			c.logger.Warn("summary circuit breaker open, request rejected",
				slog.String("lang", string(lang)))
		} else {
			c.logger.Warn("fetching random summary failed",
				slog.String("lang", string(lang)),
				slog.Any("error", err))
		}
		return Summary{}, err
	}
	return res.(Summary), nil
}

func (c *Client) doFetch(ctx context.Context, lang Language) (Summary, error) {
	url := c.SummaryURL(lang)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Summary{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Summary{}, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Summary{}, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Summary{}, fmt.Errorf("reading %s: %w", url, err)
	}

	s, err := decodeSummary(body, lang)
	if err != nil {
		return Summary{}, err
	}
	c.logger.Debug("fetched random summary",
		slog.String("lang", string(lang)),
		slog.Int64("id", s.ID),
		slog.String("title", s.Title))
	return s, nil
}
