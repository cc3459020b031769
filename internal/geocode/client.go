// Package geocode resolves UK postcodes to coordinates and administrative
// areas through a MapIt-compatible HTTP API.
//
// "Not resolved" is an ordinary outcome, reported as (nil, false, nil).
// Transport failures, timeouts and provider 5xx responses surface as
// CodeUpstreamUnavailable and are never mapped to "not resolved".
package geocode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"fact/internal/platform/metrics"
	"fact/internal/postcode"
	dErrors "fact/pkg/domain-errors"
	"fact/pkg/platform/circuit"
)

const (
	defaultTimeout  = 5 * time.Second
	maxResponseSize = 1 << 20
	headerAPIKey    = "X-Api-Key"

	kindFull    = "full"
	kindPartial = "partial"
)

var tracer = otel.Tracer("fact/internal/geocode")

// Client calls the geocoding provider. It performs no retries.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
	breaker    *circuit.Breaker
}

// Option configures a Client.
type Option func(*Client)

func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithTimeout bounds each provider call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithBreaker fails lookups fast with CodeUpstreamUnavailable while b is
// open. Only provider outages count as failures.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) { c.breaker = b }
}

// NewClient builds a Client for the provider rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    defaultTimeout,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve looks up a full postcode.
func (c *Client) Resolve(ctx context.Context, pc string) (*Result, bool, error) {
	return c.lookup(ctx, kindFull, "/postcode/"+url.PathEscape(postcode.Compact(pc)))
}

// ResolvePartial looks up an outward code.
func (c *Client) ResolvePartial(ctx context.Context, outward string) (*Result, bool, error) {
	return c.lookup(ctx, kindPartial, "/postcode/partial/"+url.PathEscape(postcode.Compact(outward)))
}

// ResolveWithPartialFallback tries the full postcode, then its outward code
// once. Input that is only an outward code goes straight to the partial
// lookup.
func (c *Client) ResolveWithPartialFallback(ctx context.Context, pc string) (*Result, bool, error) {
	return withPartialFallback(ctx, c, pc)
}

type lookuper interface {
	Resolve(ctx context.Context, pc string) (*Result, bool, error)
	ResolvePartial(ctx context.Context, outward string) (*Result, bool, error)
}

func withPartialFallback(ctx context.Context, l lookuper, pc string) (*Result, bool, error) {
	if postcode.ValidFull(pc) {
		res, ok, err := l.Resolve(ctx, pc)
		if err != nil || ok {
			return res, ok, err
		}
	}
	outward, ok := postcode.Outward(pc)
	if !ok {
		return nil, false, nil
	}
	return l.ResolvePartial(ctx, outward)
}

func (c *Client) lookup(ctx context.Context, kind, path string) (res *Result, ok bool, err error) {
	if !c.breaker.Allow() {
		c.metrics.ObserveGeocode(kind, metrics.OutcomeCircuitOpen, 0)
		return nil, false, dErrors.New(dErrors.CodeUpstreamUnavailable, "geocoding provider unavailable")
	}

	start := time.Now()
	ctx, span := tracer.Start(ctx, "geocode.lookup")
	span.SetAttributes(attribute.String("geocode.kind", kind))
	defer func() {
		outcome := metrics.OutcomeResolved
		switch {
		case err != nil:
			outcome = metrics.OutcomeError
			span.RecordError(err)
			span.SetStatus(codes.Error, "lookup failed")
		case !ok:
			outcome = metrics.OutcomeNotFound
		}
		span.SetAttributes(attribute.String("geocode.outcome", outcome))
		span.End()
		c.observeBreaker(ctx, err)
		c.metrics.ObserveGeocode(kind, outcome, time.Since(start).Seconds())
	}()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, false, dErrors.Wrap(err, dErrors.CodeInternal, "build geocode request")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil && !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, false, dErrors.Wrap(err, dErrors.CodeTimeout, "geocode lookup cancelled")
		}
		c.logger.WarnContext(ctx, "geocoding provider unreachable",
			"kind", kind,
			"error", err,
		)
		return nil, false, dErrors.Wrap(err, dErrors.CodeUpstreamUnavailable, "geocoding provider unavailable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusBadRequest:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return nil, false, nil
	case resp.StatusCode >= http.StatusInternalServerError:
		c.logger.WarnContext(ctx, "geocoding provider error",
			"kind", kind,
			"status", resp.StatusCode,
		)
		return nil, false, dErrors.New(dErrors.CodeUpstreamUnavailable,
			fmt.Sprintf("geocoding provider returned %d", resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, false, dErrors.New(dErrors.CodeInternal,
			fmt.Sprintf("unexpected geocoding status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, false, dErrors.Wrap(err, dErrors.CodeUpstreamUnavailable, "read geocode response")
	}
	res, err = Decode(raw)
	if err != nil {
		c.logger.ErrorContext(ctx, "undecodable geocode response",
			"kind", kind,
			"error", err,
		)
		return nil, false, dErrors.Wrap(err, dErrors.CodeInternal, "decode geocode response")
	}
	return res, true, nil
}

func (c *Client) observeBreaker(ctx context.Context, err error) {
	switch {
	case err == nil:
		if c.breaker.RecordSuccess() {
			c.logger.InfoContext(ctx, "geocoding circuit closed")
		}
	case dErrors.HasCode(err, dErrors.CodeUpstreamUnavailable):
		if c.breaker.RecordFailure() {
			c.logger.WarnContext(ctx, "geocoding circuit opened", "error", err)
		}
	default:
		c.breaker.Release()
	}
}
