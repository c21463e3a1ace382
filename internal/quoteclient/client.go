// Package quoteclient is the consumer-side quote path: it asks an
// authoritative pricing service first and silently degrades to the local
// deterministic model when the service is unreachable, so callers always
// get a quote.
package quoteclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"parkpricer/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var fallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "parkpricer_quoteclient_fallbacks_total",
	Help: "Number of remote pricing calls degraded to the local model.",
}, []string{"call"})

type QuoteRequest struct {
	ListingID uuid.UUID `json:"listing_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	BasePrice float64   `json:"base_price"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	calculator *pricing.Calculator
	logger     *slog.Logger
}

// New builds a quote client. An empty baseURL disables the remote path
// entirely; every call then resolves locally.
func New(baseURL string, timeout time.Duration, calculator *pricing.Calculator, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		calculator: calculator,
		logger:     logger,
	}
}

// Calculate is remote-first: one POST to the pricing service, no retries.
// Any failure (network error, timeout, non-2xx, malformed body) falls back
// to the local deterministic calculation and is logged, never surfaced.
// Cancellation is caller-managed through ctx.
func (c *Client) Calculate(ctx context.Context, req QuoteRequest) (*pricing.Quote, error) {
	if c.baseURL != "" {
		quote, err := c.calculateRemote(ctx, req)
		if err == nil {
			return quote, nil
		}
		c.logger.Warn("remote pricing failed, using local calculation", "error", err)
		fallbacksTotal.WithLabelValues("calculate").Inc()
	}

	return c.calculator.Calculate(req.ListingID, req.StartTime, req.EndTime, req.BasePrice)
}

// Quote adapts Calculate to the pricing quote port.
func (c *Client) Quote(ctx context.Context, listingID uuid.UUID, start, end time.Time, baseHourlyRate float64) (*pricing.Quote, error) {
	return c.Calculate(ctx, QuoteRequest{
		ListingID: listingID,
		StartTime: start,
		EndTime:   end,
		BasePrice: baseHourlyRate,
	})
}

// Rules fetches the server-configured rule set, degrading to the hardcoded
// defaults on any failure. It never returns an error.
func (c *Client) Rules(ctx context.Context) []pricing.Rule {
	if c.baseURL == "" {
		return pricing.DefaultRules()
	}

	rules, err := c.fetchRules(ctx)
	if err != nil {
		c.logger.Warn("remote rules fetch failed, using defaults", "error", err)
		fallbacksTotal.WithLabelValues("rules").Inc()
		return pricing.DefaultRules()
	}
	return rules
}

func (c *Client) calculateRemote(ctx context.Context, req QuoteRequest) (*pricing.Quote, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode quote request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/pricing/calculate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("quote request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("quote request returned status %d", resp.StatusCode)
	}

	var quote pricing.Quote
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&quote); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}
	return &quote, nil
}

func (c *Client) fetchRules(ctx context.Context) ([]pricing.Rule, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/pricing/rules", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rules request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("rules request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("rules request returned status %d", resp.StatusCode)
	}

	var payload struct {
		Rules []pricing.Rule `json:"rules"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rules response: %w", err)
	}
	if len(payload.Rules) == 0 {
		return nil, fmt.Errorf("rules response was empty")
	}
	return payload.Rules, nil
}
