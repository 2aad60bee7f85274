package brapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/b3watch/stock-alert/internal/service/quote"
	"github.com/jpillora/backoff"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://brapi.dev"

const maxAttempts = 3

var _ quote.Service = (*Service)(nil)

type quoteResponse struct {
	Results []struct {
		Symbol string           `json:"symbol"`
		Price  *decimal.Decimal `json:"regularMarketPrice"`
	} `json:"results"`
}

// Service fetches quotes from brapi.dev. Transient failures (network
// errors, 5xx, 429) are retried with exponential backoff before the
// fetch is reported as failed.
type Service struct {
	cli        *http.Client
	baseURL    string
	token      string
	minBackoff time.Duration
	maxBackoff time.Duration
}

type Option func(s *Service)

func WithBaseURL(u string) Option {
	return func(s *Service) {
		s.baseURL = u
	}
}

func WithHTTPClient(cli *http.Client) Option {
	return func(s *Service) {
		s.cli = cli
	}
}

func WithBackoff(min, max time.Duration) Option {
	return func(s *Service) {
		s.minBackoff = min
		s.maxBackoff = max
	}
}

func NewService(token string, opts ...Option) *Service {
	svc := &Service{
		cli:        &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
		minBackoff: time.Second,
		maxBackoff: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *Service) GetPrice(ctx context.Context, symbol string) (quote.Quote, bool, error) {
	body, err := s.fetch(ctx, symbol)
	if err != nil {
		return quote.Quote{}, false, fmt.Errorf("brapi fetch %s: %w", symbol, err)
	}

	var resp quoteResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return quote.Quote{}, false, fmt.Errorf("brapi decode %s: %w", symbol, err)
	}

	if len(resp.Results) == 0 || resp.Results[0].Price == nil {
		slog.Warn("no price in brapi response", "symbol", symbol)
		return quote.Quote{}, false, nil
	}

	return quote.Quote{
		Symbol: symbol,
		Price:  *resp.Results[0].Price,
		Time:   time.Now(),
	}, true, nil
}

func (s *Service) fetch(ctx context.Context, symbol string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/api/quote/%s", s.baseURL, url.PathEscape(symbol))
	if s.token != "" {
		endpoint += "?token=" + url.QueryEscape(s.token)
	}

	b := &backoff.Backoff{
		Min:    s.minBackoff,
		Max:    s.maxBackoff,
		Factor: 2,
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		body, retryable, err := s.doRequest(ctx, endpoint)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable || attempt == maxAttempts {
			break
		}

		wait := b.Duration()
		slog.Warn("brapi request failed, retrying", "symbol", symbol,
			"attempt", attempt, "wait", wait, "error", err)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func (s *Service) doRequest(ctx context.Context, endpoint string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := s.cli.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		retryable = resp.StatusCode >= http.StatusInternalServerError ||
			resp.StatusCode == http.StatusTooManyRequests
		return nil, retryable, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}
	return body, false, nil
}
