package pricefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"
)

// ErrFeedUnavailable indicates the feed has no current rate to offer.
var ErrFeedUnavailable = errors.New("price feed unavailable")

// TooManyRequestsError represents rate limiting signal from the price feed.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client exposes operations to query the external price feed.
type Client interface {
	CurrentRate(ctx context.Context) (float64, error)
}

// HTTPClient implements Client via HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors JSON payload from the price feed.
type response struct {
	PricePerGallon float64 `json:"price_per_gallon"`
}

// NewHTTPClient creates HTTP price feed client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse price feed url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("price feed url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CurrentRate queries the feed for the current price per gallon.
func (c *HTTPClient) CurrentRate(ctx context.Context) (float64, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/price")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return 0, err
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			return 0, err
		}
		if data.PricePerGallon <= 0 {
			return 0, fmt.Errorf("price feed returned non-positive rate %v", data.PricePerGallon)
		}
		return data.PricePerGallon, nil
	case http.StatusNoContent:
		return 0, ErrFeedUnavailable
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return 0, TooManyRequestsError{RetryAfter: retryAfter}
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("price feed request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return 0, fmt.Errorf("price feed error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
