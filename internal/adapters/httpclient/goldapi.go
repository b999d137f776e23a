package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"todayrates/internal/domain"
)

// GoldAPIClient fetches the world gold spot price, USD per troy ounce.
type GoldAPIClient struct {
	http    *http.Client
	baseURL string
}

func NewGoldAPIClient(httpClient *http.Client, baseURL string) *GoldAPIClient {
	return &GoldAPIClient{http: httpClient, baseURL: baseURL}
}

type goldAPIResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (c *GoldAPIClient) SpotPrice(ctx context.Context) (decimal.Decimal, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return decimal.Zero, fmt.Errorf("gold feed: failed to parse base URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/price/XAU"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("gold feed: failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("gold feed: %v: %w", err, domain.ErrFeedUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decimal.Zero, fmt.Errorf("gold feed: unexpected status code %d: %w", resp.StatusCode, domain.ErrFeedUnavailable)
	}

	var body goldAPIResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("gold feed: failed to decode response: %w", domain.ErrFeedUnavailable)
	}
	if body.Price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("gold feed: response carries no usable price: %w", domain.ErrFeedUnavailable)
	}
	return body.Price, nil
}
