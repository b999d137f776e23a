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

// MoneyConvertClient fetches the latest FX spot table. The response maps
// currency codes to spot values and must contain an MMK entry (local
// currency units per USD).
type MoneyConvertClient struct {
	http    *http.Client
	baseURL string
}

func NewMoneyConvertClient(httpClient *http.Client, baseURL string) *MoneyConvertClient {
	return &MoneyConvertClient{http: httpClient, baseURL: baseURL}
}

type moneyConvertResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

func (c *MoneyConvertClient) LatestRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fx feed: failed to parse base URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/latest.json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("fx feed: failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fx feed: %v: %w", err, domain.ErrFeedUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fx feed: unexpected status code %d: %w", resp.StatusCode, domain.ErrFeedUnavailable)
	}

	var body moneyConvertResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("fx feed: failed to decode response: %w", domain.ErrFeedUnavailable)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("fx feed: response contains no rates: %w", domain.ErrFeedUnavailable)
	}
	return body.Rates, nil
}
