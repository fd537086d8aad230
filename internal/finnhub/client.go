package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client talks to the Finnhub market-data API. Calls are single-attempt;
// callers decide whether a failure is fatal.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	// Cache is optional. When set, quotes are cached for CacheTTL so that
	// repeated refreshes inside the window reuse the last response.
	Cache    *redis.Client
	CacheTTL time.Duration
}

// Profile is the company profile returned by /stock/profile2.
type Profile struct {
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	Ticker   string `json:"ticker"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
	Exchange string `json:"exchange"`
}

// Quote is the current quote returned by /quote. Finnhub uses single-letter
// field names: c = current, h = high, l = low, o = open, pc = previous close.
type Quote struct {
	Current       float64 `json:"c"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
}

// APIError is returned when Finnhub answers with a non-success status.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("finnhub: unexpected status %s", e.Status)
}

// NewClient creates a Finnhub client for the given base URL and API key
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		CacheTTL:   time.Minute,
	}
}

// Profile fetches the company profile for a symbol
func (c *Client) Profile(symbol string) (*Profile, error) {
	var profile Profile
	if err := c.get("/stock/profile2", symbol, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Quote fetches the current quote for a symbol, consulting the cache first
func (c *Client) Quote(symbol string) (*Quote, error) {
	ctx := context.Background()
	cacheKey := "finnhub:quote:" + symbol

	if c.Cache != nil {
		if cached, err := c.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var quote Quote
			if err := json.Unmarshal([]byte(cached), &quote); err == nil {
				return &quote, nil
			}
		}
	}

	var quote Quote
	if err := c.get("/quote", symbol, &quote); err != nil {
		return nil, err
	}

	if c.Cache != nil {
		if payload, err := json.Marshal(&quote); err == nil {
			c.Cache.Set(ctx, cacheKey, payload, c.CacheTTL)
		}
	}

	return &quote, nil
}

func (c *Client) get(path, symbol string, out interface{}) error {
	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("token", c.APIKey)

	resp, err := c.HTTPClient.Get(c.BaseURL + path + "?" + query.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}
