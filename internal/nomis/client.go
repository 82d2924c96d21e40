package nomis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"eqia_dashboard_backend/platform/config"
	"eqia_dashboard_backend/platform/logger"

	"golang.org/x/time/rate"
)

// defaultMeasures requests both the raw count (20100) and the percentage
// (20301) measure, which is why responses arrive as interleaved pairs.
const defaultMeasures = "20100,20301"

// Client is the HTTP client for the NOMIS jsonstat API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	limiter    *rate.Limiter
	log        *logger.Logger
}

// NewClient creates a NOMIS API client with retry and rate limiting.
func NewClient(cfg config.NomisConfig, log *logger.Logger) *Client {
	rps := cfg.GetNomisRequestsPerSecond()
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetNomisTimeout()},
		baseURL:    cfg.GetNomisBaseURL(),
		maxRetries: cfg.GetNomisMaxRetries(),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		log:        log,
	}
}

// FetchValues fetches the raw value series for a dataset and geography.
// Transient upstream failures (rate limiting, server errors) are retried a
// bounded number of times with increasing delay; anything else surfaces as an
// error that callers treat as "no data".
func (c *Client) FetchValues(ctx context.Context, datasetID, geographyCode string, filter map[string]string) ([]*float64, error) {
	if geographyCode == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("geography", geographyCode)
	params.Set("date", "latest")
	params.Set("measures", defaultMeasures)
	for _, key := range sortedKeys(filter) {
		params.Set(key, filter[key])
	}

	reqURL := fmt.Sprintf("%s/dataset/%s.jsonstat.json?%s", c.baseURL, url.PathEscape(datasetID), params.Encode())

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		values, retryable, err := c.doRequest(ctx, reqURL)
		if err == nil {
			return values, nil
		}
		if !retryable || attempt >= c.maxRetries {
			c.log.UpstreamError("nomis", geographyCode, err)
			return nil, err
		}

		c.log.Warn("nomis transient error, retrying",
			"geography", geographyCode,
			"attempt", attempt+1,
			"error", err.Error(),
		)
		delay := time.Duration(1+attempt*2) * time.Second
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

func (c *Client) doRequest(ctx context.Context, reqURL string) (values []*float64, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return nil, true, fmt.Errorf("upstream overloaded: status %d", resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var payload jsonstatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("decode response: %w", err)
	}

	// A structurally valid payload without values is a legitimate
	// "no data for this geography" answer, not an error.
	return payload.Value, false, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ Fetcher = (*Client)(nil)
