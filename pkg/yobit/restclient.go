package yobit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// MaxPairsPerRequest is the ticker endpoint's limit on pairs per call.
const MaxPairsPerRequest = 40

// RESTClient calls the public API.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	batchSize  int
	limiter    *rate.Limiter // spaces consecutive ticker requests
}

// NewRESTClient creates a public API client. Consecutive ticker requests are
// separated by at least delay; batchSize is clamped to MaxPairsPerRequest.
func NewRESTClient(baseURL string, timeout time.Duration, batchSize int, delay time.Duration) *RESTClient {
	if batchSize <= 0 || batchSize > MaxPairsPerRequest {
		batchSize = MaxPairsPerRequest
	}

	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}

	return &RESTClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		batchSize:  batchSize,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// PairName returns the ticker identifier of coin quoted in reference, e.g. "btc_usd".
func PairName(coin, reference string) string {
	return strings.ToLower(coin) + "_" + strings.ToLower(reference)
}

// GetTickers fetches tickers for pairs, one request per batch, and merges
// the results. Pairs unknown to the exchange are absent from the result.
func (c *RESTClient) GetTickers(ctx context.Context, pairs []string) (map[string]Ticker, error) {
	tickers := make(map[string]Ticker, len(pairs))

	for _, batch := range chunk(pairs, c.batchSize) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, transportError("ticker", err)
		}

		part, err := c.getTickerBatch(ctx, batch)
		if err != nil {
			return nil, err
		}
		for pair, t := range part {
			tickers[pair] = t
		}
	}

	return tickers, nil
}

func (c *RESTClient) getTickerBatch(ctx context.Context, pairs []string) (map[string]Ticker, error) {
	endpoint := fmt.Sprintf("%s/ticker/%s?ignore_invalid=1", c.baseURL, strings.Join(pairs, "-"))

	// Construct the GET request with context for timeout/cancel support
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &APIError{Kind: KindResponse, Op: "ticker", Message: "creating request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError("ticker", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, statusError("ticker", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("ticker", err)
	}

	// Delay decoding: an error body shares the top level with pair entries
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, decodeError("ticker", err)
	}

	if _, ok := raw["success"]; ok {
		var perr publicError
		_ = json.Unmarshal(body, &perr)
		return nil, &APIError{Kind: KindResponse, Op: "ticker", StatusCode: resp.StatusCode, Message: perr.Error}
	}

	out := make(map[string]Ticker, len(raw))
	for pair, entry := range raw {
		var t Ticker
		if err := json.Unmarshal(entry, &t); err != nil {
			return nil, decodeError("ticker", fmt.Errorf("pair %s: %w", pair, err))
		}
		out[pair] = t
	}
	return out, nil
}

// chunk splits items into consecutive slices of at most size elements.
func chunk(items []string, size int) [][]string {
	var out [][]string
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}
