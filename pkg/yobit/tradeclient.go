package yobit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TradeClient calls the authenticated trade API.
type TradeClient struct {
	baseURL    string
	httpClient *http.Client
	signer     *Signer
}

func NewTradeClient(baseURL string, timeout time.Duration, signer *Signer) *TradeClient {
	return &TradeClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		signer:     signer,
	}
}

// GetFunds returns coin → amount including funds reserved in open orders.
// The nonce must grow between calls made with the same key.
func (c *TradeClient) GetFunds(ctx context.Context, nonce int64) (map[string]float64, error) {
	var info AccountInfo
	if err := c.call(ctx, "getInfo", nonce, &info); err != nil {
		return nil, err
	}

	funds := make(map[string]float64, len(info.FundsInclOrders))
	for coin, amount := range info.FundsInclOrders {
		funds[strings.ToLower(coin)] = amount
	}
	return funds, nil
}

func (c *TradeClient) call(ctx context.Context, method string, nonce int64, out any) error {
	form := url.Values{}
	form.Set("method", method)
	form.Set("nonce", strconv.FormatInt(nonce, 10))
	body := form.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(body))
	if err != nil {
		return &APIError{Kind: KindResponse, Op: method, Message: "creating request", Cause: err}
	}
	for k, v := range c.signer.Headers(body) {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return statusError(method, resp.StatusCode, raw)
	}

	var envelope TradeResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return decodeError(method, err)
	}

	// the trade API reports key, sign and nonce problems with success=0
	if envelope.Success != 1 {
		return &APIError{Kind: KindAuth, Op: method, StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if err := json.Unmarshal(envelope.Return, out); err != nil {
		return decodeError(method, fmt.Errorf("return: %w", err))
	}
	return nil
}
