package yobit

import "encoding/json"

// TradeResponse is the envelope returned by the trade API (tapi).
type TradeResponse struct {
	Success int             `json:"success"` // 1 on success, 0 otherwise
	Return  json.RawMessage `json:"return"`  // Delay decoding; payload varies per method
	Error   string          `json:"error"`   // Human-readable reason when success is 0
}

// AccountInfo is the payload of the getInfo method.
type AccountInfo struct {
	Funds            map[string]float64 `json:"funds"`             // free balances
	FundsInclOrders  map[string]float64 `json:"funds_incl_orders"` // balances including order reserves
	Rights           map[string]int     `json:"rights"`
	TransactionCount int                `json:"transaction_count"`
	OpenOrders       int                `json:"open_orders"`
	ServerTime       int64              `json:"server_time"`
}

// Ticker is one pair entry of the public ticker endpoint.
type Ticker struct {
	High    float64 `json:"high"`
	Low     float64 `json:"low"`
	Avg     float64 `json:"avg"`
	Vol     float64 `json:"vol"`     // volume in the quote currency
	VolCur  float64 `json:"vol_cur"` // volume in the base currency
	Last    float64 `json:"last"`
	Buy     float64 `json:"buy"`  // highest bid
	Sell    float64 `json:"sell"` // lowest ask
	Updated int64   `json:"updated"`
}

// publicError is the body the public API returns instead of a ticker map.
type publicError struct {
	Success *int   `json:"success"`
	Error   string `json:"error"`
}
