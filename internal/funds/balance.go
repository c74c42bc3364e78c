package funds

import "time"

// BalanceEvent is a deposit or withdrawal recorded outside the exchange.
type BalanceEvent struct {
	Date       time.Time
	Currency   string
	Amount     float64
	Withdrawal bool
}
