package collector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"yotracker/config"
	"yotracker/internal/memorystore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// exchange fakes both Yobit endpoints on one server.
func exchange(t *testing.T, funds string, tickers map[string]map[string]float64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/tapi/":
			_, _ = w.Write([]byte(`{"success":1,"return":{"funds_incl_orders":` + funds + `}}`))
		case strings.HasPrefix(r.URL.Path, "/api/3/ticker/"):
			out := map[string]map[string]float64{}
			for _, p := range strings.Split(strings.TrimPrefix(r.URL.Path, "/api/3/ticker/"), "-") {
				if tk, ok := tickers[p]; ok {
					out[p] = tk
				}
			}
			_ = json.NewEncoder(w).Encode(out)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(url string) *config.Config {
	return &config.Config{
		Yobit: config.YobitConfig{
			REST:  config.RESTConfig{BaseURL: url + "/api/3", Timeout: 5 * time.Second, BatchSize: 40},
			Trade: config.TradeConfig{BaseURL: url + "/tapi/", Timeout: 5 * time.Second},
		},
		Tracker: config.TrackerConfig{ReferenceCurrency: "usd"},
	}
}

// go test -v --run TestRunStoresOneBatch
func TestRunStoresOneBatch(t *testing.T) {
	srv := exchange(t, `{"usd":25,"btc":0.5,"eth":2}`, map[string]map[string]float64{
		"btc_usd": {"buy": 30000, "sell": 30100},
		"eth_usd": {"buy": 2000, "sell": 2010},
	})
	store := memorystore.NewFundStore()

	c := New(testConfig(srv.URL), config.Credentials{Key: "k", Secret: "s"}, store, zap.NewNop())
	c.now = func() time.Time { return time.Unix(1700000000, 0) }

	rows, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	stored, err := store.LoadFunds(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 3)
	for _, r := range stored {
		assert.Equal(t, int64(1700000000), r.CapturedAt)
	}
	assert.Equal(t, 1, store.CountRuns())
}

// go test -v --run TestRunPersistsNothingOnMissingPrice
func TestRunPersistsNothingOnMissingPrice(t *testing.T) {
	srv := exchange(t, `{"usd":25,"btc":0.5,"gone":3}`, map[string]map[string]float64{
		"btc_usd": {"buy": 30000},
	})
	store := memorystore.NewFundStore()

	c := New(testConfig(srv.URL), config.Credentials{Key: "k", Secret: "s"}, store, zap.NewNop())

	_, err := c.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone_usd")
	assert.Equal(t, 0, store.CountRuns())
}

// go test -v --run TestRunEmptyAccount
func TestRunEmptyAccount(t *testing.T) {
	srv := exchange(t, `{}`, nil)
	store := memorystore.NewFundStore()

	c := New(testConfig(srv.URL), config.Credentials{Key: "k", Secret: "s"}, store, zap.NewNop())

	rows, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 0, store.CountRuns())
}
