package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -v --run TestParseLedger
func TestParseLedger(t *testing.T) {
	input := `date;currency;amount;withdrawal
2021-03-01;usd;100;0
2021-03-05 12:30:00;USD;25.5;1
1617235200;usd;10;false
2021-04-02T08:00:00Z;btc;0.1;
`
	events, err := ParseLedger(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), events[0].Date)
	assert.False(t, events[0].Withdrawal)
	assert.Equal(t, "usd", events[1].Currency)
	assert.True(t, events[1].Withdrawal)
	assert.Equal(t, 25.5, events[1].Amount)
	assert.Equal(t, time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC), events[2].Date)
	assert.False(t, events[3].Withdrawal)
}

// go test -v --run TestParseLedgerColumnOrder
func TestParseLedgerColumnOrder(t *testing.T) {
	input := "Amount; Withdrawal; Currency; Date\n50;1;usd;2022-01-01\n"
	events, err := ParseLedger(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 50.0, events[0].Amount)
	assert.True(t, events[0].Withdrawal)
}

// go test -v --run TestParseLedgerByteOrderMark
func TestParseLedgerByteOrderMark(t *testing.T) {
	input := "\ufeffdate;currency;amount;withdrawal\n2022-01-01;usd;10;0\n"
	events, err := ParseLedger(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 10.0, events[0].Amount)
}

// go test -v --run TestParseLedgerErrors
func TestParseLedgerErrors(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"missing column": "date;currency;amount\n2021-01-01;usd;1\n",
		"bad amount":     "date;currency;amount;withdrawal\n2021-01-01;usd;lots;0\n",
		"bad date":       "date;currency;amount;withdrawal\nyesterday;usd;1;0\n",
		"bad flag":       "date;currency;amount;withdrawal\n2021-01-01;usd;1;maybe\n",
		"ragged":         "date;currency;amount;withdrawal\n2021-01-01;usd\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLedger(strings.NewReader(input))
			require.ErrorIs(t, err, ErrLedgerFormat)
		})
	}
}

// go test -v --run TestLoadLedgerMissingFile
func TestLoadLedgerMissingFile(t *testing.T) {
	_, err := LoadLedger(filepath.Join(t.TempDir(), "balance.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
