package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"yotracker/internal/funds"
)

// ErrLedgerFormat marks a balance ledger that cannot be parsed.
var ErrLedgerFormat = errors.New("balance ledger format")

var ledgerColumns = []string{"date", "currency", "amount", "withdrawal"}

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02"}

// LoadLedger reads a ';'-separated balance ledger with a
// date;currency;amount;withdrawal header.
func LoadLedger(path string) ([]funds.BalanceEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseLedger(f)
}

func ParseLedger(r io.Reader) ([]funds.BalanceEvent, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrLedgerFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerFormat, err)
	}

	// spreadsheet exports often start with a byte order mark
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	index := map[string]int{}
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range ledgerColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrLedgerFormat, col)
		}
	}

	var events []funds.BalanceEvent
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLedgerFormat, err)
		}

		ev, err := parseEvent(record, index)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrLedgerFormat, line, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseEvent(record []string, index map[string]int) (funds.BalanceEvent, error) {
	field := func(name string) string { return strings.TrimSpace(record[index[name]]) }

	date, err := parseDate(field("date"))
	if err != nil {
		return funds.BalanceEvent{}, err
	}
	amount, err := strconv.ParseFloat(field("amount"), 64)
	if err != nil {
		return funds.BalanceEvent{}, fmt.Errorf("amount: %w", err)
	}
	withdrawal := false
	if w := field("withdrawal"); w != "" {
		if withdrawal, err = strconv.ParseBool(w); err != nil {
			return funds.BalanceEvent{}, fmt.Errorf("withdrawal: %w", err)
		}
	}

	return funds.BalanceEvent{
		Date:       date,
		Currency:   strings.ToLower(field("currency")),
		Amount:     amount,
		Withdrawal: withdrawal,
	}, nil
}

// parseDate accepts Unix seconds or one of dateLayouts, interpreted as UTC.
func parseDate(s string) (time.Time, error) {
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("date %q: unsupported format", s)
}
