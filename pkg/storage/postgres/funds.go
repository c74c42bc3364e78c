package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"yotracker/internal/funds"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TableName is the append-only history table.
const TableName = "funds"

var (
	// ErrMissingColumn is returned when the funds table lacks an expected column.
	ErrMissingColumn = errors.New("funds table: missing column")
	// ErrUnknownColumn is returned when the funds table has a column this version does not know.
	ErrUnknownColumn = errors.New("funds table: unknown column")
)

var identifier = regexp.MustCompile(`^[a-z0-9]+$`)

// FundsTable stores FundSnapshots with the price column named after the
// reference currency: (coin, amount, <reference>, timestamp).
type FundsTable struct {
	client    *PostgresClient
	reference string
}

func NewFundsTable(client *PostgresClient, reference string) (*FundsTable, error) {
	if !identifier.MatchString(reference) {
		return nil, fmt.Errorf("invalid reference currency column %q", reference)
	}
	return &FundsTable{client: client, reference: reference}, nil
}

// Client exposes the underlying connection, e.g. to close it.
func (t *FundsTable) Client() *PostgresClient {
	return t.client
}

func (t *FundsTable) columns() []string {
	return []string{"coin", "amount", t.reference, "timestamp"}
}

// Migrate creates the table and its run index when missing.
func (t *FundsTable) Migrate(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	coin TEXT NOT NULL,
	amount DOUBLE PRECISION NOT NULL,
	%s DOUBLE PRECISION NOT NULL,
	"timestamp" BIGINT NOT NULL
)`, TableName, pq.QuoteIdentifier(t.reference))

	db := t.client.DB.WithContext(ctx)
	if err := db.Exec(ddl).Error; err != nil {
		return fmt.Errorf("create funds table: %w", err)
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_funds_timestamp ON funds ("timestamp")`).Error; err != nil {
		return fmt.Errorf("create funds index: %w", err)
	}
	return t.checkColumns(ctx)
}

// AppendFunds inserts rows in a single transaction; nothing is written if any row fails.
func (t *FundsTable) AppendFunds(ctx context.Context, rows []funds.FundSnapshot) error {
	if len(rows) == 0 {
		return nil
	}

	records := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return err
		}
		records = append(records, map[string]interface{}{
			"coin":      row.Coin,
			"amount":    row.Amount,
			t.reference: row.Price,
			"timestamp": row.CapturedAt,
		})
	}

	return t.client.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(TableName).Create(&records).Error; err != nil {
			return fmt.Errorf("insert funds: %w", err)
		}
		return nil
	})
}

// LoadFunds reads the whole table. The column set is checked before any row is scanned.
func (t *FundsTable) LoadFunds(ctx context.Context) ([]funds.FundSnapshot, error) {
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY "timestamp", coin`, TableName)

	rows, err := t.client.DB.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, fmt.Errorf("query funds: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read funds columns: %w", err)
	}
	index, err := t.columnIndex(cols)
	if err != nil {
		return nil, err
	}

	var out []funds.FundSnapshot
	for rows.Next() {
		var row funds.FundSnapshot
		dest := make([]interface{}, len(cols))
		dest[index["coin"]] = &row.Coin
		dest[index["amount"]] = &row.Amount
		dest[index[t.reference]] = &row.Price
		dest[index["timestamp"]] = &row.CapturedAt

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan funds row: %w", err)
		}
		if err := row.Validate(); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate funds: %w", err)
	}
	return out, nil
}

func (t *FundsTable) checkColumns(ctx context.Context) error {
	types, err := t.client.DB.WithContext(ctx).Migrator().ColumnTypes(TableName)
	if err != nil {
		return fmt.Errorf("inspect funds table: %w", err)
	}
	cols := make([]string, 0, len(types))
	for _, ct := range types {
		cols = append(cols, ct.Name())
	}
	_, err = t.columnIndex(cols)
	return err
}

// columnIndex maps expected column names to their position in cols.
func (t *FundsTable) columnIndex(cols []string) (map[string]int, error) {
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c] = i
	}
	for _, want := range t.columns() {
		if _, ok := index[want]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, want)
		}
	}
	if len(index) != len(t.columns()) {
		for _, c := range cols {
			if !t.known(c) {
				return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
			}
		}
	}
	return index, nil
}

func (t *FundsTable) known(col string) bool {
	for _, c := range t.columns() {
		if c == col {
			return true
		}
	}
	return false
}
