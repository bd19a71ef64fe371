package networth

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	// sqlite3 driver registration
	_ "github.com/mattn/go-sqlite3"
)

// WriteHook observes one durable ledger write. previous is the value the
// write replaced on that date, nil for the date's first value. Hooks fire
// exactly once per logical write, after the record is committed.
type WriteHook func(l *Ledger, on Date, account, currency string, value decimal.Decimal, previous *decimal.Decimal) error

// Store persists value records and sustainability rows in SQLite. It keeps
// an in-memory Ledger mirror of the records table so read-side analytics
// never touch the database.
//
// Writes are serialized by an internal mutex: one logical write at a time,
// satisfying the single-writer-per-date contract the sustainability
// bookkeeping requires.
type Store struct {
	db *sql.DB

	mu     sync.Mutex
	ledger *Ledger
	hooks  []WriteHook
}

const schema = `
CREATE TABLE IF NOT EXISTS value_records (
	date     TEXT NOT NULL,
	account  TEXT NOT NULL,
	currency TEXT NOT NULL,
	value    TEXT NOT NULL,
	PRIMARY KEY (date, account)
);
CREATE TABLE IF NOT EXISTS sustainability_daily (
	date               TEXT PRIMARY KEY,
	total_income_usd   REAL NOT NULL,
	total_expenses_usd REAL NOT NULL,
	delta_usd          REAL NOT NULL
);
`

// Open opens (creating if needed) the store at path and loads the ledger
// mirror. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	s := &Store{db: db, ledger: NewLedger()}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// OnWrite registers a hook fired after every committed logical write.
func (s *Store) OnWrite(hook WriteHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// Ledger returns the in-memory mirror of the records table. Callers must
// treat it as read-only.
func (s *Store) Ledger() *Ledger { return s.ledger }

func (s *Store) load() error {
	rows, err := s.db.Query(`SELECT date, account, currency, value FROM value_records ORDER BY date, account`)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var day, account, currency, value string
		if err := rows.Scan(&day, &account, &currency, &value); err != nil {
			return fmt.Errorf("scan record: %w", err)
		}
		on, err := ParseDate(day)
		if err != nil {
			return fmt.Errorf("record date %q: %w", day, err)
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("record value %q: %w", value, err)
		}
		s.ledger.Upsert(ValueRecord{Date: on, Account: account, Currency: currency, Amount: amount})
	}
	return rows.Err()
}

// Add records a value for an account on a date. The first write to a new
// date first carries every account's latest value forward onto that date,
// so a snapshot of any date is always complete. Carried rows are
// bookkeeping, not logical writes, and fire no hooks.
func (s *Store) Add(on Date, account, currency string, value decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("add %s/%s: %w", on, account, err)
	}
	defer tx.Rollback()

	carried, err := s.carryForward(tx, on)
	if err != nil {
		return err
	}

	// the carried copy of this account, when the date is new, is its
	// effective previous value on the date
	var previous *decimal.Decimal
	if rec, ok := s.ledger.Get(on, account); ok {
		v := rec.Amount
		previous = &v
	} else {
		for _, rec := range carried {
			if rec.Account == account {
				v := rec.Amount
				previous = &v
				break
			}
		}
	}

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO value_records (date, account, currency, value) VALUES (?, ?, ?, ?)`,
		on.String(), account, currency, value.String(),
	); err != nil {
		return fmt.Errorf("upsert %s/%s: %w", on, account, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s/%s: %w", on, account, err)
	}
	// mirror only after the records are durable
	s.ledger.Upsert(carried...)
	s.ledger.Upsert(ValueRecord{Date: on, Account: account, Currency: currency, Amount: value})

	for _, hook := range s.hooks {
		if err := hook(s.ledger, on, account, currency, value, previous); err != nil {
			return fmt.Errorf("write hook %s/%s: %w", on, account, err)
		}
	}
	return nil
}

// carryForward stages a copy of every account's latest value onto 'on'
// when that date has no rows yet, and returns the copies for the caller to
// mirror once the transaction commits.
func (s *Store) carryForward(tx *sql.Tx, on Date) ([]ValueRecord, error) {
	for existing := range s.ledger.Dates() {
		if existing == on {
			return nil, nil
		}
	}
	var carried []ValueRecord
	for account := range s.ledger.Accounts() {
		rec, ok := s.ledger.AsOf(on, account)
		if !ok {
			continue
		}
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO value_records (date, account, currency, value) VALUES (?, ?, ?, ?)`,
			on.String(), account, rec.Currency, rec.Amount.String(),
		); err != nil {
			return nil, fmt.Errorf("carry forward %s/%s: %w", on, account, err)
		}
		carried = append(carried, ValueRecord{Date: on, Account: account, Currency: rec.Currency, Amount: rec.Amount})
	}
	return carried, nil
}

// Bulk adds records in order, firing hooks per record like Add.
func (s *Store) Bulk(records []ValueRecord) error {
	for _, rec := range records {
		if err := s.Add(rec.Date, rec.Account, rec.Currency, rec.Amount); err != nil {
			return err
		}
	}
	return nil
}

// Records reads value records from the database, optionally filtered by
// account (empty = all) and date window (zero dates = unbounded).
func (s *Store) Records(account string, from, to Date) ([]ValueRecord, error) {
	query := `SELECT date, account, currency, value FROM value_records WHERE 1=1`
	var args []any
	if account != "" {
		query += ` AND account = ?`
		args = append(args, account)
	}
	if !from.IsZero() {
		query += ` AND date >= ?`
		args = append(args, from.String())
	}
	if !to.IsZero() {
		query += ` AND date <= ?`
		args = append(args, to.String())
	}
	query += ` ORDER BY date, account`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out []ValueRecord
	for rows.Next() {
		var day, acc, currency, value string
		if err := rows.Scan(&day, &acc, &currency, &value); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		on, err := ParseDate(day)
		if err != nil {
			return nil, fmt.Errorf("record date %q: %w", day, err)
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("record value %q: %w", value, err)
		}
		out = append(out, ValueRecord{Date: on, Account: acc, Currency: currency, Amount: amount})
	}
	return out, rows.Err()
}

// --- SustainabilityStore ---

// Row returns the sustainability row for a date, false when absent.
func (s *Store) Row(on Date) (SustainabilityRow, bool, error) {
	var row SustainabilityRow
	var day string
	err := s.db.QueryRow(
		`SELECT date, total_income_usd, total_expenses_usd, delta_usd FROM sustainability_daily WHERE date = ?`,
		on.String(),
	).Scan(&day, &row.TotalIncome, &row.TotalExpenses, &row.Delta)
	if err == sql.ErrNoRows {
		return SustainabilityRow{}, false, nil
	}
	if err != nil {
		return SustainabilityRow{}, false, fmt.Errorf("sustainability row %s: %w", on, err)
	}
	row.Date = on
	return row, true, nil
}

// UpsertRow writes one sustainability row.
func (s *Store) UpsertRow(row SustainabilityRow) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO sustainability_daily (date, total_income_usd, total_expenses_usd, delta_usd) VALUES (?, ?, ?, ?)`,
		row.Date.String(), row.TotalIncome, row.TotalExpenses, row.Delta,
	)
	if err != nil {
		return fmt.Errorf("upsert sustainability %s: %w", row.Date, err)
	}
	return nil
}

// Rows returns the sustainability rows in [from, to], ascending. Zero
// dates leave that side unbounded.
func (s *Store) Rows(from, to Date) ([]SustainabilityRow, error) {
	query := `SELECT date, total_income_usd, total_expenses_usd, delta_usd FROM sustainability_daily WHERE 1=1`
	var args []any
	if !from.IsZero() {
		query += ` AND date >= ?`
		args = append(args, from.String())
	}
	if !to.IsZero() {
		query += ` AND date <= ?`
		args = append(args, to.String())
	}
	query += ` ORDER BY date`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sustainability: %w", err)
	}
	defer rows.Close()

	var out []SustainabilityRow
	for rows.Next() {
		var row SustainabilityRow
		var day string
		if err := rows.Scan(&day, &row.TotalIncome, &row.TotalExpenses, &row.Delta); err != nil {
			return nil, fmt.Errorf("scan sustainability: %w", err)
		}
		if row.Date, err = ParseDate(day); err != nil {
			return nil, fmt.Errorf("sustainability date %q: %w", day, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ReplaceRows swaps the whole sustainability table in one transaction.
func (s *Store) ReplaceRows(rows []SustainabilityRow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("replace sustainability: %w", err)
	}
	defer tx.Rollback()
	if _, err := tx.Exec(`DELETE FROM sustainability_daily`); err != nil {
		return fmt.Errorf("clear sustainability: %w", err)
	}
	for _, row := range rows {
		if _, err := tx.Exec(
			`INSERT INTO sustainability_daily (date, total_income_usd, total_expenses_usd, delta_usd) VALUES (?, ?, ?, ?)`,
			row.Date.String(), row.TotalIncome, row.TotalExpenses, row.Delta,
		); err != nil {
			return fmt.Errorf("insert sustainability %s: %w", row.Date, err)
		}
	}
	return tx.Commit()
}
