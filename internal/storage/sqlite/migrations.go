package sqlite

import (
	"context"
	"fmt"
)

// schema creates the tables on first use and is a no-op afterwards.
// Changes must stay additive: there is no migration path for existing files.
// expenses.person is a plain name, not a foreign key to members.
// Money columns hold decimal strings.
const schema = `
CREATE TABLE IF NOT EXISTS members (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    earning_status INTEGER NOT NULL DEFAULT 0,
    earnings TEXT NOT NULL DEFAULT '0',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    person TEXT NOT NULL,
    description TEXT,
    amount TEXT NOT NULL,
    category_period TEXT NOT NULL,
    category TEXT NOT NULL,
    expense_type TEXT NOT NULL,
    sub_type TEXT,
    date TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date DESC, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_expenses_person ON expenses(person);
`

// Init ensures the members and expenses tables exist.
// It is safe to call repeatedly and must run once before the store is used.
func (s *SQLiteStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
