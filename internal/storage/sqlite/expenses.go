package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/expensetracker/internal/models"
)

// AddExpense persists a new expense and assigns its ID and creation time.
func (s *SQLiteStore) AddExpense(ctx context.Context, expense *models.Expense) error {
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (person, description, amount, category_period, category,
		                       expense_type, sub_type, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.Person,
		nullable(expense.Description),
		expense.Amount.String(),
		string(expense.Period),
		string(expense.Category),
		string(expense.Type),
		nullable(expense.SubType),
		expense.Date.Format(models.DateLayout),
		expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}
	expense.ID = id

	return nil
}

// DeleteExpense removes an expense by ID. A missing ID is not an error.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// ListExpenses retrieves all expenses, newest date first.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, person, description, amount, category_period, category,
		        expense_type, sub_type, date, created_at
		 FROM expenses
		 ORDER BY date DESC, created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var (
			description, subType           sql.NullString
			period, category, expType, day string
		)

		if err := rows.Scan(&expense.ID, &expense.Person, &description, &expense.Amount,
			&period, &category, &expType, &subType, &day, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}

		date, err := time.Parse(models.DateLayout, day)
		if err != nil {
			return nil, fmt.Errorf("failed to parse expense date %q: %w", day, err)
		}

		expense.Description = description.String
		expense.SubType = subType.String
		expense.Period = models.Period(period)
		expense.Category = models.Category(category)
		expense.Type = models.ExpenseType(expType)
		expense.Date = date

		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}
