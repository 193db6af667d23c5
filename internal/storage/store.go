// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/expensetracker/internal/models"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=storage

// Store defines the member and expense storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the tracker.
//
// Every operation is a single statement. Updates and deletes that match no row
// succeed without error.
type Store interface {
	// AddMember inserts the member unless a member with the same name exists.
	// It reports whether a row was inserted; member.ID and member.CreatedAt are populated
	// only when it was.
	AddMember(ctx context.Context, member *models.Member) (bool, error)

	// UpdateMember overwrites earning status and earnings of the member
	// named member.Name.
	UpdateMember(ctx context.Context, member *models.Member) error

	// DeleteMember removes the member with exactly this name.
	DeleteMember(ctx context.Context, name string) error

	// ListMembers returns all members ordered by name.
	ListMembers(ctx context.Context) ([]*models.Member, error)

	// AddExpense persists a new expense.
	// The expense.ID and expense.CreatedAt fields will be populated by the store.
	AddExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes the expense with the given ID.
	DeleteExpense(ctx context.Context, id int64) error

	// ListExpenses returns all expenses, newest date first, ties broken by
	// most recently inserted first.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
