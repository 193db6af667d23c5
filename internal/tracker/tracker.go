// Package tracker implements the household expense tracker on top of a
// storage.Store: input normalization and validation for members and expenses,
// and the aggregate totals shown on the dashboard.
package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/expensetracker/internal/models"
	"github.com/mmynk/expensetracker/internal/storage"
)

// Tracker validates input and delegates persistence to a store.
// It holds no state between calls; every read goes to storage.
type Tracker struct {
	store       storage.Store
	earnersOnly bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithEarnersOnly makes TotalEarnings count only members whose earning
// status is set. By default earnings of every member are summed.
func WithEarnersOnly(on bool) Option {
	return func(t *Tracker) {
		t.earnersOnly = on
	}
}

// New creates a Tracker backed by store.
func New(store storage.Store, opts ...Option) *Tracker {
	t := &Tracker{store: store}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddMember adds a member under the normalized name. Adding a name that
// already exists is not an error; added reports whether a row was created.
func (t *Tracker) AddMember(ctx context.Context, name string, earningStatus bool, earnings decimal.Decimal) (added bool, err error) {
	name = NormalizeName(name)
	if name == "" {
		return false, invalid("name", "cannot be empty")
	}
	if earnings.IsNegative() {
		return false, invalid("earnings", "cannot be negative")
	}

	member := &models.Member{
		Name:          name,
		EarningStatus: earningStatus,
		Earnings:      earnings,
	}
	added, err = t.store.AddMember(ctx, member)
	if err != nil {
		return false, err
	}

	if added {
		slog.InfoContext(ctx, "Member added", "member_id", member.ID, "name", name)
	} else {
		slog.DebugContext(ctx, "Member already exists", "name", name)
	}
	return added, nil
}

// UpdateMember overwrites earning status and earnings of the member with the
// normalized name. Unknown names are ignored.
func (t *Tracker) UpdateMember(ctx context.Context, name string, earningStatus bool, earnings decimal.Decimal) error {
	if earnings.IsNegative() {
		return invalid("earnings", "cannot be negative")
	}

	return t.store.UpdateMember(ctx, &models.Member{
		Name:          NormalizeName(name),
		EarningStatus: earningStatus,
		Earnings:      earnings,
	})
}

// DeleteMember removes the member with exactly this name. The member's
// expenses stay. Unknown names are ignored.
func (t *Tracker) DeleteMember(ctx context.Context, name string) error {
	return t.store.DeleteMember(ctx, name)
}

// ListMembers returns all members ordered by name.
func (t *Tracker) ListMembers(ctx context.Context) ([]*models.Member, error) {
	return t.store.ListMembers(ctx)
}

// AvailablePersons returns member names in name order, for person pickers.
func (t *Tracker) AvailablePersons(ctx context.Context) ([]string, error) {
	members, err := t.store.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	return names, nil
}

// ExpenseParams carries the fields of a new expense.
type ExpenseParams struct {
	Person      string
	Amount      decimal.Decimal
	Period      models.Period
	Category    models.Category
	Type        models.ExpenseType
	SubType     string
	Description string

	// Date defaults to today when zero.
	Date time.Time
}

// AddExpense records a new expense for the normalized person name.
// The person need not be a member.
func (t *Tracker) AddExpense(ctx context.Context, params ExpenseParams) (*models.Expense, error) {
	person := NormalizeName(params.Person)
	if person == "" {
		return nil, invalid("person", "cannot be empty")
	}
	if !params.Amount.IsPositive() {
		return nil, invalid("amount", "must be greater than 0")
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := &models.Expense{
		Person:      person,
		Description: params.Description,
		Amount:      params.Amount,
		Period:      params.Period,
		Category:    params.Category,
		Type:        params.Type,
		SubType:     params.SubType,
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := t.store.AddExpense(ctx, expense); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Expense added",
		"expense_id", expense.ID,
		"person", person,
		"amount", expense.Amount.String(),
		"category", expense.Category,
	)
	return expense, nil
}

// DeleteExpense removes an expense. Unknown IDs are ignored.
func (t *Tracker) DeleteExpense(ctx context.Context, id int64) error {
	return t.store.DeleteExpense(ctx, id)
}

// ListExpenses returns all expenses, newest date first.
func (t *Tracker) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return t.store.ListExpenses(ctx)
}
