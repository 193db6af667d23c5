package tracker_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/expensetracker/internal/models"
	"github.com/mmynk/expensetracker/internal/storage/sqlite"
	"github.com/mmynk/expensetracker/internal/tracker"
)

func newSQLiteTracker(t *testing.T, opts ...tracker.Option) *tracker.Tracker {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Init(context.Background()))

	return tracker.New(store, opts...)
}

func TestHouseholdScenario(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteTracker(t)

	added, err := svc.AddMember(ctx, "john", true, decimal.NewFromInt(5000))
	require.NoError(t, err)
	assert.True(t, added)

	members, err := svc.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "John", members[0].Name)

	earnings, err := svc.TotalEarnings(ctx)
	require.NoError(t, err)
	assert.True(t, earnings.Equal(decimal.NewFromInt(5000)), "earnings = %s", earnings)

	_, err = svc.AddExpense(ctx, tracker.ExpenseParams{
		Person:      "John",
		Amount:      decimal.NewFromInt(150),
		Period:      models.PeriodMonthly,
		Category:    models.CategoryFood,
		Type:        models.ExpenseTypeSmall,
		Description: "Groceries",
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	expenses, err := svc.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.True(t, expenses[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "2024-01-15", expenses[0].Date.Format(models.DateLayout))

	spent, err := svc.TotalExpenditure(ctx)
	require.NoError(t, err)
	assert.True(t, spent.Equal(decimal.NewFromInt(150)), "expenditure = %s", spent)

	balance, err := svc.RemainingBalance(ctx)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(4850)), "balance = %s", balance)

	// Deleting the member keeps the expense.
	require.NoError(t, svc.DeleteMember(ctx, "John"))

	members, err = svc.ListMembers(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)

	expenses, err = svc.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "John", expenses[0].Person)
}

func TestDuplicateMemberAnyCase(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteTracker(t)

	for _, name := range []string{"alice", "ALICE", "  Alice "} {
		_, err := svc.AddMember(ctx, name, false, decimal.Zero)
		require.NoError(t, err)
	}

	members, err := svc.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Alice", members[0].Name)
}

func TestRejectedInputLeavesStorageUnchanged(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteTracker(t)

	for _, name := range []string{"", "   "} {
		_, err := svc.AddMember(ctx, name, true, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, tracker.ErrValidation)
	}

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
		_, err := svc.AddExpense(ctx, tracker.ExpenseParams{Person: "John", Amount: amount})
		assert.ErrorIs(t, err, tracker.ErrValidation)
	}

	members, err := svc.ListMembers(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)

	expenses, err := svc.ListExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestTotalsTrackAddsAndDeletes(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteTracker(t)

	amounts := []string{"10.10", "20.20", "30.30", "0.01"}
	var ids []int64
	for _, a := range amounts {
		e, err := svc.AddExpense(ctx, tracker.ExpenseParams{
			Person:   "Ann",
			Amount:   decimal.RequireFromString(a),
			Period:   models.PeriodDaily,
			Category: models.CategoryMiscellaneous,
			Type:     models.ExpenseTypeSmall,
		})
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}

	spent, err := svc.TotalExpenditure(ctx)
	require.NoError(t, err)
	assert.True(t, spent.Equal(decimal.RequireFromString("60.61")), "expenditure = %s", spent)

	require.NoError(t, svc.DeleteExpense(ctx, ids[1]))
	require.NoError(t, svc.DeleteExpense(ctx, 9999))

	spent, err = svc.TotalExpenditure(ctx)
	require.NoError(t, err)
	assert.True(t, spent.Equal(decimal.RequireFromString("40.41")), "expenditure = %s", spent)

	_, err = svc.AddMember(ctx, "Ann", false, decimal.NewFromInt(20))
	require.NoError(t, err)

	balance, err := svc.RemainingBalance(ctx)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("-20.41")), "balance = %s", balance)
}

func TestEarnersOnlyAgainstSQLite(t *testing.T) {
	ctx := context.Background()

	literal := newSQLiteTracker(t)
	earners := newSQLiteTracker(t, tracker.WithEarnersOnly(true))

	for _, svc := range []*tracker.Tracker{literal, earners} {
		_, err := svc.AddMember(ctx, "Ann", true, decimal.NewFromInt(100))
		require.NoError(t, err)
		_, err = svc.AddMember(ctx, "Ben", false, decimal.NewFromInt(40))
		require.NoError(t, err)
	}

	got, err := literal.TotalEarnings(ctx)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(140)), "literal earnings = %s", got)

	got, err = earners.TotalEarnings(ctx)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(100)), "earners-only earnings = %s", got)
}

func TestUpdateMemberThroughTracker(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteTracker(t)

	_, err := svc.AddMember(ctx, "ann", false, decimal.Zero)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateMember(ctx, "ANN", true, decimal.NewFromInt(2500)))
	require.NoError(t, svc.UpdateMember(ctx, "Nobody", true, decimal.NewFromInt(1)))

	members, err := svc.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.True(t, members[0].EarningStatus)
	assert.True(t, members[0].Earnings.Equal(decimal.NewFromInt(2500)))

	persons, err := svc.AvailablePersons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann"}, persons)
}
