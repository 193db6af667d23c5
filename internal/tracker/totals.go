package tracker

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/expensetracker/internal/models"
)

// Summary holds the dashboard totals.
type Summary struct {
	TotalEarnings    decimal.Decimal
	TotalExpenditure decimal.Decimal
	RemainingBalance decimal.Decimal
}

// Total is an amount grouped under a key (a category or a person).
type Total struct {
	Key    string
	Amount decimal.Decimal
}

// TotalEarnings sums earnings over all members, or over earning members only
// when the tracker was built WithEarnersOnly.
func (t *Tracker) TotalEarnings(ctx context.Context) (decimal.Decimal, error) {
	members, err := t.store.ListMembers(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return t.sumEarnings(members), nil
}

// TotalExpenditure sums the amount of every expense.
func (t *Tracker) TotalExpenditure(ctx context.Context) (decimal.Decimal, error) {
	expenses, err := t.store.ListExpenses(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return sumAmounts(expenses), nil
}

// RemainingBalance is total earnings minus total expenditure. It may be negative.
func (t *Tracker) RemainingBalance(ctx context.Context) (decimal.Decimal, error) {
	s, err := t.Summary(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return s.RemainingBalance, nil
}

// Summary computes all three dashboard totals.
func (t *Tracker) Summary(ctx context.Context) (Summary, error) {
	earnings, err := t.TotalEarnings(ctx)
	if err != nil {
		return Summary{}, err
	}
	expenditure, err := t.TotalExpenditure(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalEarnings:    earnings,
		TotalExpenditure: expenditure,
		RemainingBalance: earnings.Sub(expenditure),
	}, nil
}

// TotalsByCategory sums expense amounts per category, largest first.
func (t *Tracker) TotalsByCategory(ctx context.Context) ([]Total, error) {
	expenses, err := t.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return groupTotals(expenses, func(e *models.Expense) string { return string(e.Category) }), nil
}

// TotalsByPerson sums expense amounts per person, largest first.
func (t *Tracker) TotalsByPerson(ctx context.Context) ([]Total, error) {
	expenses, err := t.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return groupTotals(expenses, func(e *models.Expense) string { return e.Person }), nil
}

func (t *Tracker) sumEarnings(members []*models.Member) decimal.Decimal {
	total := decimal.Zero
	for _, m := range members {
		if t.earnersOnly && !m.EarningStatus {
			continue
		}
		total = total.Add(m.Earnings)
	}
	return total
}

func sumAmounts(expenses []*models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

func groupTotals(expenses []*models.Expense, key func(*models.Expense) string) []Total {
	sums := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		k := key(e)
		sums[k] = sums[k].Add(e.Amount)
	}

	totals := make([]Total, 0, len(sums))
	for k, amount := range sums {
		totals = append(totals, Total{Key: k, Amount: amount})
	}

	// Ties sort by key.
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Amount.Cmp(totals[j].Amount); c != 0 {
			return c > 0
		}
		return totals[i].Key < totals[j].Key
	})
	return totals
}
