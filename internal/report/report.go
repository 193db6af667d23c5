// Package report derives dashboard views from an expense snapshot: filtering,
// recent activity, pagination, picker values and CSV export. It never touches
// storage; callers pass the result of a fresh ListExpenses.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/mmynk/expensetracker/internal/models"
)

// Filter selects expenses from a snapshot. Zero-valued fields match everything.
type Filter struct {
	Person string

	// UnknownPeriod selects expenses with no period.
	Period models.Period

	// From and To bound the expense date, both inclusive.
	From time.Time
	To   time.Time

	// Search is matched case-insensitively against description and sub-type.
	Search string
}

// Match reports whether e passes every set criterion.
func (f Filter) Match(e *models.Expense) bool {
	if f.Person != "" && e.Person != f.Person {
		return false
	}
	switch f.Period {
	case "":
	case UnknownPeriod:
		if e.Period != "" {
			return false
		}
	default:
		if e.Period != f.Period {
			return false
		}
	}
	if !f.From.IsZero() && e.Date.Before(dateOnly(f.From)) {
		return false
	}
	if !f.To.IsZero() && e.Date.After(dateOnly(f.To)) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Description), q) &&
			!strings.Contains(strings.ToLower(e.SubType), q) {
			return false
		}
	}
	return true
}

// Apply returns the matching expenses in snapshot order.
func (f Filter) Apply(expenses []*models.Expense) []*models.Expense {
	out := make([]*models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// RecentLimit is the number of rows in the dashboard's recent activity table.
const RecentLimit = 5

// Recent returns the n newest expenses by date. Equal dates keep snapshot order.
func Recent(expenses []*models.Expense, n int) []*models.Expense {
	sorted := make([]*models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if n < len(sorted) {
		sorted = sorted[:max(n, 0)]
	}
	return sorted
}

// PageSizes are the page sizes offered by the expense table.
var PageSizes = []int{10, 25, 50, 100}

// DefaultPageSize is used when a caller asks for a non-positive size.
const DefaultPageSize = 25

// Page is one slice of a paginated snapshot.
type Page struct {
	Expenses []*models.Expense
	// Number is the 1-based page actually returned.
	Number int
	// Count is the number of pages, at least 1.
	Count int
	// Total is the number of expenses across all pages.
	Total int
}

// Paginate returns the requested 1-based page. Out-of-range pages are clamped
// to the first or last page.
func Paginate(expenses []*models.Expense, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(expenses)
	count := 1
	if total > 0 {
		count = (total + size - 1) / size
	}
	page = min(max(page, 1), count)

	start := (page - 1) * size
	end := min(start+size, total)

	return Page{
		Expenses: expenses[start:end],
		Number:   page,
		Count:    count,
		Total:    total,
	}
}

// Persons returns the sorted distinct person names in the snapshot.
func Persons(expenses []*models.Expense) []string {
	return distinct(expenses, func(e *models.Expense) string { return e.Person })
}

// UnknownPeriod is the picker value for expenses stored without a period.
const UnknownPeriod models.Period = "Unknown"

// Periods returns the sorted distinct periods in the snapshot.
// An empty period is reported as UnknownPeriod.
func Periods(expenses []*models.Expense) []string {
	return distinct(expenses, func(e *models.Expense) string {
		if e.Period == "" {
			return string(UnknownPeriod)
		}
		return string(e.Period)
	})
}

func distinct(expenses []*models.Expense, key func(*models.Expense) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range expenses {
		k := key(e)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
