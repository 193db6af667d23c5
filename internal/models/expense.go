package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the storage and wire format of an expense date.
const DateLayout = time.DateOnly

// Period is the recurrence classification of an expense.
type Period string

const (
	PeriodDaily        Period = "daily"
	PeriodOneTime      Period = "one-time"
	PeriodMonthly      Period = "monthly"
	PeriodQuarterly    Period = "quarterly"
	PeriodTwoQuarter   Period = "2-quarter"
	PeriodThreeQuarter Period = "3-quarter"
	PeriodYearly       Period = "yearly"
)

// Periods lists every period in picker order.
var Periods = []Period{
	PeriodDaily,
	PeriodOneTime,
	PeriodMonthly,
	PeriodQuarterly,
	PeriodTwoQuarter,
	PeriodThreeQuarter,
	PeriodYearly,
}

// Valid reports whether p is one of Periods.
func (p Period) Valid() bool {
	for _, v := range Periods {
		if p == v {
			return true
		}
	}
	return false
}

// Category is the spending area of an expense.
type Category string

const (
	CategoryHousing        Category = "Housing"
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryChildRelated   Category = "Child-Related"
	CategoryMedical        Category = "Medical"
	CategoryInvestment     Category = "Investment"
	CategoryMiscellaneous  Category = "Miscellaneous"
)

// Categories lists every category in picker order.
var Categories = []Category{
	CategoryHousing,
	CategoryFood,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryChildRelated,
	CategoryMedical,
	CategoryInvestment,
	CategoryMiscellaneous,
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// ExpenseType is the coarse classifier of an expense.
// Big covers loans, investments and EMIs; small covers incidental spend.
type ExpenseType string

const (
	ExpenseTypeBig   ExpenseType = "big"
	ExpenseTypeSmall ExpenseType = "small"
)

// Valid reports whether t is big or small.
func (t ExpenseType) Valid() bool {
	return t == ExpenseTypeBig || t == ExpenseTypeSmall
}

// BigSubTypes are the sub-types offered for big expenses.
// Small expenses carry no sub-type and rely on the description instead.
var BigSubTypes = []string{"EMI1", "EMI2", "HomeLoan", "CarLoan", "SIP1", "SIP2"}

// Expense is a single dated financial outflow.
// Expenses are never updated in place.
type Expense struct {
	// ID is the auto-incrementing identifier assigned by storage.
	ID int64

	// Person is the owning person's name. It matches a member name by
	// convention only.
	Person string

	// Description is optional free text.
	Description string

	// Amount is strictly positive.
	Amount decimal.Decimal

	Period   Period
	Category Category
	Type     ExpenseType

	// SubType is optional and free-form per expense type.
	SubType string

	// Date is the calendar date of the expense, at midnight UTC.
	Date time.Time

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
