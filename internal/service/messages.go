package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/expensetracker/internal/models"
	"github.com/mmynk/expensetracker/internal/tracker"
)

// Member is the wire form of models.Member.
type Member struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	EarningStatus bool            `json:"earning_status"`
	Earnings      decimal.Decimal `json:"earnings"`
	CreatedAt     int64           `json:"created_at"`
}

// Expense is the wire form of models.Expense. Date is YYYY-MM-DD.
type Expense struct {
	ID          int64           `json:"id"`
	Person      string          `json:"person"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Period      string          `json:"category_period"`
	Category    string          `json:"category"`
	ExpenseType string          `json:"expense_type"`
	SubType     string          `json:"sub_type,omitempty"`
	Date        string          `json:"date"`
	CreatedAt   int64           `json:"created_at"`
}

// Total is an amount grouped by category or person.
type Total struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

type AddMemberRequest struct {
	Name          string          `json:"name"`
	EarningStatus bool            `json:"earning_status"`
	Earnings      decimal.Decimal `json:"earnings"`
}

type AddMemberResponse struct {
	// Added is false when a member with the same name already existed.
	Added bool `json:"added"`
}

type UpdateMemberRequest struct {
	Name          string          `json:"name"`
	EarningStatus bool            `json:"earning_status"`
	Earnings      decimal.Decimal `json:"earnings"`
}

type UpdateMemberResponse struct{}

type DeleteMemberRequest struct {
	Name string `json:"name"`
}

type DeleteMemberResponse struct{}

type ListMembersRequest struct{}

type ListMembersResponse struct {
	Members []Member `json:"members"`
}

type AddExpenseRequest struct {
	Person      string          `json:"person"`
	Amount      decimal.Decimal `json:"amount"`
	Period      string          `json:"category_period"`
	Category    string          `json:"category"`
	ExpenseType string          `json:"expense_type"`
	SubType     string          `json:"sub_type,omitempty"`
	Description string          `json:"description,omitempty"`
	// Date is YYYY-MM-DD; empty means today.
	Date string `json:"date,omitempty"`
}

type AddExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ID int64 `json:"id"`
}

type DeleteExpenseResponse struct{}

// ListExpensesRequest filters and pages the expense table.
// Empty filter fields match everything; PageSize 0 returns every row.
type ListExpensesRequest struct {
	Person   string `json:"person,omitempty"`
	Period   string `json:"category_period,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Search   string `json:"search,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
}

type ListExpensesResponse struct {
	Expenses  []Expense `json:"expenses"`
	Page      int       `json:"page"`
	PageCount int       `json:"page_count"`
	// Total counts matching rows across all pages.
	Total int `json:"total"`
	// Persons and Periods are picker values over the unfiltered table.
	Persons []string `json:"persons"`
	Periods []string `json:"periods"`
}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
	TotalExpenditure decimal.Decimal `json:"total_expenditure"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	ByCategory       []Total         `json:"by_category"`
	ByPerson         []Total         `json:"by_person"`
	Recent           []Expense       `json:"recent"`
}

func toMember(m *models.Member) Member {
	return Member{
		ID:            m.ID,
		Name:          m.Name,
		EarningStatus: m.EarningStatus,
		Earnings:      m.Earnings,
		CreatedAt:     m.CreatedAt,
	}
}

func toExpense(e *models.Expense) Expense {
	return Expense{
		ID:          e.ID,
		Person:      e.Person,
		Description: e.Description,
		Amount:      e.Amount,
		Period:      string(e.Period),
		Category:    string(e.Category),
		ExpenseType: string(e.Type),
		SubType:     e.SubType,
		Date:        e.Date.Format(models.DateLayout),
		CreatedAt:   e.CreatedAt,
	}
}

func toExpenses(expenses []*models.Expense) []Expense {
	out := make([]Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toExpense(e)
	}
	return out
}

func toTotals(totals []tracker.Total) []Total {
	out := make([]Total, len(totals))
	for i, t := range totals {
		out[i] = Total{Key: t.Key, Amount: t.Amount}
	}
	return out
}
