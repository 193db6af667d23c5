package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/expensetracker/internal/models"
	"github.com/mmynk/expensetracker/internal/report"
	"github.com/mmynk/expensetracker/internal/tracker"
)

// TrackerService implements the Connect TrackerService
type TrackerService struct {
	tracker *tracker.Tracker
}

// NewTrackerService creates a new TrackerService backed by the given tracker.
func NewTrackerService(t *tracker.Tracker) *TrackerService {
	return &TrackerService{tracker: t}
}

// toConnectError maps tracker errors onto Connect codes.
func toConnectError(err error) error {
	if errors.Is(err, tracker.ErrValidation) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// AddMember adds a household member.
func (s *TrackerService) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	slog.Info("AddMember request received", "name", req.Msg.Name, "earning_status", req.Msg.EarningStatus)

	added, err := s.tracker.AddMember(ctx, req.Msg.Name, req.Msg.EarningStatus, req.Msg.Earnings)
	if err != nil {
		slog.Error("AddMember failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AddMemberResponse{Added: added}), nil
}

// UpdateMember changes a member's earning status and earnings.
func (s *TrackerService) UpdateMember(ctx context.Context, req *connect.Request[UpdateMemberRequest]) (*connect.Response[UpdateMemberResponse], error) {
	slog.Info("UpdateMember request received", "name", req.Msg.Name)

	if err := s.tracker.UpdateMember(ctx, req.Msg.Name, req.Msg.EarningStatus, req.Msg.Earnings); err != nil {
		slog.Error("UpdateMember failed", "name", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&UpdateMemberResponse{}), nil
}

// DeleteMember removes a member by name.
func (s *TrackerService) DeleteMember(ctx context.Context, req *connect.Request[DeleteMemberRequest]) (*connect.Response[DeleteMemberResponse], error) {
	slog.Info("DeleteMember request received", "name", req.Msg.Name)

	if err := s.tracker.DeleteMember(ctx, req.Msg.Name); err != nil {
		slog.Error("DeleteMember failed", "name", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&DeleteMemberResponse{}), nil
}

// ListMembers returns every member ordered by name.
func (s *TrackerService) ListMembers(ctx context.Context, req *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error) {
	members, err := s.tracker.ListMembers(ctx)
	if err != nil {
		slog.Error("ListMembers failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]Member, len(members))
	for i, m := range members {
		out[i] = toMember(m)
	}

	slog.Info("ListMembers successful", "count", len(out))

	return connect.NewResponse(&ListMembersResponse{Members: out}), nil
}

// AddExpense records an expense. Period, category and type must be picker values.
func (s *TrackerService) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	msg := req.Msg
	slog.Info("AddExpense request received",
		"person", msg.Person,
		"amount", msg.Amount.String(),
		"category", msg.Category,
	)

	params, err := expenseParams(msg)
	if err != nil {
		slog.Error("AddExpense validation failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expense, err := s.tracker.AddExpense(ctx, params)
	if err != nil {
		slog.Error("AddExpense failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AddExpenseResponse{Expense: toExpense(expense)}), nil
}

// expenseParams checks the enumerated fields and the date of a request.
func expenseParams(msg *AddExpenseRequest) (tracker.ExpenseParams, error) {
	period := models.Period(msg.Period)
	if !period.Valid() {
		return tracker.ExpenseParams{}, fmt.Errorf("unknown category_period %q", msg.Period)
	}
	category := models.Category(msg.Category)
	if !category.Valid() {
		return tracker.ExpenseParams{}, fmt.Errorf("unknown category %q", msg.Category)
	}
	expType := models.ExpenseType(msg.ExpenseType)
	if !expType.Valid() {
		return tracker.ExpenseParams{}, fmt.Errorf("unknown expense_type %q", msg.ExpenseType)
	}

	var date time.Time
	if msg.Date != "" {
		d, err := time.Parse(models.DateLayout, msg.Date)
		if err != nil {
			return tracker.ExpenseParams{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", msg.Date)
		}
		date = d
	}

	return tracker.ExpenseParams{
		Person:      msg.Person,
		Amount:      msg.Amount,
		Period:      period,
		Category:    category,
		Type:        expType,
		SubType:     msg.SubType,
		Description: msg.Description,
		Date:        date,
	}, nil
}

// DeleteExpense removes an expense by ID.
func (s *TrackerService) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ID)

	if err := s.tracker.DeleteExpense(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&DeleteExpenseResponse{}), nil
}

// ListExpenses returns the filtered, optionally paged expense table.
func (s *TrackerService) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	filter, err := ParseFilter(req.Msg.Person, req.Msg.Period, req.Msg.From, req.Msg.To, req.Msg.Search)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	all, err := s.tracker.ListExpenses(ctx)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, toConnectError(err)
	}

	matched := filter.Apply(all)
	resp := &ListExpensesResponse{
		Page:      1,
		PageCount: 1,
		Total:     len(matched),
		Persons:   report.Persons(all),
		Periods:   report.Periods(all),
	}

	if req.Msg.PageSize > 0 {
		page := report.Paginate(matched, req.Msg.Page, req.Msg.PageSize)
		resp.Expenses = toExpenses(page.Expenses)
		resp.Page = page.Number
		resp.PageCount = page.Count
	} else {
		resp.Expenses = toExpenses(matched)
	}

	slog.Info("ListExpenses successful", "matched", len(matched), "returned", len(resp.Expenses))

	return connect.NewResponse(resp), nil
}

// GetSummary returns the dashboard totals and recent activity.
func (s *TrackerService) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	summary, err := s.tracker.Summary(ctx)
	if err != nil {
		slog.Error("GetSummary failed", "error", err)
		return nil, toConnectError(err)
	}

	byCategory, err := s.tracker.TotalsByCategory(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	byPerson, err := s.tracker.TotalsByPerson(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	expenses, err := s.tracker.ListExpenses(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&GetSummaryResponse{
		TotalEarnings:    summary.TotalEarnings,
		TotalExpenditure: summary.TotalExpenditure,
		RemainingBalance: summary.RemainingBalance,
		ByCategory:       toTotals(byCategory),
		ByPerson:         toTotals(byPerson),
		Recent:           toExpenses(report.Recent(expenses, report.RecentLimit)),
	}), nil
}

// ParseFilter builds a report.Filter from raw picker and query values.
// Dates are YYYY-MM-DD; "All" for person or period matches everything.
func ParseFilter(person, period, from, to, search string) (report.Filter, error) {
	f := report.Filter{Search: search}
	if person != "All" {
		f.Person = person
	}
	if period != "All" {
		f.Period = models.Period(period)
	}

	if from != "" {
		d, err := time.Parse(models.DateLayout, from)
		if err != nil {
			return report.Filter{}, fmt.Errorf("invalid from date %q: want YYYY-MM-DD", from)
		}
		f.From = d
	}
	if to != "" {
		d, err := time.Parse(models.DateLayout, to)
		if err != nil {
			return report.Filter{}, fmt.Errorf("invalid to date %q: want YYYY-MM-DD", to)
		}
		f.To = d
	}

	return f, nil
}
