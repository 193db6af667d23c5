package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// TrackerServiceName is the fully-qualified name of the TrackerService.
const TrackerServiceName = "expensetracker.v1.TrackerService"

// Procedure paths of the TrackerService.
const (
	AddMemberProcedure     = "/" + TrackerServiceName + "/AddMember"
	UpdateMemberProcedure  = "/" + TrackerServiceName + "/UpdateMember"
	DeleteMemberProcedure  = "/" + TrackerServiceName + "/DeleteMember"
	ListMembersProcedure   = "/" + TrackerServiceName + "/ListMembers"
	AddExpenseProcedure    = "/" + TrackerServiceName + "/AddExpense"
	DeleteExpenseProcedure = "/" + TrackerServiceName + "/DeleteExpense"
	ListExpensesProcedure  = "/" + TrackerServiceName + "/ListExpenses"
	GetSummaryProcedure    = "/" + TrackerServiceName + "/GetSummary"
)

// NewTrackerServiceHandler builds an HTTP handler serving every TrackerService
// procedure. It returns the path prefix on which to mount the handler.
func NewTrackerServiceHandler(svc *TrackerService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(AddMemberProcedure, connect.NewUnaryHandler(AddMemberProcedure, svc.AddMember, opts...))
	mux.Handle(UpdateMemberProcedure, connect.NewUnaryHandler(UpdateMemberProcedure, svc.UpdateMember, opts...))
	mux.Handle(DeleteMemberProcedure, connect.NewUnaryHandler(DeleteMemberProcedure, svc.DeleteMember, opts...))
	mux.Handle(ListMembersProcedure, connect.NewUnaryHandler(ListMembersProcedure, svc.ListMembers, opts...))
	mux.Handle(AddExpenseProcedure, connect.NewUnaryHandler(AddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(DeleteExpenseProcedure, connect.NewUnaryHandler(DeleteExpenseProcedure, svc.DeleteExpense, opts...))
	mux.Handle(ListExpensesProcedure, connect.NewUnaryHandler(ListExpensesProcedure, svc.ListExpenses, opts...))
	mux.Handle(GetSummaryProcedure, connect.NewUnaryHandler(GetSummaryProcedure, svc.GetSummary, opts...))

	return "/" + TrackerServiceName + "/", mux
}

// TrackerClient calls a TrackerService over Connect with the JSON codec.
type TrackerClient struct {
	addMember     *connect.Client[AddMemberRequest, AddMemberResponse]
	updateMember  *connect.Client[UpdateMemberRequest, UpdateMemberResponse]
	deleteMember  *connect.Client[DeleteMemberRequest, DeleteMemberResponse]
	listMembers   *connect.Client[ListMembersRequest, ListMembersResponse]
	addExpense    *connect.Client[AddExpenseRequest, AddExpenseResponse]
	deleteExpense *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	listExpenses  *connect.Client[ListExpensesRequest, ListExpensesResponse]
	getSummary    *connect.Client[GetSummaryRequest, GetSummaryResponse]
}

// NewTrackerClient creates a client for the TrackerService at baseURL.
func NewTrackerClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TrackerClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &TrackerClient{
		addMember:     connect.NewClient[AddMemberRequest, AddMemberResponse](httpClient, baseURL+AddMemberProcedure, opts...),
		updateMember:  connect.NewClient[UpdateMemberRequest, UpdateMemberResponse](httpClient, baseURL+UpdateMemberProcedure, opts...),
		deleteMember:  connect.NewClient[DeleteMemberRequest, DeleteMemberResponse](httpClient, baseURL+DeleteMemberProcedure, opts...),
		listMembers:   connect.NewClient[ListMembersRequest, ListMembersResponse](httpClient, baseURL+ListMembersProcedure, opts...),
		addExpense:    connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+AddExpenseProcedure, opts...),
		deleteExpense: connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+DeleteExpenseProcedure, opts...),
		listExpenses:  connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+ListExpensesProcedure, opts...),
		getSummary:    connect.NewClient[GetSummaryRequest, GetSummaryResponse](httpClient, baseURL+GetSummaryProcedure, opts...),
	}
}

func (c *TrackerClient) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *TrackerClient) UpdateMember(ctx context.Context, req *connect.Request[UpdateMemberRequest]) (*connect.Response[UpdateMemberResponse], error) {
	return c.updateMember.CallUnary(ctx, req)
}

func (c *TrackerClient) DeleteMember(ctx context.Context, req *connect.Request[DeleteMemberRequest]) (*connect.Response[DeleteMemberResponse], error) {
	return c.deleteMember.CallUnary(ctx, req)
}

func (c *TrackerClient) ListMembers(ctx context.Context, req *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

func (c *TrackerClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *TrackerClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *TrackerClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *TrackerClient) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}
