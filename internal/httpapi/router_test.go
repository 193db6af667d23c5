package httpapi

import (
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/expensetracker/internal/middleware"
	"github.com/mmynk/expensetracker/internal/models"
	"github.com/mmynk/expensetracker/internal/service"
	"github.com/mmynk/expensetracker/internal/storage/sqlite"
	"github.com/mmynk/expensetracker/internal/tracker"
)

func setupRouter(t *testing.T) (*httptest.Server, *tracker.Tracker) {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "router.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Init(context.Background()))

	trk := tracker.New(store)
	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(reg)

	rpcPath, rpc := service.NewTrackerServiceHandler(
		service.NewTrackerService(trk),
		connect.WithInterceptors(middleware.LoggingInterceptor(), metrics.Interceptor()),
	)

	server := httptest.NewServer(New(Options{
		RPCPath:        rpcPath,
		RPC:            rpc,
		Export:         NewExportHandler(trk),
		Gatherer:       reg,
		AllowedOrigins: []string{"http://localhost:3000"},
	}))
	t.Cleanup(server.Close)

	return server, trk
}

func seed(t *testing.T, trk *tracker.Tracker) {
	t.Helper()

	rows := []tracker.ExpenseParams{
		{Person: "Ann", Amount: decimal.NewFromInt(40), Period: models.PeriodMonthly, Category: models.CategoryFood, Type: models.ExpenseTypeSmall, Description: "Groceries", Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{Person: "Ben", Amount: decimal.NewFromInt(900), Period: models.PeriodMonthly, Category: models.CategoryHousing, Type: models.ExpenseTypeBig, SubType: "Rent", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Person: "Ann", Amount: decimal.RequireFromString("12.50"), Period: models.PeriodOneTime, Category: models.CategoryEntertainment, Type: models.ExpenseTypeSmall, Description: "Cinema", Date: time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)},
	}
	for _, p := range rows {
		_, err := trk.AddExpense(context.Background(), p)
		require.NoError(t, err)
	}
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHealthz(t *testing.T) {
	server, _ := setupRouter(t)

	resp, body := get(t, server.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestExportCSV(t *testing.T) {
	server, trk := setupRouter(t)
	seed(t, trk)

	resp, body := get(t, server.URL+"/export/expenses.csv?person=Ann")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment; filename=\"expenses_")

	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "person", records[0][1])
	assert.Equal(t, "Groceries", records[1][2])
	assert.Equal(t, "Cinema", records[2][2])
}

func TestExportCSVFilters(t *testing.T) {
	server, trk := setupRouter(t)
	seed(t, trk)

	tests := []struct {
		name  string
		query string
		rows  int
	}{
		{name: "All", query: "person=All&period=All", rows: 3},
		{name: "Period", query: "period=monthly", rows: 2},
		{name: "DateRange", query: "from=2024-03-01&to=2024-03-01", rows: 1},
		{name: "Search", query: "q=rent", rows: 1},
		{name: "NoMatch", query: "person=Nobody", rows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, server.URL+"/export/expenses.csv?"+tt.query)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
			require.NoError(t, err)
			assert.Len(t, records, tt.rows+1)
		})
	}

	t.Run("BadDate", func(t *testing.T) {
		resp, _ := get(t, server.URL+"/export/expenses.csv?from=March")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRPCThroughRouter(t *testing.T) {
	server, _ := setupRouter(t)
	client := service.NewTrackerClient(http.DefaultClient, server.URL)

	resp, err := client.AddMember(context.Background(), connect.NewRequest(&service.AddMemberRequest{
		Name:          "ann",
		EarningStatus: true,
		Earnings:      decimal.NewFromInt(3000),
	}))
	require.NoError(t, err)
	assert.True(t, resp.Msg.Added)
	assert.NotEmpty(t, resp.Header().Get(middleware.RequestIDHeader))

	_, body := get(t, server.URL+"/metrics")
	assert.Contains(t, body, `expensetracker_rpc_requests_total{code="ok",procedure="/expensetracker.v1.TrackerService/AddMember"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	server, _ := setupRouter(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+service.ListMembersProcedure, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}
