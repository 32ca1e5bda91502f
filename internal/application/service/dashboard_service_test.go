package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	infrarepo "github.com/techgpt/techgpt-api/internal/infrastructure/repository"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

func newDashboardService(t *testing.T) (*DashboardService, *testingDeps) {
	t.Helper()
	db := newTestDB(t)
	svc := NewDashboardService(infrarepo.NewAnalyticsRepository(db), infrarepo.NewUserRepository(db))
	return svc, &testingDeps{db: db}
}

func TestGetPlatformStats(t *testing.T) {
	svc, deps := newDashboardService(t)
	customer := seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	provider := seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")
	seedUser(t, deps.db, enum.UserTypeAdmin, "admin@example.com")

	seedCompletedJob(t, deps.db, customer, provider, 5000, 60)
	seedCompletedJob(t, deps.db, customer, provider, 10000, 120)
	require.NoError(t, deps.db.Create(&entity.SupportTicket{
		UserID:   customer.ID,
		Subject:  "Open ticket",
		Priority: "normal",
		Status:   enum.TicketStatusOpen,
	}).Error)

	stats, err := svc.GetPlatformStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.Equal(t, int64(1), stats.TotalProviders)
	assert.Equal(t, int64(2), stats.TotalJobs)
	assert.Equal(t, int64(2), stats.CompletedJobs)
	assert.Equal(t, int64(1), stats.OpenTickets)
	assert.Equal(t, 150.00, stats.TotalRevenue)
	assert.NotEmpty(t, stats.TopCategories)
	assert.Equal(t, "Hardware Repair", stats.TopCategories[0].Category)
}

func TestGetSystemMetrics(t *testing.T) {
	svc, _ := newDashboardService(t)

	metrics, err := svc.GetSystemMetrics(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, metrics.UptimeSeconds, int64(0))
	assert.Greater(t, metrics.Goroutines, 0)
	assert.NotEmpty(t, metrics.GoVersion)
}

func TestListUsers_FilterByType(t *testing.T) {
	svc, deps := newDashboardService(t)
	seedUser(t, deps.db, enum.UserTypeCustomer, "alice@example.com")
	seedUser(t, deps.db, enum.UserTypeServiceProvider, "bob@example.com")

	customerType := enum.UserTypeCustomer
	result, err := svc.ListUsers(context.Background(), &pagination.PaginationParams{Page: 1, PerPage: 10}, &customerType, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Pagination.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "alice@example.com", result.Items[0].Email)
}
