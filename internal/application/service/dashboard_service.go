package service

import (
	"context"
	"runtime"
	"time"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/domain/repository"
	"github.com/techgpt/techgpt-api/pkg/pagination"
	"github.com/techgpt/techgpt-api/pkg/quebectax"
)

// DashboardService produces the admin dashboard aggregates
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	userRepo      repository.UserRepository
	startedAt     time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, userRepo repository.UserRepository) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		userRepo:      userRepo,
		startedAt:     time.Now(),
	}
}

// PlatformStats is the admin dashboard headline view.
type PlatformStats struct {
	TotalCustomers int64               `json:"total_customers"`
	TotalProviders int64               `json:"total_providers"`
	TotalJobs      int64               `json:"total_jobs"`
	CompletedJobs  int64               `json:"completed_jobs"`
	OpenTickets    int64               `json:"open_tickets"`
	TotalBookings  int64               `json:"total_bookings"`
	TotalRevenue   float64             `json:"total_revenue"`
	Revenue30Days  float64             `json:"revenue_30_days"`
	DailyJobs      []DailyJobsEntry    `json:"daily_jobs"`
	TopCategories  []CategoryJobsEntry `json:"top_categories"`
	GeneratedAt    time.Time           `json:"generated_at"`
}

// DailyJobsEntry is one day of completed-job volume.
type DailyJobsEntry struct {
	Date      string  `json:"date"`
	Completed int64   `json:"completed"`
	Revenue   float64 `json:"revenue"`
}

// CategoryJobsEntry is completed-job volume for one service category.
type CategoryJobsEntry struct {
	Category string  `json:"category"`
	JobCount int64   `json:"job_count"`
	Revenue  float64 `json:"revenue"`
}

// GetPlatformStats assembles the admin dashboard aggregates
func (s *DashboardService) GetPlatformStats(ctx context.Context) (*PlatformStats, error) {
	counts, err := s.analyticsRepo.GetPlatformCounts(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.analyticsRepo.GetRevenueSince(ctx, time.Time{})
	if err != nil {
		return nil, err
	}

	revenue30, err := s.analyticsRepo.GetRevenueSince(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	daily, err := s.analyticsRepo.GetDailyJobs(ctx, 14)
	if err != nil {
		return nil, err
	}
	dailyEntries := make([]DailyJobsEntry, 0, len(daily))
	for _, d := range daily {
		dailyEntries = append(dailyEntries, DailyJobsEntry{
			Date:      d.Date.Format("2006-01-02"),
			Completed: d.Completed,
			Revenue:   quebectax.Round2(d.Revenue),
		})
	}

	categories, err := s.analyticsRepo.GetJobsByCategory(ctx, 5)
	if err != nil {
		return nil, err
	}
	categoryEntries := make([]CategoryJobsEntry, 0, len(categories))
	for _, c := range categories {
		categoryEntries = append(categoryEntries, CategoryJobsEntry{
			Category: c.Category,
			JobCount: c.JobCount,
			Revenue:  quebectax.Round2(c.Revenue),
		})
	}

	return &PlatformStats{
		TotalCustomers: counts.Customers,
		TotalProviders: counts.Providers,
		TotalJobs:      counts.Jobs,
		CompletedJobs:  counts.CompletedJobs,
		OpenTickets:    counts.OpenTickets,
		TotalBookings:  counts.Bookings,
		TotalRevenue:   quebectax.Round2(totalRevenue),
		Revenue30Days:  quebectax.Round2(revenue30),
		DailyJobs:      dailyEntries,
		TopCategories:  categoryEntries,
		GeneratedAt:    time.Now(),
	}, nil
}

// SystemMetrics reports process health for the admin dashboard.
type SystemMetrics struct {
	UptimeSeconds  int64     `json:"uptime_seconds"`
	Goroutines     int       `json:"goroutines"`
	HeapAllocBytes uint64    `json:"heap_alloc_bytes"`
	NumGC          uint32    `json:"num_gc"`
	GoVersion      string    `json:"go_version"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// GetSystemMetrics reports runtime health of the API process
func (s *DashboardService) GetSystemMetrics(ctx context.Context) (*SystemMetrics, error) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return &SystemMetrics{
		UptimeSeconds:  int64(time.Since(s.startedAt).Seconds()),
		Goroutines:     runtime.NumGoroutine(),
		HeapAllocBytes: memStats.HeapAlloc,
		NumGC:          memStats.NumGC,
		GoVersion:      runtime.Version(),
		GeneratedAt:    time.Now(),
	}, nil
}

// ListUsers returns users for the admin user listing
func (s *DashboardService) ListUsers(ctx context.Context, params *pagination.PaginationParams, userType *enum.UserType, search string) (*pagination.PaginatedResult[entity.User], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	users, total, err := s.userRepo.List(ctx, params, userType, search)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(users, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
