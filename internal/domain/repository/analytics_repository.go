package repository

import (
	"context"
	"time"
)

// DailyJobsResult represents job volume and revenue for a single day
type DailyJobsResult struct {
	Date      time.Time
	Completed int64
	Revenue   float64
}

// CategoryJobsResult represents completed jobs aggregated by service category
type CategoryJobsResult struct {
	Category string
	JobCount int64
	Revenue  float64
}

// PlatformCounts is the raw count snapshot behind the admin dashboard.
type PlatformCounts struct {
	Customers     int64
	Providers     int64
	Jobs          int64
	CompletedJobs int64
	OpenTickets   int64
	Bookings      int64
}

// AnalyticsRepository defines interface for aggregation queries that span
// multiple entities. Kept separate from the per-entity repositories so the
// dashboard does not page through whole tables.
type AnalyticsRepository interface {
	// GetPlatformCounts returns the entity counts shown on the admin dashboard.
	GetPlatformCounts(ctx context.Context) (*PlatformCounts, error)
	// GetDailyJobs returns completed-job volume per day for the trailing window.
	GetDailyJobs(ctx context.Context, days int) ([]DailyJobsResult, error)
	// GetJobsByCategory returns completed jobs grouped by service category.
	GetJobsByCategory(ctx context.Context, limit int) ([]CategoryJobsResult, error)
	// GetRevenueSince totals completed-job revenue (dollars) since a cutoff.
	GetRevenueSince(ctx context.Context, since time.Time) (float64, error)
}
