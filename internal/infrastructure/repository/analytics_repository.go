package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	domainRepo "github.com/techgpt/techgpt-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetPlatformCounts(ctx context.Context) (*domainRepo.PlatformCounts, error) {
	counts := &domainRepo.PlatformCounts{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&entity.User{}).
		Where("user_type = ?", enum.UserTypeCustomer).
		Count(&counts.Customers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.User{}).
		Where("user_type = ?", enum.UserTypeServiceProvider).
		Count(&counts.Providers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Job{}).Count(&counts.Jobs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Job{}).
		Where("status = ?", enum.JobStatusCompleted).
		Count(&counts.CompletedJobs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.SupportTicket{}).
		Where("status IN ?", []enum.TicketStatus{enum.TicketStatusOpen, enum.TicketStatusInProgress}).
		Count(&counts.OpenTickets).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Booking{}).Count(&counts.Bookings).Error; err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *analyticsRepository) GetDailyJobs(ctx context.Context, days int) ([]domainRepo.DailyJobsResult, error) {
	if days <= 0 {
		days = 7
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	type row struct {
		Day      time.Time
		JobCount int64
		FeeCents int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&entity.Job{}).
		Select("DATE(completed_at) AS day, COUNT(*) AS job_count, COALESCE(SUM(service_fee), 0) AS fee_cents").
		Where("status = ? AND completed_at >= ?", enum.JobStatusCompleted, cutoff).
		Group("DATE(completed_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.DailyJobsResult, 0, len(rows))
	for _, r := range rows {
		results = append(results, domainRepo.DailyJobsResult{
			Date:      r.Day,
			Completed: r.JobCount,
			Revenue:   float64(r.FeeCents) / 100,
		})
	}
	return results, nil
}

func (r *analyticsRepository) GetJobsByCategory(ctx context.Context, limit int) ([]domainRepo.CategoryJobsResult, error) {
	if limit <= 0 {
		limit = 10
	}

	type row struct {
		Category string
		JobCount int64
		FeeCents int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&entity.Job{}).
		Select("category, COUNT(*) AS job_count, COALESCE(SUM(service_fee), 0) AS fee_cents").
		Where("status = ?", enum.JobStatusCompleted).
		Group("category").
		Order("job_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.CategoryJobsResult, 0, len(rows))
	for _, r := range rows {
		results = append(results, domainRepo.CategoryJobsResult{
			Category: r.Category,
			JobCount: r.JobCount,
			Revenue:  float64(r.FeeCents) / 100,
		})
	}
	return results, nil
}

func (r *analyticsRepository) GetRevenueSince(ctx context.Context, since time.Time) (float64, error) {
	var cents int64
	err := r.db.WithContext(ctx).Model(&entity.Job{}).
		Where("status = ? AND completed_at >= ?", enum.JobStatusCompleted, since).
		Select("COALESCE(SUM(service_fee), 0)").
		Scan(&cents).Error
	return float64(cents) / 100, err
}
