package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/domain/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

// overviewSectionLimit caps how many rows each snapshot section carries.
const overviewSectionLimit = 25

// OverviewSnapshot is one user's cross-role view of the platform. Exactly one
// role triple is populated, matching the user's type; notifications and
// system messages are shared across roles. A section that failed to load is
// nil and named in FailedSections.
type OverviewSnapshot struct {
	UserID      uuid.UUID     `json:"user_id"`
	Role        enum.UserType `json:"role"`
	RefreshedAt time.Time     `json:"refreshed_at"`

	// Customer sections
	CustomerProfile *entity.User           `json:"customer_profile,omitempty"`
	CustomerJobs    []entity.Job           `json:"customer_jobs,omitempty"`
	CustomerTickets []entity.SupportTicket `json:"customer_tickets,omitempty"`

	// Provider sections
	ProviderProfile *entity.ProviderProfile `json:"provider_profile,omitempty"`
	ProviderJobs    []entity.Job            `json:"provider_jobs,omitempty"`
	Earnings        *Earnings               `json:"earnings,omitempty"`

	// Admin sections
	PlatformStats *PlatformStats `json:"platform_stats,omitempty"`
	SystemMetrics *SystemMetrics `json:"system_metrics,omitempty"`
	AllUsers      []entity.User  `json:"all_users,omitempty"`

	// Shared sections
	Notifications  []entity.Notification  `json:"notifications,omitempty"`
	SystemMessages []entity.SystemMessage `json:"system_messages,omitempty"`

	FailedSections []string `json:"failed_sections,omitempty"`

	// generation orders competing refreshes; a stale in-flight refresh must
	// not overwrite a newer snapshot.
	generation uint64
}

// BridgeService aggregates per-role data into one overview snapshot per user
// and applies cross-role mutations against the cached snapshots.
type BridgeService struct {
	userRepo            repository.UserRepository
	profileRepo         repository.ProviderProfileRepository
	jobRepo             repository.JobRepository
	ticketRepo          repository.TicketRepository
	notificationRepo    repository.NotificationRepository
	systemMessageRepo   repository.SystemMessageRepository
	providerService     *ProviderService
	dashboardService    *DashboardService
	notificationService *NotificationService
	ticketService       *TicketService
	jobService          *JobService
	logger              *zap.Logger

	mu         sync.Mutex
	snapshots  map[uuid.UUID]*OverviewSnapshot
	generation uint64
}

// NewBridgeService creates a new bridge service
func NewBridgeService(
	userRepo repository.UserRepository,
	profileRepo repository.ProviderProfileRepository,
	jobRepo repository.JobRepository,
	ticketRepo repository.TicketRepository,
	notificationRepo repository.NotificationRepository,
	systemMessageRepo repository.SystemMessageRepository,
	providerService *ProviderService,
	dashboardService *DashboardService,
	notificationService *NotificationService,
	ticketService *TicketService,
	jobService *JobService,
	logger *zap.Logger,
) *BridgeService {
	return &BridgeService{
		userRepo:            userRepo,
		profileRepo:         profileRepo,
		jobRepo:             jobRepo,
		ticketRepo:          ticketRepo,
		notificationRepo:    notificationRepo,
		systemMessageRepo:   systemMessageRepo,
		providerService:     providerService,
		dashboardService:    dashboardService,
		notificationService: notificationService,
		ticketService:       ticketService,
		jobService:          jobService,
		logger:              logger,
		snapshots:           make(map[uuid.UUID]*OverviewSnapshot),
	}
}

// Snapshot returns the cached overview for a user. Users who have never
// refreshed have no snapshot. Installed snapshots are never mutated in
// place, so the returned value is safe to read without holding any lock.
func (s *BridgeService) Snapshot(userID uuid.UUID) (*OverviewSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, ok := s.snapshots[userID]
	if !ok {
		return nil, apperror.NewNotFoundError("Overview snapshot")
	}
	return snapshot, nil
}

// section is one concurrent load of the fan-out.
type section struct {
	name string
	load func(ctx context.Context) error
}

// Refresh rebuilds a user's overview snapshot. The role triple plus the two
// shared sections load concurrently; each failure is contained to its own
// section. The finished snapshot replaces the cached one unless a newer
// refresh already installed its result.
func (s *BridgeService) Refresh(ctx context.Context, userID uuid.UUID) (*OverviewSnapshot, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	snapshot := &OverviewSnapshot{
		UserID:     userID,
		Role:       user.UserType,
		generation: generation,
	}

	sections := s.roleSections(snapshot, userID)
	sections = append(sections,
		section{name: "notifications", load: func(ctx context.Context) error {
			notifications, err := s.notificationRepo.ListByUser(ctx, userID, overviewSectionLimit)
			if err != nil {
				return err
			}
			snapshot.Notifications = notifications
			return nil
		}},
		section{name: "system_messages", load: func(ctx context.Context) error {
			messages, err := s.systemMessageRepo.ListActive(ctx)
			if err != nil {
				return err
			}
			snapshot.SystemMessages = messages
			return nil
		}},
	)

	var (
		wg       sync.WaitGroup
		failedMu sync.Mutex
	)
	for _, sec := range sections {
		wg.Add(1)
		go func(sec section) {
			defer wg.Done()
			if err := sec.load(ctx); err != nil {
				s.logger.Warn("overview section failed",
					zap.String("section", sec.name),
					zap.String("user_id", userID.String()),
					zap.Error(err))
				failedMu.Lock()
				snapshot.FailedSections = append(snapshot.FailedSections, sec.name)
				failedMu.Unlock()
			}
		}(sec)
	}
	wg.Wait()

	snapshot.RefreshedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.snapshots[userID]; ok && current.generation > generation {
		// A newer refresh finished first; keep its result.
		return current, nil
	}
	s.snapshots[userID] = snapshot
	return snapshot, nil
}

// roleSections selects the three role-specific loads for the snapshot.
func (s *BridgeService) roleSections(snapshot *OverviewSnapshot, userID uuid.UUID) []section {
	switch snapshot.Role {
	case enum.UserTypeServiceProvider:
		return []section{
			{name: "provider_profile", load: func(ctx context.Context) error {
				profile, err := s.profileRepo.GetByUserID(ctx, userID)
				if err != nil {
					return err
				}
				if profile == nil {
					return apperror.NewNotFoundError("Provider profile")
				}
				snapshot.ProviderProfile = profile
				return nil
			}},
			{name: "provider_jobs", load: func(ctx context.Context) error {
				jobs, _, err := s.jobRepo.List(ctx, &repository.JobFilterParams{
					Pagination: &pagination.PaginationParams{Page: 1, PerPage: overviewSectionLimit},
					ProviderID: &userID,
				})
				if err != nil {
					return err
				}
				snapshot.ProviderJobs = jobs
				return nil
			}},
			{name: "earnings", load: func(ctx context.Context) error {
				earnings, err := s.providerService.GetEarnings(ctx, userID)
				if err != nil {
					return err
				}
				snapshot.Earnings = earnings
				return nil
			}},
		}
	case enum.UserTypeAdmin:
		return []section{
			{name: "platform_stats", load: func(ctx context.Context) error {
				stats, err := s.dashboardService.GetPlatformStats(ctx)
				if err != nil {
					return err
				}
				snapshot.PlatformStats = stats
				return nil
			}},
			{name: "system_metrics", load: func(ctx context.Context) error {
				metrics, err := s.dashboardService.GetSystemMetrics(ctx)
				if err != nil {
					return err
				}
				snapshot.SystemMetrics = metrics
				return nil
			}},
			{name: "all_users", load: func(ctx context.Context) error {
				users, _, err := s.userRepo.List(ctx, &pagination.PaginationParams{Page: 1, PerPage: overviewSectionLimit}, nil, "")
				if err != nil {
					return err
				}
				snapshot.AllUsers = users
				return nil
			}},
		}
	default:
		return []section{
			{name: "customer_profile", load: func(ctx context.Context) error {
				profile, err := s.userRepo.GetWithProfile(ctx, userID)
				if err != nil {
					return err
				}
				if profile == nil {
					return apperror.NewNotFoundError("User")
				}
				snapshot.CustomerProfile = profile
				return nil
			}},
			{name: "customer_jobs", load: func(ctx context.Context) error {
				jobs, _, err := s.jobRepo.List(ctx, &repository.JobFilterParams{
					Pagination: &pagination.PaginationParams{Page: 1, PerPage: overviewSectionLimit},
					CustomerID: &userID,
				})
				if err != nil {
					return err
				}
				snapshot.CustomerJobs = jobs
				return nil
			}},
			{name: "customer_tickets", load: func(ctx context.Context) error {
				tickets, _, err := s.ticketRepo.ListByUser(ctx, userID, &pagination.PaginationParams{Page: 1, PerPage: overviewSectionLimit})
				if err != nil {
					return err
				}
				snapshot.CustomerTickets = tickets
				return nil
			}},
		}
	}
}

// SendNotification delivers a notification on behalf of a user, then rebuilds
// the sender's snapshot. A failed send leaves the snapshot untouched.
func (s *BridgeService) SendNotification(ctx context.Context, callerID uuid.UUID, input *SendNotificationInput) (*OverviewSnapshot, error) {
	if _, err := s.notificationService.SendNotification(ctx, input); err != nil {
		return nil, err
	}
	return s.Refresh(ctx, callerID)
}

// CreateTicket opens a ticket and splices it into the caller's cached
// snapshot rather than refreshing everything.
func (s *BridgeService) CreateTicket(ctx context.Context, input *CreateTicketInput) (*entity.SupportTicket, error) {
	ticket, err := s.ticketService.CreateTicket(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if snapshot, ok := s.snapshots[input.UserID]; ok {
		// Installed snapshots are read outside the lock, so never mutate one
		// in place; splice into a copy and swap the map entry.
		next := *snapshot
		next.CustomerTickets = append([]entity.SupportTicket{*ticket}, snapshot.CustomerTickets...)
		s.snapshots[input.UserID] = &next
	}

	return ticket, nil
}

// UpdateJobStatus applies a job status change, then rebuilds the caller's
// snapshot. A failed update leaves the snapshot untouched.
func (s *BridgeService) UpdateJobStatus(ctx context.Context, input *UpdateStatusInput) (*entity.Job, error) {
	job, err := s.jobService.UpdateStatus(ctx, input)
	if err != nil {
		return nil, err
	}
	if _, err := s.Refresh(ctx, input.UpdatedBy); err != nil {
		s.logger.Warn("overview refresh after job status update failed",
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
	}
	return job, nil
}

// Invalidate drops a user's cached snapshot, e.g. on logout.
func (s *BridgeService) Invalidate(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, userID)
}
