package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

// TicketRepository defines the interface for support ticket data operations
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error)
	Update(ctx context.Context, ticket *entity.SupportTicket) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByUser returns tickets raised by one user.
	ListByUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.SupportTicket, int64, error)
	// List returns tickets across all users, optionally filtered by status.
	List(ctx context.Context, params *pagination.PaginationParams, status *enum.TicketStatus) ([]entity.SupportTicket, int64, error)
	CountByStatus(ctx context.Context, status enum.TicketStatus) (int64, error)
}
