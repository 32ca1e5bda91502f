package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	domainRepo "github.com/techgpt/techgpt-api/internal/domain/repository"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new support ticket repository
func NewTicketRepository(db *gorm.DB) domainRepo.TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error) {
	var ticket entity.SupportTicket
	err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ticket, err
}

func (r *ticketRepository) Update(ctx context.Context, ticket *entity.SupportTicket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *ticketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SupportTicket{}, "id = ?", id).Error
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.SupportTicket, int64, error) {
	var tickets []entity.SupportTicket
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SupportTicket{}).
		Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&tickets).Error

	return tickets, total, err
}

func (r *ticketRepository) List(ctx context.Context, params *pagination.PaginationParams, status *enum.TicketStatus) ([]entity.SupportTicket, int64, error) {
	var tickets []entity.SupportTicket
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SupportTicket{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&tickets).Error

	return tickets, total, err
}

func (r *ticketRepository) CountByStatus(ctx context.Context, status enum.TicketStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.SupportTicket{}).
		Where("status = ?", status).Count(&total).Error
	return total, err
}
