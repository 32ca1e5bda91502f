package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/domain/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

// TicketService handles support ticket operations
type TicketService struct {
	ticketRepo repository.TicketRepository
	userRepo   repository.UserRepository
}

// NewTicketService creates a new ticket service
func NewTicketService(ticketRepo repository.TicketRepository, userRepo repository.UserRepository) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
	}
}

// CreateTicketInput represents the ticket creation input
type CreateTicketInput struct {
	UserID      uuid.UUID
	Subject     string
	Description string
	Category    string
	Priority    string
}

// CreateTicket opens a new support ticket
func (s *TicketService) CreateTicket(ctx context.Context, input *CreateTicketInput) (*entity.SupportTicket, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	priority := input.Priority
	if priority == "" {
		priority = "normal"
	}

	ticket := &entity.SupportTicket{
		UserID:      input.UserID,
		Subject:     input.Subject,
		Description: input.Description,
		Category:    input.Category,
		Priority:    priority,
		Status:      enum.TicketStatusOpen,
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

// GetTicket returns a ticket, restricted to its owner unless the caller is
// an admin
func (s *TicketService) GetTicket(ctx context.Context, id, callerID uuid.UUID, callerType enum.UserType) (*entity.SupportTicket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Ticket")
	}
	if ticket.UserID != callerID && callerType != enum.UserTypeAdmin {
		return nil, apperror.ErrForbidden
	}
	return ticket, nil
}

// ListUserTickets returns tickets raised by one user
func (s *TicketService) ListUserTickets(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.SupportTicket], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	tickets, total, err := s.ticketRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(tickets, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListAllTickets returns tickets across all users, for admins
func (s *TicketService) ListAllTickets(ctx context.Context, params *pagination.PaginationParams, status *enum.TicketStatus) (*pagination.PaginatedResult[entity.SupportTicket], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	tickets, total, err := s.ticketRepo.List(ctx, params, status)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(tickets, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateTicketInput represents the ticket update input
type UpdateTicketInput struct {
	TicketID   uuid.UUID
	Status     *enum.TicketStatus
	Priority   string
	AssignedTo *uuid.UUID
}

// UpdateTicket changes a ticket's status, priority or assignee
func (s *TicketService) UpdateTicket(ctx context.Context, input *UpdateTicketInput) (*entity.SupportTicket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, input.TicketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Ticket")
	}

	if input.Status != nil {
		ticket.Status = *input.Status
		if *input.Status == enum.TicketStatusResolved && ticket.ResolvedAt == nil {
			now := time.Now()
			ticket.ResolvedAt = &now
		}
	}
	if input.Priority != "" {
		ticket.Priority = input.Priority
	}
	if input.AssignedTo != nil {
		ticket.AssignedTo = input.AssignedTo
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}
