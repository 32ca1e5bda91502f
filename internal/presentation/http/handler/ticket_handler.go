package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/techgpt/techgpt-api/internal/application/service"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/presentation/http/dto/request"
	"github.com/techgpt/techgpt-api/internal/presentation/http/dto/response"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

// TicketHandler handles support ticket HTTP requests
type TicketHandler struct {
	ticketService *service.TicketService
	bridgeService *service.BridgeService
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService *service.TicketService, bridgeService *service.BridgeService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
		bridgeService: bridgeService,
	}
}

// Create opens a support ticket. Creation runs through the bridge so the
// caller's cached overview picks up the new ticket.
// @Summary Create ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body request.CreateTicketRequest true "Ticket data"
// @Success 201 {object} response.APIResponse
// @Router /tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ticket, err := h.bridgeService.CreateTicket(c.Request.Context(), &service.CreateTicketInput{
		UserID:      *userID,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ticket created", gin.H{"ticket": ticket})
}

// Get returns one ticket
// @Summary Get ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.APIResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	userType, _ := GetUserType(c)
	ticket, err := h.ticketService.GetTicket(c.Request.Context(), ticketID, *userID, userType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket", gin.H{"ticket": ticket})
}

// List returns the caller's tickets, or all tickets for admins
// @Summary List tickets
// @Tags tickets
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Param status query string false "Status filter (admin only)"
// @Success 200 {object} response.APIResponse
// @Router /tickets [get]
func (h *TicketHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	if IsAdmin(c) {
		var status *enum.TicketStatus
		if statusParam := c.Query("status"); statusParam != "" {
			parsed, ok := enum.ParseTicketStatus(statusParam)
			if !ok {
				response.BadRequest(c, "Invalid status filter")
				return
			}
			status = &parsed
		}

		result, err := h.ticketService.ListAllTickets(c.Request.Context(), &params, status)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.SuccessWithPagination(c, 200, "Tickets", result)
		return
	}

	result, err := h.ticketService.ListUserTickets(c.Request.Context(), *userID, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tickets", result)
}

// Update changes a ticket's status, priority or assignee (admin only)
// @Summary Update ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param request body request.UpdateTicketRequest true "Ticket fields"
// @Success 200 {object} response.APIResponse
// @Router /tickets/{id} [patch]
func (h *TicketHandler) Update(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	var req request.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateTicketInput{
		TicketID: ticketID,
		Priority: req.Priority,
	}

	if req.Status != "" {
		status, ok := enum.ParseTicketStatus(req.Status)
		if !ok {
			response.BadRequest(c, "Invalid status")
			return
		}
		input.Status = &status
	}

	if req.AssignedTo != nil {
		assignedTo, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			response.BadRequest(c, "Invalid assignee ID")
			return
		}
		input.AssignedTo = &assignedTo
	}

	ticket, err := h.ticketService.UpdateTicket(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket updated", gin.H{"ticket": ticket})
}
