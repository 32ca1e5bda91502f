package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/techgpt/techgpt-api/internal/application/service"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/presentation/http/dto/response"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

// CustomerHandler handles customer-facing HTTP requests
type CustomerHandler struct {
	authService   *service.AuthService
	jobService    *service.JobService
	ticketService *service.TicketService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(authService *service.AuthService, jobService *service.JobService, ticketService *service.TicketService) *CustomerHandler {
	return &CustomerHandler{
		authService:   authService,
		jobService:    jobService,
		ticketService: ticketService,
	}
}

// GetProfile returns the caller's account with profile relations
// @Summary Customer profile
// @Tags customer
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /customer/profile [get]
func (h *CustomerHandler) GetProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile", gin.H{"profile": user})
}

// ListJobs returns the caller's jobs
// @Summary Customer jobs
// @Tags customer
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Param status query string false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /customer/jobs [get]
func (h *CustomerHandler) ListJobs(c *gin.Context) {
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

	input := &service.ListJobsInput{
		Pagination: &params,
		CustomerID: userID,
	}
	if statusParam := c.Query("status"); statusParam != "" {
		status, ok := enum.ParseJobStatus(statusParam)
		if !ok {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		input.Status = &status
	}

	result, err := h.jobService.ListJobs(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Jobs", result)
}

// ListTickets returns the caller's support tickets
// @Summary Customer tickets
// @Tags customer
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} response.APIResponse
// @Router /customer/tickets [get]
func (h *CustomerHandler) ListTickets(c *gin.Context) {
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

	result, err := h.ticketService.ListUserTickets(c.Request.Context(), *userID, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tickets", result)
}
