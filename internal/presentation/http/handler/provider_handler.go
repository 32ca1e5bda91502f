package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/techgpt/techgpt-api/internal/application/service"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/presentation/http/dto/request"
	"github.com/techgpt/techgpt-api/internal/presentation/http/dto/response"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

// ProviderHandler handles technician-facing HTTP requests
type ProviderHandler struct {
	providerService *service.ProviderService
	jobService      *service.JobService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(providerService *service.ProviderService, jobService *service.JobService) *ProviderHandler {
	return &ProviderHandler{
		providerService: providerService,
		jobService:      jobService,
	}
}

// GetProfile returns the caller's technician profile
// @Summary Get provider profile
// @Tags service-provider
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /service-provider/profile [get]
func (h *ProviderHandler) GetProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	profile, err := h.providerService.GetProfile(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Provider profile", gin.H{"profile": profile})
}

// UpdateProfile updates the caller's technician profile
// @Summary Update provider profile
// @Tags service-provider
// @Accept json
// @Produce json
// @Param request body request.UpdateProviderProfileRequest true "Profile fields"
// @Success 200 {object} response.APIResponse
// @Router /service-provider/profile [put]
func (h *ProviderHandler) UpdateProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.UpdateProviderProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.providerService.UpdateProfile(c.Request.Context(), &service.UpdateProviderProfileInput{
		UserID:        *userID,
		BusinessName:  req.BusinessName,
		Specialties:   req.Specialties,
		Bio:           req.Bio,
		HourlyRate:    req.HourlyRate,
		AcceptingJobs: req.AcceptingJobs,
		ServiceArea:   req.ServiceArea,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated", gin.H{"profile": profile})
}

// ListJobs returns jobs assigned to the caller
// @Summary List provider jobs
// @Tags service-provider
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Param status query string false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /service-provider/jobs [get]
func (h *ProviderHandler) ListJobs(c *gin.Context) {
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
		ProviderID: userID,
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

// GetEarnings returns the caller's earnings summary
// @Summary Provider earnings
// @Tags service-provider
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /service-provider/earnings [get]
func (h *ProviderHandler) GetEarnings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	earnings, err := h.providerService.GetEarnings(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Earnings", gin.H{"earnings": earnings})
}

// ListAvailable returns verified providers accepting jobs
// @Summary List available providers
// @Tags service-provider
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Param specialty query string false "Specialty filter"
// @Success 200 {object} response.APIResponse
// @Router /providers [get]
func (h *ProviderHandler) ListAvailable(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.providerService.ListAvailableProviders(c.Request.Context(), &params, c.Query("specialty"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Providers", result)
}
