package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/techgpt/techgpt-api/internal/application/service"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/presentation/http/dto/response"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

// AdminHandler handles admin dashboard HTTP requests
type AdminHandler struct {
	dashboardService *service.DashboardService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(dashboardService *service.DashboardService) *AdminHandler {
	return &AdminHandler{dashboardService: dashboardService}
}

// PlatformStats returns the admin dashboard aggregates
// @Summary Platform stats
// @Tags admin
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /admin/platform-stats [get]
func (h *AdminHandler) PlatformStats(c *gin.Context) {
	stats, err := h.dashboardService.GetPlatformStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Platform stats", gin.H{"stats": stats})
}

// SystemMetrics returns process health metrics
// @Summary System metrics
// @Tags admin
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /admin/system-metrics [get]
func (h *AdminHandler) SystemMetrics(c *gin.Context) {
	metrics, err := h.dashboardService.GetSystemMetrics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "System metrics", gin.H{"metrics": metrics})
}

// ListUsers returns the platform user listing
// @Summary List users
// @Tags admin
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Param user_type query string false "Type filter"
// @Param search query string false "Name or email search"
// @Success 200 {object} response.APIResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	var userType *enum.UserType
	if typeParam := c.Query("user_type"); typeParam != "" {
		parsed, ok := enum.ParseUserType(typeParam)
		if !ok {
			response.BadRequest(c, "Invalid user type filter")
			return
		}
		userType = &parsed
	}

	result, err := h.dashboardService.ListUsers(c.Request.Context(), &params, userType, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Users", result)
}
