package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/techgpt/techgpt-api/internal/application/service"
	"github.com/techgpt/techgpt-api/internal/presentation/http/dto/response"
)

// OverviewHandler exposes the cross-role overview snapshot
type OverviewHandler struct {
	bridgeService *service.BridgeService
}

// NewOverviewHandler creates a new overview handler
func NewOverviewHandler(bridgeService *service.BridgeService) *OverviewHandler {
	return &OverviewHandler{bridgeService: bridgeService}
}

// Get returns the caller's cached overview snapshot. Callers who have never
// refreshed get a 404; they should POST /overview/refresh first.
// @Summary Get overview
// @Tags overview
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /overview [get]
func (h *OverviewHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	snapshot, err := h.bridgeService.Snapshot(*userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Overview", gin.H{"overview": snapshot})
}

// Refresh rebuilds the caller's overview snapshot
// @Summary Refresh overview
// @Tags overview
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /overview/refresh [post]
func (h *OverviewHandler) Refresh(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	snapshot, err := h.bridgeService.Refresh(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Overview refreshed", gin.H{"overview": snapshot})
}
