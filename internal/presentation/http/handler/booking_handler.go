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

// BookingHandler handles support session booking HTTP requests
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create reserves a support session slot
// @Summary Create booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body request.CreateBookingRequest true "Booking data"
// @Success 201 {object} response.APIResponse
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	serviceType, ok := enum.ParseServiceType(req.ServiceType)
	if !ok {
		response.BadRequest(c, "Invalid service type")
		return
	}

	input := &service.CreateBookingInput{
		CustomerID:  *userID,
		ServiceType: serviceType,
		Topic:       req.Topic,
		Notes:       req.Notes,
		PhoneNumber: req.PhoneNumber,
		ScheduledAt: req.ScheduledAt,
	}

	if req.ProviderID != nil {
		providerID, err := uuid.Parse(*req.ProviderID)
		if err != nil {
			response.BadRequest(c, "Invalid provider ID")
			return
		}
		input.ProviderID = &providerID
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Booking created", gin.H{"booking": booking})
}

// List returns the caller's bookings
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} response.APIResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
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

	userType, _ := GetUserType(c)
	if userType == enum.UserTypeServiceProvider {
		res, err := h.bookingService.ListProviderBookings(c.Request.Context(), *userID, &params)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.SuccessWithPagination(c, 200, "Bookings", res)
		return
	}

	res, err := h.bookingService.ListCustomerBookings(c.Request.Context(), *userID, &params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Bookings", res)
}

// UpdateStatus moves a booking through its lifecycle
// @Summary Update booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body request.UpdateBookingStatusRequest true "Status change"
// @Success 200 {object} response.APIResponse
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, ok := enum.ParseBookingStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid status")
		return
	}

	userType, _ := GetUserType(c)
	booking, err := h.bookingService.UpdateBookingStatus(c.Request.Context(), &service.UpdateBookingStatusInput{
		BookingID:  bookingID,
		Status:     status,
		CallerID:   *userID,
		CallerType: userType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Booking updated", gin.H{"booking": booking})
}
