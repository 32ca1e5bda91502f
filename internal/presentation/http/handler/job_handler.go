package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/techgpt/techgpt-api/internal/application/service"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/presentation/http/dto/request"
	"github.com/techgpt/techgpt-api/internal/presentation/http/dto/response"
	"github.com/techgpt/techgpt-api/pkg/apperror"
	"github.com/techgpt/techgpt-api/pkg/pagination"
)

// parseStatusUpdate validates the status payload against the authenticated
// caller; the declared updater must be the caller itself.
func parseStatusUpdate(c *gin.Context, jobID uuid.UUID, req *request.UpdateJobStatusRequest) (*service.UpdateStatusInput, error) {
	status, ok := enum.ParseJobStatus(req.Status)
	if !ok {
		return nil, apperror.NewBadRequestError("Invalid status")
	}

	updatedBy, err := uuid.Parse(req.UpdatedBy)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid updated_by")
	}

	updatedRole, ok := enum.ParseUserType(req.UpdatedRole)
	if !ok {
		return nil, apperror.NewBadRequestError("Invalid updated_role")
	}

	if userID := GetUserID(c); userID == nil || *userID != updatedBy {
		return nil, apperror.ErrForbidden
	}
	if userType, exists := GetUserType(c); !exists || userType != updatedRole {
		return nil, apperror.ErrRoleMismatch
	}

	return &service.UpdateStatusInput{
		JobID:       jobID,
		Status:      status,
		UpdatedBy:   updatedBy,
		UpdatedRole: updatedRole,
	}, nil
}

// JobHandler handles service job HTTP requests
type JobHandler struct {
	jobService     *service.JobService
	receiptService *service.ReceiptService
	bridgeService  *service.BridgeService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *service.JobService, receiptService *service.ReceiptService, bridgeService *service.BridgeService) *JobHandler {
	return &JobHandler{
		jobService:     jobService,
		receiptService: receiptService,
		bridgeService:  bridgeService,
	}
}

// Create handles job creation
// @Summary Create job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body request.CreateJobRequest true "Job data"
// @Success 201 {object} response.APIResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	serviceType, ok := enum.ParseServiceType(req.ServiceType)
	if !ok {
		response.BadRequest(c, "Invalid service type")
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), &service.CreateJobInput{
		CustomerID:  *userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ServiceType: serviceType,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Job created", gin.H{"job": job})
}

// Get returns one job
// @Summary Get job
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.APIResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Non-admins only see jobs they are party to.
	userID := GetUserID(c)
	if userID != nil && !IsAdmin(c) {
		isParty := job.CustomerID == *userID ||
			(job.ProviderID != nil && *job.ProviderID == *userID)
		if !isParty {
			response.Forbidden(c, "Access denied")
			return
		}
	}

	response.OK(c, "Job", gin.H{"job": job})
}

// List returns jobs scoped to the caller's role
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Param status query string false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
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

	input := &service.ListJobsInput{Pagination: &params}

	if statusParam := c.Query("status"); statusParam != "" {
		status, ok := enum.ParseJobStatus(statusParam)
		if !ok {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		input.Status = &status
	}

	userType, _ := GetUserType(c)
	switch userType {
	case enum.UserTypeCustomer:
		input.CustomerID = userID
	case enum.UserTypeServiceProvider:
		input.ProviderID = userID
	case enum.UserTypeAdmin:
		// admins see everything
	}

	result, err := h.jobService.ListJobs(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Jobs", result)
}

// AssignProvider assigns a technician to a requested job
// @Summary Assign provider
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body request.AssignProviderRequest true "Provider"
// @Success 200 {object} response.APIResponse
// @Router /jobs/{id}/assign [post]
func (h *JobHandler) AssignProvider(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	var req request.AssignProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	providerID, err := uuid.Parse(req.ProviderID)
	if err != nil {
		response.BadRequest(c, "Invalid provider ID")
		return
	}

	job, err := h.jobService.AssignProvider(c.Request.Context(), &service.AssignProviderInput{
		JobID:      jobID,
		ProviderID: providerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Provider assigned", gin.H{"job": job})
}

// UpdateStatus moves a job through its lifecycle
// @Summary Update job status
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body request.UpdateJobStatusRequest true "Status change"
// @Success 200 {object} response.APIResponse
// @Router /jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	var req request.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := parseStatusUpdate(c, jobID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Route through the bridge so the caller's cached overview is rebuilt.
	job, err := h.bridgeService.UpdateJobStatus(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Status updated", gin.H{"job": job})
}

// Complete finishes a job with billed amounts and hardware items
// @Summary Complete job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body request.CompleteJobRequest true "Completion data"
// @Success 200 {object} response.APIResponse
// @Router /jobs/{id}/complete [post]
func (h *JobHandler) Complete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	var req request.CompleteJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	paymentStatus := enum.PaymentStatusPending
	if req.PaymentStatus != "" {
		if parsed, ok := enum.ParsePaymentStatus(req.PaymentStatus); ok {
			paymentStatus = parsed
		}
	}

	items := make([]service.HardwareItemInput, 0, len(req.HardwareItems))
	for _, item := range req.HardwareItems {
		items = append(items, service.HardwareItemInput{
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	job, err := h.jobService.CompleteJob(c.Request.Context(), &service.CompleteJobInput{
		JobID:           jobID,
		ProviderID:      *userID,
		ServiceFee:      req.ServiceFee,
		DurationMinutes: req.DurationMinutes,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   paymentStatus,
		HardwareItems:   items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job completed", gin.H{"job": job})
}

// GetReceipt returns the receipt for a completed job
// @Summary Get receipt
// @Tags receipts
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.APIResponse
// @Router /jobs/{id}/receipt [get]
func (h *JobHandler) GetReceipt(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	receipt, err := h.receiptService.GenerateForJob(c.Request.Context(), jobID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt", gin.H{"receipt": receipt})
}

// GetReceiptText returns the plain-text rendering of a receipt
// @Summary Get receipt text
// @Tags receipts
// @Produce plain
// @Param id path string true "Job ID"
// @Success 200 {string} string
// @Router /jobs/{id}/receipt/text [get]
func (h *JobHandler) GetReceiptText(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	receipt, err := h.receiptService.GenerateForJob(c.Request.Context(), jobID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.String(200, service.FormatReceiptText(receipt))
}

// SendReceipt delivers the receipt over email or SMS
// @Summary Send receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body request.SendReceiptRequest true "Delivery channel"
// @Success 200 {object} response.APIResponse
// @Router /jobs/{id}/receipt/send [post]
func (h *JobHandler) SendReceipt(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job ID")
		return
	}

	var req request.SendReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.SendReceipt(c.Request.Context(), jobID, service.DeliveryChannel(req.Channel))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent", gin.H{"receipt": receipt})
}
