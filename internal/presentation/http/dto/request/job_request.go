package request

import "time"

// CreateJobRequest represents a job creation request
type CreateJobRequest struct {
	Title       string     `json:"title" binding:"required,min=3,max=255"`
	Description *string    `json:"description"`
	Category    string     `json:"category" binding:"required,max=255"`
	ServiceType string     `json:"service_type" binding:"required,oneof=onsite remote phone"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// AssignProviderRequest represents a provider assignment request
type AssignProviderRequest struct {
	ProviderID string `json:"provider_id" binding:"required,uuid"`
}

// UpdateJobStatusRequest carries a status change and who requested it.
type UpdateJobStatusRequest struct {
	Status      string `json:"status" binding:"required,oneof=requested scheduled in_progress completed cancelled"`
	UpdatedBy   string `json:"updated_by" binding:"required,uuid"`
	UpdatedRole string `json:"updated_role" binding:"required,oneof=customer service_provider admin"`
}

// HardwareItemRequest is one billed hardware line item
type HardwareItemRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	Quantity    int     `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice   float64 `json:"unit_price" binding:"min=0"`
	Total       float64 `json:"total" binding:"min=0"`
}

// CompleteJobRequest represents a job completion request
type CompleteJobRequest struct {
	ServiceFee      float64               `json:"service_fee" binding:"min=0"`
	DurationMinutes int                   `json:"duration_minutes" binding:"min=0"`
	PaymentMethod   string                `json:"payment_method" binding:"required,max=50"`
	PaymentStatus   string                `json:"payment_status" binding:"omitempty,oneof=paid pending failed"`
	HardwareItems   []HardwareItemRequest `json:"hardware_items"`
}

// SendReceiptRequest selects the receipt delivery channel
type SendReceiptRequest struct {
	Channel string `json:"channel" binding:"required,oneof=email sms"`
}
