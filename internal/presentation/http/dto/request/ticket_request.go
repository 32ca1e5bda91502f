package request

// CreateTicketRequest represents a ticket creation request
type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"max=255"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
}

// UpdateTicketRequest represents a ticket update request
type UpdateTicketRequest struct {
	Status     string  `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority   string  `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	AssignedTo *string `json:"assigned_to" binding:"omitempty,uuid"`
}
