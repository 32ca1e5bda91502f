package request

// SendNotificationRequest represents a notification send request
type SendNotificationRequest struct {
	Target   string  `json:"target" binding:"required,uuid"`
	Message  string  `json:"message" binding:"required"`
	SenderID *string `json:"sender_id" binding:"omitempty,uuid"`
	Kind     string  `json:"kind" binding:"omitempty,max=50"`
}

// BroadcastSystemMessageRequest represents a platform announcement request
type BroadcastSystemMessageRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Body     string `json:"body" binding:"required"`
	Severity string `json:"severity" binding:"omitempty,oneof=info warning critical"`
}
