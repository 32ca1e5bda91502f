package request

// UpdateProviderProfileRequest represents a technician profile update
type UpdateProviderProfileRequest struct {
	BusinessName  *string  `json:"business_name" binding:"omitempty,max=255"`
	Specialties   string   `json:"specialties"`
	Bio           *string  `json:"bio"`
	HourlyRate    *float64 `json:"hourly_rate" binding:"omitempty,min=0"`
	AcceptingJobs *bool    `json:"accepting_jobs"`
	ServiceArea   *string  `json:"service_area" binding:"omitempty,max=255"`
}
