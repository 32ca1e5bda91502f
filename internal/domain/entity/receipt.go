package entity

import (
	"github.com/techgpt/techgpt-api/internal/domain/enum"
)

// ReceiptServiceDetail is the labor portion of a receipt.
type ReceiptServiceDetail struct {
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	HourlyRate      float64 `json:"hourly_rate"`
	Total           float64 `json:"total"`
}

// ReceiptHardwareItem is a single hardware line item on a receipt.
type ReceiptHardwareItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Receipt is a value object representing one completed service transaction.
// It is NOT a database entity - it is assembled on demand from job data,
// rendered, and discarded. Amounts are decimal dollars; GST and TVQ are each
// rounded independently, so the stored total can differ by a cent from the
// sum of the rounded parts.
type Receipt struct {
	JobID          string                `json:"job_id"`
	InvoiceNumber  string                `json:"invoice_number"`
	ServiceDate    string                `json:"service_date"`
	ServiceTime    string                `json:"service_time"`
	CustomerName   string                `json:"customer_name"`
	CustomerEmail  string                `json:"customer_email,omitempty"`
	CustomerPhone  string                `json:"customer_phone,omitempty"`
	ProviderName   string                `json:"provider_name"`
	ProviderEmail  string                `json:"provider_email,omitempty"`
	ServiceType    enum.ServiceType      `json:"service_type"`
	ServiceDetails ReceiptServiceDetail  `json:"service_details"`
	HardwareItems  []ReceiptHardwareItem `json:"hardware_items"`
	Subtotal       float64               `json:"subtotal"`
	GST            float64               `json:"gst"`
	TVQ            float64               `json:"tvq"`
	Total          float64               `json:"total"`
	PaymentMethod  string                `json:"payment_method"`
	PaymentStatus  enum.PaymentStatus    `json:"payment_status"`
	CompletedAt    string                `json:"completed_at"`
}
