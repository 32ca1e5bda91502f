package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateInvoiceNumber derives a receipt invoice number from the wall clock
// and the job identifier. Uniqueness holds as long as the same job is not
// receipted twice within the same millisecond, which human-triggered receipt
// generation does not do.
func GenerateInvoiceNumber(now time.Time, jobID uuid.UUID) string {
	return fmt.Sprintf("INV-%d-%s", now.UnixMilli(), strings.ToUpper(jobID.String()[:8]))
}

// FormatMoney keeps consistent two-decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
