package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
)

// FormatReceiptText renders a receipt as plain text, suitable for SMS
// delivery or console display.
func FormatReceiptText(r *entity.Receipt) string {
	var sb strings.Builder

	sb.WriteString("TECHGPT RECEIPT\n")
	sb.WriteString(fmt.Sprintf("Invoice: %s\n", r.InvoiceNumber))
	sb.WriteString(fmt.Sprintf("Date: %s %s\n", r.ServiceDate, r.ServiceTime))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Customer: %s\n", r.CustomerName))
	sb.WriteString(fmt.Sprintf("Technician: %s\n", r.ProviderName))
	sb.WriteString(fmt.Sprintf("Service type: %s\n", r.ServiceType.String()))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Service: %s\n", r.ServiceDetails.Category))
	sb.WriteString(fmt.Sprintf("Duration: %s\n", formatDuration(r.ServiceDetails.DurationMinutes)))
	sb.WriteString(fmt.Sprintf("Rate: %s\n", formatHourlyRate(r.ServiceDetails.HourlyRate)))
	sb.WriteString(fmt.Sprintf("Service fee: $%.2f\n", r.ServiceDetails.Total))
	sb.WriteString("\n")
	sb.WriteString("Hardware:\n")
	sb.WriteString(formatHardwareLines(r.HardwareItems))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Subtotal: $%.2f\n", r.Subtotal))
	sb.WriteString(fmt.Sprintf("GST (5%%): $%.2f\n", r.GST))
	sb.WriteString(fmt.Sprintf("TVQ (9.975%%): $%.2f\n", r.TVQ))
	sb.WriteString(fmt.Sprintf("TOTAL: $%.2f\n", r.Total))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Payment: %s (%s)\n", r.PaymentMethod, r.PaymentStatus.String()))
	sb.WriteString("Thank you for choosing TechGPT!\n")

	return sb.String()
}

// formatHardwareLines renders billed hardware items as newline-joined
// "<name> (<qty>x) - $<total>" lines. An empty list renders as exactly
// "No hardware items".
func formatHardwareLines(items []entity.ReceiptHardwareItem) string {
	if len(items) == 0 {
		return "No hardware items"
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s (%dx) - $%.2f", item.Name, item.Quantity, item.Total))
	}
	return strings.Join(lines, "\n")
}

func formatDuration(minutes int) string {
	if minutes <= 0 {
		return "N/A"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	rem := minutes % 60
	if rem == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dmin", hours, rem)
}

func formatHourlyRate(rate float64) string {
	if rate == 0 {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f/hr", rate)
}

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money":         func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"duration":      formatDuration,
	"hourlyRate":    formatHourlyRate,
	"hardwareLines": formatHardwareLines,
}).Parse(receiptTemplateHTML))

type receiptTemplateData struct {
	Receipt *entity.Receipt
}

// RenderReceiptHTML renders a receipt as a standalone HTML document for
// email delivery.
func RenderReceiptHTML(r *entity.Receipt) (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, receiptTemplateData{Receipt: r}); err != nil {
		return "", fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.String(), nil
}

const receiptTemplateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, sans-serif; color: #333; max-width: 640px; margin: 0 auto; }
  .header { background-color: #1a73e8; color: #fff; padding: 24px; text-align: center; }
  .section { padding: 16px 24px; }
  table { width: 100%; border-collapse: collapse; }
  th { text-align: left; border-bottom: 2px solid #ddd; padding: 8px; }
  td { border-bottom: 1px solid #eee; padding: 8px; }
  .amount { text-align: right; }
  .totals td { border: none; padding: 4px 8px; }
  .grand-total { font-size: 18px; font-weight: bold; border-top: 2px solid #333; }
  .footer { text-align: center; color: #888; font-size: 12px; padding: 16px; }
</style>
</head>
<body>
  <div class="header">
    <h1>TechGPT</h1>
    <p>Receipt {{.Receipt.InvoiceNumber}}</p>
  </div>
  <div class="section">
    <p><strong>Date:</strong> {{.Receipt.ServiceDate}} {{.Receipt.ServiceTime}}</p>
    <p><strong>Customer:</strong> {{.Receipt.CustomerName}}</p>
    <p><strong>Technician:</strong> {{.Receipt.ProviderName}}</p>
    <p><strong>Service type:</strong> {{.Receipt.ServiceType.String}}</p>
  </div>
  <div class="section">
    <table>
      <tr><th>Service</th><th>Duration</th><th>Rate</th><th class="amount">Amount</th></tr>
      <tr>
        <td>{{.Receipt.ServiceDetails.Category}}</td>
        <td>{{duration .Receipt.ServiceDetails.DurationMinutes}}</td>
        <td>{{hourlyRate .Receipt.ServiceDetails.HourlyRate}}</td>
        <td class="amount">${{money .Receipt.ServiceDetails.Total}}</td>
      </tr>
    </table>
  </div>
  <div class="section">
    <h3>Hardware</h3>
    {{if .Receipt.HardwareItems}}
    <table>
      <tr><th>Item</th><th>Qty</th><th>Unit price</th><th class="amount">Total</th></tr>
      {{range .Receipt.HardwareItems}}
      <tr>
        <td>{{.Name}}</td>
        <td>{{.Quantity}}</td>
        <td>${{money .UnitPrice}}</td>
        <td class="amount">${{money .Total}}</td>
      </tr>
      {{end}}
    </table>
    {{else}}
    <p>{{hardwareLines .Receipt.HardwareItems}}</p>
    {{end}}
  </div>
  <div class="section">
    <table class="totals">
      <tr><td>Subtotal</td><td class="amount">${{money .Receipt.Subtotal}}</td></tr>
      <tr><td>GST (5%)</td><td class="amount">${{money .Receipt.GST}}</td></tr>
      <tr><td>TVQ (9.975%)</td><td class="amount">${{money .Receipt.TVQ}}</td></tr>
      <tr class="grand-total"><td>Total</td><td class="amount">${{money .Receipt.Total}}</td></tr>
    </table>
    <p><strong>Payment:</strong> {{.Receipt.PaymentMethod}} ({{.Receipt.PaymentStatus.String}})</p>
  </div>
  <div class="footer">
    <p>Thank you for choosing TechGPT!</p>
  </div>
</body>
</html>`
