package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/techgpt/techgpt-api/internal/domain/entity"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/domain/repository"
	"github.com/techgpt/techgpt-api/pkg/apperror"
	"github.com/techgpt/techgpt-api/pkg/email"
	"github.com/techgpt/techgpt-api/pkg/quebectax"
	"github.com/techgpt/techgpt-api/pkg/sms"
	"github.com/techgpt/techgpt-api/pkg/utils"
)

// ReceiptService assembles receipts from completed jobs and delivers them.
// Receipts are never persisted; they are rebuilt from job data on every
// request.
type ReceiptService struct {
	jobRepo      repository.JobRepository
	emailService *email.EmailService
	smsGateway   sms.Gateway
	logger       *zap.Logger

	// now is swapped out in tests so invoice numbers are deterministic.
	now func() time.Time
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	jobRepo repository.JobRepository,
	emailService *email.EmailService,
	smsGateway sms.Gateway,
	logger *zap.Logger,
) *ReceiptService {
	return &ReceiptService{
		jobRepo:      jobRepo,
		emailService: emailService,
		smsGateway:   smsGateway,
		logger:       logger,
		now:          time.Now,
	}
}

// GenerateForJob builds the receipt for a completed job.
func (s *ReceiptService) GenerateForJob(ctx context.Context, jobID uuid.UUID) (*entity.Receipt, error) {
	job, err := s.jobRepo.GetWithItems(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job")
	}
	if job.Status != enum.JobStatusCompleted {
		return nil, apperror.ErrJobNotCompleted
	}

	return s.assemble(job), nil
}

// assemble turns a loaded job into a Receipt value object. Hardware item
// totals are carried over as billed; they are not recomputed from
// quantity x unit price.
func (s *ReceiptService) assemble(job *entity.Job) *entity.Receipt {
	serviceFee := job.GetServiceFeeDecimal()

	items := make([]entity.ReceiptHardwareItem, 0, len(job.HardwareItems))
	var hardwareTotal float64
	for _, item := range job.HardwareItems {
		lineTotal := float64(item.Total) / 100
		hardwareTotal += lineTotal

		receiptItem := entity.ReceiptHardwareItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Total:     lineTotal,
		}
		if item.Description != nil {
			receiptItem.Description = *item.Description
		}
		items = append(items, receiptItem)
	}

	subtotal := quebectax.Round2(serviceFee + hardwareTotal)
	taxes := quebectax.Calculate(subtotal)

	// Zero-duration jobs have no meaningful hourly rate; the renderers show
	// "N/A" when the rate is zero.
	var hourlyRate float64
	if job.DurationMinutes > 0 {
		hourlyRate = quebectax.Round2(serviceFee / (float64(job.DurationMinutes) / 60))
	}

	completedAt := s.now()
	if job.CompletedAt != nil {
		completedAt = *job.CompletedAt
	}

	description := ""
	if job.Description != nil {
		description = *job.Description
	}

	receipt := &entity.Receipt{
		JobID:         job.ID.String(),
		InvoiceNumber: utils.GenerateInvoiceNumber(s.now(), job.ID),
		ServiceDate:   completedAt.Format("2006-01-02"),
		ServiceTime:   completedAt.Format("15:04"),
		CustomerName:  job.Customer.FullName(),
		CustomerEmail: job.Customer.Email,
		ProviderName:  "TechGPT Support",
		ServiceType:   job.ServiceType,
		ServiceDetails: entity.ReceiptServiceDetail{
			Category:        job.Category,
			Description:     description,
			DurationMinutes: job.DurationMinutes,
			HourlyRate:      hourlyRate,
			Total:           serviceFee,
		},
		HardwareItems: items,
		Subtotal:      subtotal,
		GST:           taxes.GST,
		TVQ:           taxes.TVQ,
		Total:         taxes.Total,
		PaymentMethod: job.PaymentMethod,
		PaymentStatus: job.PaymentStatus,
		CompletedAt:   completedAt.Format(time.RFC3339),
	}

	if job.Customer.Phone != nil {
		receipt.CustomerPhone = *job.Customer.Phone
	}
	if job.Provider != nil {
		receipt.ProviderName = job.Provider.FullName()
		receipt.ProviderEmail = job.Provider.Email
	}

	return receipt
}

// DeliveryChannel selects how a receipt is sent to the customer.
type DeliveryChannel string

const (
	DeliveryChannelEmail DeliveryChannel = "email"
	DeliveryChannelSMS   DeliveryChannel = "sms"
)

// SendReceipt generates the receipt for a job and delivers it over the
// requested channel.
func (s *ReceiptService) SendReceipt(ctx context.Context, jobID uuid.UUID, channel DeliveryChannel) (*entity.Receipt, error) {
	receipt, err := s.GenerateForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	switch channel {
	case DeliveryChannelEmail:
		if receipt.CustomerEmail == "" {
			return nil, apperror.NewBadRequestError("Customer has no email address")
		}
		html, err := RenderReceiptHTML(receipt)
		if err != nil {
			return nil, err
		}
		if err := s.emailService.SendReceiptEmail(receipt.CustomerEmail, receipt.InvoiceNumber, html); err != nil {
			s.logger.Error("receipt email delivery failed",
				zap.String("job_id", receipt.JobID),
				zap.Error(err))
			return nil, apperror.NewAppError(502, "Failed to deliver receipt email")
		}
	case DeliveryChannelSMS:
		if receipt.CustomerPhone == "" {
			return nil, apperror.NewBadRequestError("Customer has no phone number")
		}
		if err := s.smsGateway.Send(receipt.CustomerPhone, FormatReceiptText(receipt)); err != nil {
			s.logger.Error("receipt sms delivery failed",
				zap.String("job_id", receipt.JobID),
				zap.Error(err))
			return nil, apperror.NewAppError(502, "Failed to deliver receipt SMS")
		}
	default:
		return nil, apperror.NewBadRequestError("Unknown delivery channel")
	}

	return receipt, nil
}
