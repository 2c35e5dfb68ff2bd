package interfaces

import (
	"context"

	"parking_xpto/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByTicketID(ctx context.Context, ticketID string) ([]entities.Payment, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error)
	// UpdateStatus records the gateway outcome on a pending payment
	// (transaction code on success, failure reason on decline) or the
	// refund transition. A zero-value Payment means the payment is
	// missing.
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, transactionCode, reason string) (entities.Payment, error)
}
