package interfaces

import (
	"context"

	"parking_xpto/internal/domain/entities"
)

// IPenaltyRepository abstracts DynamoDB persistence for Penalty.

type IPenaltyRepository interface {
	Create(ctx context.Context, p entities.Penalty) (entities.Penalty, error)
	GetByID(ctx context.Context, id string) (entities.Penalty, error)
	ListByTicketID(ctx context.Context, ticketID string) ([]entities.Penalty, error)
	UpdateStatus(ctx context.Context, id string, status entities.PenaltyStatus) (entities.Penalty, error)
}
