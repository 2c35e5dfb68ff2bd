package interfaces

import (
	"context"

	"parking_xpto/internal/domain/entities"
)

// ILotRepository abstracts DynamoDB persistence for Lot.
//
// AdjustAvailableSpaces is the only way to move the available counter:
// a single atomic add with a bounds condition, so the counter never
// leaves [0, total_spaces]. A zero-value Lot means the adjustment was
// rejected (missing lot or bounds violation).

type ILotRepository interface {
	GetByID(ctx context.Context, id string) (entities.Lot, error)
	AdjustAvailableSpaces(ctx context.Context, id string, delta int) (entities.Lot, error)
	IncrementReservationCount(ctx context.Context, id string) (entities.Lot, error)
}
