package interfaces

import (
	"context"

	"parking_xpto/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.

type IVehicleRepository interface {
	GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error)
}
