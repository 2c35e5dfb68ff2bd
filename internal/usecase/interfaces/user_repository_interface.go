package interfaces

import (
	"context"

	"parking_xpto/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
}
