package interfaces

import (
	"context"
	"time"

	"parking_xpto/internal/domain/entities"
)

// ITicketRepository abstracts DynamoDB persistence for Ticket.
//
// State transitions are conditional writes: Finalize, Cancel and
// MarkPaid only apply when the ticket is still in the expected status
// and return a zero-value Ticket when the condition fails, so the
// state machine holds under concurrent requests.

type ITicketRepository interface {
	Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	GetByCode(ctx context.Context, code string) (entities.Ticket, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Ticket, error)
	// HasActiveForVehicleLot reports whether the vehicle already has an
	// active ticket on the lot (duplicate-reservation policy).
	HasActiveForVehicleLot(ctx context.Context, vehicleID, lotID string) (bool, error)
	// Finalize moves active -> finalized recording exit time and price.
	Finalize(ctx context.Context, id string, exitTime time.Time, price float64) (entities.Ticket, error)
	// Cancel moves active -> cancelled recording exit time.
	Cancel(ctx context.Context, id string, exitTime time.Time) (entities.Ticket, error)
	// MarkPaid moves active|finalized -> paid setting the final price.
	// The conditional write is the at-most-one-successful-payment guard.
	MarkPaid(ctx context.Context, id string, price float64) (entities.Ticket, error)
}
