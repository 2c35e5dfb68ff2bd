package entities

import "time"

// PenaltyStatus tracks whether a penalty still counts towards the
// amount owed on a ticket. Active penalties are folded into the next
// successful payment and marked paid by the payment processor.

type PenaltyStatus string

const (
	PenaltyStatusActive    PenaltyStatus = "active"
	PenaltyStatusPaid      PenaltyStatus = "paid"
	PenaltyStatusCancelled PenaltyStatus = "cancelled"
)

// PenaltyType classifies the rule violation.

type PenaltyType string

const (
	PenaltyTypeTimeExceeded   PenaltyType = "time_exceeded"
	PenaltyTypePropertyDamage PenaltyType = "property_damage"
	PenaltyTypeMisParking     PenaltyType = "mis_parking"
)

// Penalty is a supplementary charge attached to a ticket.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (ticket_id-index): ticket_id
//
// Assessment produces the descriptor; persisting it is the caller's
// responsibility (the assessor itself never writes).
type Penalty struct {
	ID          string        `json:"id"`
	TicketID    string        `json:"ticket_id"`
	UserID      string        `json:"user_id"`
	Type        PenaltyType   `json:"type"`
	Amount      float64       `json:"amount"`
	Status      PenaltyStatus `json:"status"`
	Description string        `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
