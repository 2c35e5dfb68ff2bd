package entities

import "time"

// TicketStatus represents the reservation lifecycle.
//
// Allowed transitions:
//   - active -> finalized (exit + billing)
//   - active -> cancelled
//   - active/finalized -> paid (payment success)
//
// Nothing leaves paid or cancelled.

type TicketStatus string

const (
	TicketStatusActive    TicketStatus = "active"
	TicketStatusFinalized TicketStatus = "finalized"
	TicketStatusPaid      TicketStatus = "paid"
	TicketStatusCancelled TicketStatus = "cancelled"
)

// ReservationType selects the tariff applied at finalize time.

type ReservationType string

const (
	ReservationTypeHourly  ReservationType = "hourly"
	ReservationTypeMonthly ReservationType = "monthly"
)

// Ticket is a single parking stay persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - GSI2 (code-index): code
//
// Monetary representation:
//   - EstimatedPrice is the non-binding quote computed at creation.
//   - Price is set at finalize time (nil while the stay is open) and
//     updated to the total charged when a payment succeeds.
type Ticket struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	UserID          string          `json:"user_id"`
	VehicleID       string          `json:"vehicle_id"`
	LotID           string          `json:"lot_id"`
	Type            ReservationType `json:"type"`
	EntryTime       time.Time       `json:"entry_time"`
	ExitTime        *time.Time      `json:"exit_time,omitempty"`
	DeclaredHours   float64         `json:"declared_hours,omitempty"`
	DeclaredDays    int             `json:"declared_days,omitempty"`
	EstimatedPrice  float64         `json:"estimated_price"`
	Price           *float64        `json:"price,omitempty"`
	Status          TicketStatus    `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
