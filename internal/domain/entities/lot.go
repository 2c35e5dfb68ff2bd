package entities

import "time"

type LotStatus string

const (
	LotStatusActive   LotStatus = "active"
	LotStatusInactive LotStatus = "inactive"
)

// Lot is a parking facility with a fixed space inventory.
//
// Storage model (DynamoDB):
//   - PK: id
//
// AvailableSpaces is a shared counter; it must only move through the
// repository's atomic adjust operation so it never leaves
// [0, TotalSpaces] under concurrent finalize/cancel/create.
type Lot struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	TotalSpaces      int       `json:"total_spaces"`
	AvailableSpaces  int       `json:"available_spaces"`
	HourlyRate       float64   `json:"hourly_rate"`
	MonthlyRate      float64   `json:"monthly_rate"`
	ReservationCount int       `json:"reservation_count"`
	Status           LotStatus `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
