package request

import (
	"strings"

	"parking_xpto/internal/domain/entities"
	"parking_xpto/internal/usecase"
)

// ReservationCreateRequest is the payload for ticket creation.
//
// `declared_hours` applies to hourly reservations and `declared_days` to
// monthly ones; both feed the non-binding estimate only.
type ReservationCreateRequest struct {
	UserID        string  `json:"user_id" binding:"required"`
	LicensePlate  string  `json:"license_plate" binding:"required"`
	LotID         string  `json:"lot_id" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	DeclaredHours float64 `json:"declared_hours"`
	DeclaredDays  int     `json:"declared_days"`
}

func (r ReservationCreateRequest) ToCommand() usecase.CreateReservationRequest {
	return usecase.CreateReservationRequest{
		UserID:        strings.TrimSpace(r.UserID),
		LicensePlate:  strings.ToUpper(strings.TrimSpace(r.LicensePlate)),
		LotID:         strings.TrimSpace(r.LotID),
		Type:          entities.ReservationType(strings.ToLower(strings.TrimSpace(r.Type))),
		DeclaredHours: r.DeclaredHours,
		DeclaredDays:  r.DeclaredDays,
	}
}

// ReservationFinalizeRequest optionally overrides the computed amount
// (attendant adjustment). A nil amount means bill by elapsed time.
type ReservationFinalizeRequest struct {
	Amount *float64 `json:"amount"`
}

type ReservationCancelRequest struct {
	Reason string `json:"reason"`
}
