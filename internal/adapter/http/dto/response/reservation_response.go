package response

import (
	"time"

	"parking_xpto/internal/domain/entities"
	"parking_xpto/internal/usecase"
)

type TicketResponse struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	UserID         string     `json:"user_id"`
	VehicleID      string     `json:"vehicle_id"`
	LotID          string     `json:"lot_id"`
	Type           string     `json:"type"`
	EntryTime      time.Time  `json:"entry_time"`
	ExitTime       *time.Time `json:"exit_time,omitempty"`
	DeclaredHours  float64    `json:"declared_hours,omitempty"`
	DeclaredDays   int        `json:"declared_days,omitempty"`
	EstimatedPrice float64    `json:"estimated_price"`
	Price          *float64   `json:"price,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromTicket(t entities.Ticket) TicketResponse {
	return TicketResponse{
		ID:             t.ID,
		Code:           t.Code,
		UserID:         t.UserID,
		VehicleID:      t.VehicleID,
		LotID:          t.LotID,
		Type:           string(t.Type),
		EntryTime:      t.EntryTime,
		ExitTime:       t.ExitTime,
		DeclaredHours:  t.DeclaredHours,
		DeclaredDays:   t.DeclaredDays,
		EstimatedPrice: t.EstimatedPrice,
		Price:          t.Price,
		Status:         string(t.Status),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

type UserSummaryResponse struct {
	UserID       string                              `json:"user_id"`
	TotalTickets int                                 `json:"total_tickets"`
	TotalSpent   float64                             `json:"total_spent"`
	ByStatus     map[string]usecase.UserSummaryGroup `json:"by_status"`
}

func FromUserSummary(s usecase.UserSummary) UserSummaryResponse {
	return UserSummaryResponse{
		UserID:       s.UserID,
		TotalTickets: s.TotalTickets,
		TotalSpent:   s.TotalSpent,
		ByStatus:     s.ByStatus,
	}
}
