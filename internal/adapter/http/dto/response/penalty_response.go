package response

import (
	"time"

	"parking_xpto/internal/domain/entities"
)

type PenaltyResponse struct {
	ID          string    `json:"id"`
	TicketID    string    `json:"ticket_id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromPenalty(p entities.Penalty) PenaltyResponse {
	return PenaltyResponse{
		ID:          p.ID,
		TicketID:    p.TicketID,
		UserID:      p.UserID,
		Type:        string(p.Type),
		Amount:      p.Amount,
		Status:      string(p.Status),
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}
