package response

import (
	"time"

	"parking_xpto/internal/domain/entities"
)

type PaymentResponse struct {
	ID              string    `json:"id"`
	TicketID        string    `json:"ticket_id"`
	UserID          string    `json:"user_id"`
	Amount          float64   `json:"amount"`
	Method          string    `json:"method"`
	Status          string    `json:"status"`
	TransactionCode string    `json:"transaction_code,omitempty"`
	CardMasked      string    `json:"card_masked,omitempty"`
	CardBrand       string    `json:"card_brand,omitempty"`
	FailureReason   string    `json:"failure_reason,omitempty"`
	RefundReason    string    `json:"refund_reason,omitempty"`
	Date            time.Time `json:"date"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		TicketID:        p.TicketID,
		UserID:          p.UserID,
		Amount:          p.Amount,
		Method:          p.Method,
		Status:          string(p.Status),
		TransactionCode: p.TransactionCode,
		CardMasked:      p.CardMasked,
		CardBrand:       p.CardBrand,
		FailureReason:   p.FailureReason,
		RefundReason:    p.RefundReason,
		Date:            p.Date,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
