package entities

import "time"

// PaymentStatus represents the payment processing outcome.
//
// State machine: pending -> success | failed; success -> refunded.
// Refund is a one-way explicit operation and never touches the ticket.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusSuccess  PaymentStatus = "success"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Payment is the charge record persisted by the billing core.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (ticket_id-index): ticket_id
//   - GSI2 (user_id-index): user_id
//
// Card data:
//   - CardMasked keeps only the last four digits in clear
//     (e.g. "************1111"); the full number is never persisted.
//   - CardBrand is guessed from the numeric prefix at charge time.
type Payment struct {
	ID              string        `json:"id"`
	TicketID        string        `json:"ticket_id"`
	UserID          string        `json:"user_id"`
	Amount          float64       `json:"amount"`
	Method          string        `json:"method"`
	Status          PaymentStatus `json:"status"`
	TransactionCode string        `json:"transaction_code,omitempty"`
	CardMasked      string        `json:"card_masked,omitempty"`
	CardBrand       string        `json:"card_brand,omitempty"`
	FailureReason   string        `json:"failure_reason,omitempty"`
	RefundReason    string        `json:"refund_reason,omitempty"`
	Date            time.Time     `json:"date"`
}
