package request

import (
	"strings"

	"parking_xpto/internal/usecase"
)

// PaymentProcessRequest is the payload for charging a ticket.
type PaymentProcessRequest struct {
	CardNumber string `json:"card_number" binding:"required"`
	Method     string `json:"method"`
}

func (r PaymentProcessRequest) ToPaymentData() usecase.PaymentData {
	method := strings.TrimSpace(r.Method)
	if method == "" {
		method = "credit_card"
	}
	return usecase.PaymentData{
		CardNumber: strings.TrimSpace(r.CardNumber),
		Method:     method,
	}
}

type PaymentRefundRequest struct {
	Reason string `json:"reason"`
}
