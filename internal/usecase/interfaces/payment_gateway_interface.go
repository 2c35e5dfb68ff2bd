package interfaces

import "context"

// ChargeRequest is the gateway-facing charge instruction. CardNumber
// is digits-only; masking happens before persistence, never here.
type ChargeRequest struct {
	Amount     float64
	CardNumber string
	Method     string
	Reference  string
}

// ChargeResult is the gateway outcome. A decline is a normal result
// (Approved=false), not an error; errors are reserved for transport or
// configuration failures.
type ChargeResult struct {
	Approved          bool
	AuthorizationCode string
	DeclineReason     string
}

// IPaymentGateway abstracts external payment providers. The default
// implementation is a deterministic simulation; a Mercado Pago client
// exists behind the same contract for real execution.
type IPaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}
