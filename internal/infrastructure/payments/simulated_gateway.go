package payments

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"

	"parking_xpto/internal/usecase/interfaces"
)

// declinedCards is the fixed deny-list of the simulation; any other
// card number is approved.
var declinedCards = map[string]string{
	"4000000000000002": "card declined by issuer",
	"4000000000009995": "insufficient funds",
	"5100000000000016": "card reported stolen",
}

// SimulatedGateway is the deterministic IPaymentGateway used by
// default: deny-listed cards always fail, everything else succeeds
// with a fresh authorization code. No network, no external state.
type SimulatedGateway struct{}

var _ interfaces.IPaymentGateway = (*SimulatedGateway)(nil)

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

func (g *SimulatedGateway) Charge(_ context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	number := strings.TrimSpace(req.CardNumber)
	if reason, denied := declinedCards[number]; denied {
		log.Printf("[payment][gateway] simulated decline reference=%s reason=%s", req.Reference, reason)
		return interfaces.ChargeResult{Approved: false, DeclineReason: reason}, nil
	}

	code := newAuthorizationCode()
	log.Printf("[payment][gateway] simulated approval reference=%s amount=%.2f auth=%s", req.Reference, req.Amount, code)
	return interfaces.ChargeResult{Approved: true, AuthorizationCode: code}, nil
}

func newAuthorizationCode() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return "AUTH-" + strings.ToUpper(hex.EncodeToString(b))
}
