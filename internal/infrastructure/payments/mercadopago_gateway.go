package payments

import (
	"context"
	"errors"
	"fmt"
	"log"

	"parking_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway is the real IPaymentGateway implementation. It is
// opt-in (PAYMENT_GATEWAY=mercadopago); the simulated gateway is the
// default so the billing core stays deterministic everywhere else.
type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start reference=%s amount=%.2f", req.Reference, req.Amount)

	resp, err := g.client.Create(ctx, payment.Request{
		TransactionAmount: req.Amount,
		Description:       fmt.Sprintf("Parking ticket %s", req.Reference),
		PaymentMethodID:   req.Method,
		ExternalReference: req.Reference,
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed reference=%s err=%v", req.Reference, err)
		return interfaces.ChargeResult{}, err
	}

	if resp.Status != "approved" {
		log.Printf("[payment][gateway] create declined reference=%s provider_status=%s detail=%s", req.Reference, resp.Status, resp.StatusDetail)
		return interfaces.ChargeResult{Approved: false, DeclineReason: resp.StatusDetail}, nil
	}

	log.Printf("[payment][gateway] create success reference=%s provider_payment_id=%d", req.Reference, resp.ID)
	return interfaces.ChargeResult{
		Approved:          true,
		AuthorizationCode: fmt.Sprintf("%d", resp.ID),
	}, nil
}
