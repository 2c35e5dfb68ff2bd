package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"parking_xpto/internal/domain/entities"
	"parking_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentTicketNotFound = errors.New("payment: ticket not found")
	ErrInvalidTicketState    = errors.New("payment: ticket not payable in its current state")
	ErrTicketAlreadyPaid     = errors.New("payment: ticket already has a successful payment")
	ErrInvalidPaymentData    = errors.New("payment: invalid payment data")
	ErrPaymentNotFound       = errors.New("payment: payment not found")
	ErrInvalidRefundState    = errors.New("payment: only successful payments can be refunded")
	ErrPaymentGatewayFailure = errors.New("payment: gateway execution failed")
)

// PaymentData is the caller-supplied charge instruction.
type PaymentData struct {
	CardNumber string
	Method     string
}

// PaymentHistoryFilter narrows GetPaymentHistory results.
type PaymentHistoryFilter struct {
	From   *time.Time
	To     *time.Time
	Status entities.PaymentStatus
}

// IPaymentProcessor owns the payment state machine:
// pending -> success | failed; success -> refunded.

type IPaymentProcessor interface {
	ProcessPayment(ctx context.Context, ticketID string, data PaymentData) (entities.Payment, error)
	RefundPayment(ctx context.Context, paymentID, reason string) (entities.Payment, error)
	GetPaymentHistory(ctx context.Context, userID string, filter PaymentHistoryFilter) ([]entities.Payment, error)
}

type PaymentProcessor struct {
	paymentRepo interfaces.IPaymentRepository
	ticketRepo  interfaces.ITicketRepository
	penaltyRepo interfaces.IPenaltyRepository
	lotRepo     interfaces.ILotRepository
	gateway     interfaces.IPaymentGateway
	policy      ReservationPolicy
}

var _ IPaymentProcessor = (*PaymentProcessor)(nil)

func NewPaymentProcessor(
	paymentRepo interfaces.IPaymentRepository,
	ticketRepo interfaces.ITicketRepository,
	penaltyRepo interfaces.IPenaltyRepository,
	lotRepo interfaces.ILotRepository,
	gateway interfaces.IPaymentGateway,
	policy ReservationPolicy,
) *PaymentProcessor {
	return &PaymentProcessor{
		paymentRepo: paymentRepo,
		ticketRepo:  ticketRepo,
		penaltyRepo: penaltyRepo,
		lotRepo:     lotRepo,
		gateway:     gateway,
		policy:      policy,
	}
}

// ProcessPayment charges the total owed on a ticket: the price fixed
// at finalize time (or the creation estimate while the stay is still
// active) plus all active penalties.
//
// A gateway decline is a normal outcome: the returned Payment carries
// StatusFailed and err is nil. The duplicate-payment guard is
// two-layered: a read pre-check with no side effects, then the
// conditional MarkPaid write which is the real arbiter under
// concurrency.
func (u *PaymentProcessor) ProcessPayment(ctx context.Context, ticketID string, data PaymentData) (entities.Payment, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return entities.Payment{}, ErrPaymentTicketNotFound
	}
	data.CardNumber = strings.TrimSpace(data.CardNumber)
	if err := validatePaymentData(data); err != nil {
		return entities.Payment{}, err
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	log.Printf("[payment][usecase] process start ticket_id=%s method=%s", ticketID, data.Method)

	t, err := u.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return entities.Payment{}, err
	}
	if t.ID == "" {
		log.Printf("[payment][usecase] ticket not found ticket_id=%s", ticketID)
		return entities.Payment{}, ErrPaymentTicketNotFound
	}
	switch t.Status {
	case entities.TicketStatusActive, entities.TicketStatusFinalized:
		// payable
	case entities.TicketStatusPaid:
		log.Printf("[payment][usecase] ticket already paid ticket_id=%s", ticketID)
		return entities.Payment{}, ErrTicketAlreadyPaid
	default:
		log.Printf("[payment][usecase] ticket not payable ticket_id=%s status=%s", ticketID, t.Status)
		return entities.Payment{}, ErrInvalidTicketState
	}

	// Pre-check: reject before any write when a success already exists.
	prior, err := u.paymentRepo.ListByTicketID(ctx, ticketID)
	if err != nil {
		return entities.Payment{}, err
	}
	for _, p := range prior {
		if p.Status == entities.PaymentStatusSuccess {
			log.Printf("[payment][usecase] duplicate payment rejected ticket_id=%s prior_payment_id=%s", ticketID, p.ID)
			return entities.Payment{}, ErrTicketAlreadyPaid
		}
	}

	total, err := u.totalOwed(ctx, t)
	if err != nil {
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] total owed ticket_id=%s amount=%.2f", ticketID, total)

	pending := entities.Payment{
		ID:         uuid.NewString(),
		TicketID:   t.ID,
		UserID:     t.UserID,
		Amount:     total,
		Method:     data.Method,
		Status:     entities.PaymentStatusPending,
		CardMasked: MaskCardNumber(data.CardNumber),
		CardBrand:  DetectCardBrand(data.CardNumber),
		Date:       time.Now().UTC(),
	}
	created, err := u.paymentRepo.Create(ctx, pending)
	if err != nil {
		return entities.Payment{}, err
	}

	result, err := u.gateway.Charge(ctx, interfaces.ChargeRequest{
		Amount:     total,
		CardNumber: data.CardNumber,
		Method:     data.Method,
		Reference:  t.Code,
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway failed ticket_id=%s payment_id=%s err=%v", ticketID, created.ID, err)
		_, _ = u.paymentRepo.UpdateStatus(ctx, created.ID, entities.PaymentStatusFailed, "", "gateway error")
		return entities.Payment{}, errors.Join(ErrPaymentGatewayFailure, err)
	}

	if !result.Approved {
		log.Printf("[payment][usecase] gateway declined ticket_id=%s payment_id=%s reason=%s", ticketID, created.ID, result.DeclineReason)
		return u.paymentRepo.UpdateStatus(ctx, created.ID, entities.PaymentStatusFailed, "", result.DeclineReason)
	}

	// Conditional transition: only one caller can move the ticket to
	// paid. Losing the race after an approved charge surfaces as
	// ALREADY_PAID with the payment marked failed.
	paidTicket, err := u.ticketRepo.MarkPaid(ctx, t.ID, total)
	if err != nil {
		return entities.Payment{}, err
	}
	if paidTicket.ID == "" {
		log.Printf("[payment][usecase] lost paid-transition race ticket_id=%s payment_id=%s", ticketID, created.ID)
		_, _ = u.paymentRepo.UpdateStatus(ctx, created.ID, entities.PaymentStatusFailed, "", "ticket already paid")
		return entities.Payment{}, ErrTicketAlreadyPaid
	}

	settled, err := u.paymentRepo.UpdateStatus(ctx, created.ID, entities.PaymentStatusSuccess, result.AuthorizationCode, "")
	if err != nil {
		return entities.Payment{}, err
	}

	u.settlePenalties(ctx, t.ID)

	// A ticket paid straight from active never went through finalize,
	// so its space is still held; release it here. Finalized tickets
	// released theirs at finalize time.
	if u.policy.DecrementOnCreate && t.Status == entities.TicketStatusActive {
		if _, err := u.lotRepo.AdjustAvailableSpaces(ctx, t.LotID, +1); err != nil {
			log.Printf("[payment][usecase] space release failed lot_id=%s err=%v", t.LotID, err)
		}
	}

	log.Printf("[payment][usecase] process success ticket_id=%s payment_id=%s amount=%.2f auth=%s", ticketID, settled.ID, settled.Amount, settled.TransactionCode)
	return settled, nil
}

// RefundPayment moves success -> refunded. The ticket is left as is;
// any state follow-up is the caller's decision.
func (u *PaymentProcessor) RefundPayment(ctx context.Context, paymentID, reason string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	p, err := u.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if p.Status != entities.PaymentStatusSuccess {
		log.Printf("[payment][usecase] refund rejected payment_id=%s status=%s", paymentID, p.Status)
		return entities.Payment{}, ErrInvalidRefundState
	}

	refunded, err := u.paymentRepo.UpdateStatus(ctx, paymentID, entities.PaymentStatusRefunded, p.TransactionCode, reason)
	if err != nil {
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] refund success payment_id=%s reason=%q", paymentID, reason)
	return refunded, nil
}

// GetPaymentHistory lists a user's payments, optionally narrowed by
// date range and status.
func (u *PaymentProcessor) GetPaymentHistory(ctx context.Context, userID string, filter PaymentHistoryFilter) ([]entities.Payment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidPaymentData
	}

	payments, err := u.paymentRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Payment, 0, len(payments))
	for _, p := range payments {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.From != nil && p.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && p.Date.After(*filter.To) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (u *PaymentProcessor) totalOwed(ctx context.Context, t entities.Ticket) (float64, error) {
	total := t.EstimatedPrice
	if t.Price != nil {
		total = *t.Price
	}

	penalties, err := u.penaltyRepo.ListByTicketID(ctx, t.ID)
	if err != nil {
		return 0, err
	}
	for _, p := range penalties {
		if p.Status == entities.PenaltyStatusActive {
			total += p.Amount
		}
	}
	return total, nil
}

func (u *PaymentProcessor) settlePenalties(ctx context.Context, ticketID string) {
	penalties, err := u.penaltyRepo.ListByTicketID(ctx, ticketID)
	if err != nil {
		log.Printf("[payment][usecase] penalty settle list failed ticket_id=%s err=%v", ticketID, err)
		return
	}
	for _, p := range penalties {
		if p.Status != entities.PenaltyStatusActive {
			continue
		}
		if _, err := u.penaltyRepo.UpdateStatus(ctx, p.ID, entities.PenaltyStatusPaid); err != nil {
			log.Printf("[payment][usecase] penalty settle failed penalty_id=%s err=%v", p.ID, err)
		}
	}
}

func validatePaymentData(data PaymentData) error {
	number := data.CardNumber
	if number == "" || len(number) < 8 {
		return ErrInvalidPaymentData
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return ErrInvalidPaymentData
		}
	}
	return nil
}
