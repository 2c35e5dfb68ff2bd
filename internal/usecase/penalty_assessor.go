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
	ErrPenaltyTicketNotFound = errors.New("penalty: ticket not found")
	ErrInvalidPenalty        = errors.New("penalty: invalid penalty descriptor")
)

// Grace windows before a time-exceeded penalty applies.
const (
	hourlyGrace  = 15 * time.Minute
	monthlyGrace = 30 * 24 * time.Hour
)

// Default amounts for fixed-table violations.
const defaultPropertyDamageAmount = 100.00

// misParkingFines maps the violation reason to a fixed fine.
var misParkingFines = map[string]float64{
	"double_parking": 25.00,
	"disabled_spot":  50.00,
	"blocking_exit":  35.00,
	"out_of_lines":   15.00,
	"forbidden_zone": 30.00,
}

const misParkingDefaultFine = 20.00

// IPenaltyAssessor computes penalty descriptors for rule violations.
//
// Assess* methods never persist: they return the descriptor and the
// caller decides whether to record it (Record persists one).

type IPenaltyAssessor interface {
	AssessTimeExceeded(ctx context.Context, ticketID string, actualExit time.Time) (*entities.Penalty, error)
	AssessPropertyDamage(ctx context.Context, ticketID, description string, amount float64) (*entities.Penalty, error)
	AssessMisParking(ctx context.Context, ticketID, reason string) (*entities.Penalty, error)
	Record(ctx context.Context, p entities.Penalty) (entities.Penalty, error)
}

type PenaltyAssessor struct {
	ticketRepo  interfaces.ITicketRepository
	lotRepo     interfaces.ILotRepository
	penaltyRepo interfaces.IPenaltyRepository
	calculator  *TariffCalculator
}

var _ IPenaltyAssessor = (*PenaltyAssessor)(nil)

func NewPenaltyAssessor(ticketRepo interfaces.ITicketRepository, lotRepo interfaces.ILotRepository, penaltyRepo interfaces.IPenaltyRepository, calculator *TariffCalculator) *PenaltyAssessor {
	return &PenaltyAssessor{ticketRepo: ticketRepo, lotRepo: lotRepo, penaltyRepo: penaltyRepo, calculator: calculator}
}

// AssessTimeExceeded compares the actual exit against the declared
// stay plus the grace window for the reservation type. Within the
// allowance it returns a nil descriptor.
func (a *PenaltyAssessor) AssessTimeExceeded(ctx context.Context, ticketID string, actualExit time.Time) (*entities.Penalty, error) {
	t, err := a.loadTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	allowance := a.allowanceFor(t)
	elapsed := actualExit.Sub(t.EntryTime)
	if elapsed <= allowance {
		log.Printf("[penalty][usecase] time-exceeded within allowance ticket_id=%s elapsed=%s allowance=%s", t.ID, elapsed, allowance)
		return nil, nil
	}

	lot, err := a.lotRepo.GetByID(ctx, t.LotID)
	if err != nil {
		return nil, err
	}
	if lot.ID == "" {
		log.Printf("[penalty][usecase] lot not found ticket_id=%s lot_id=%s", t.ID, t.LotID)
		return nil, ErrLotNotFound
	}

	excessHours := (elapsed - allowance).Hours()
	amount := a.calculator.PenaltyCharge(lot.HourlyRate, excessHours, DefaultPenaltyMultiplier)
	log.Printf("[penalty][usecase] time-exceeded assessed ticket_id=%s excess_hours=%.2f amount=%.2f", t.ID, excessHours, amount)

	p := a.newPenalty(t, entities.PenaltyTypeTimeExceeded, amount, "stay exceeded declared duration plus grace window")
	return &p, nil
}

// AssessPropertyDamage uses the supplied amount, or the default fine
// when the amount is not positive.
func (a *PenaltyAssessor) AssessPropertyDamage(ctx context.Context, ticketID, description string, amount float64) (*entities.Penalty, error) {
	t, err := a.loadTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if amount <= 0 {
		amount = defaultPropertyDamageAmount
	}
	if strings.TrimSpace(description) == "" {
		description = "property damage reported on lot premises"
	}

	p := a.newPenalty(t, entities.PenaltyTypePropertyDamage, amount, description)
	return &p, nil
}

// AssessMisParking resolves the fine from the fixed violation table;
// unknown reasons get the default fine.
func (a *PenaltyAssessor) AssessMisParking(ctx context.Context, ticketID, reason string) (*entities.Penalty, error) {
	t, err := a.loadTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(strings.ToLower(reason))
	amount, ok := misParkingFines[reason]
	if !ok {
		amount = misParkingDefaultFine
	}

	p := a.newPenalty(t, entities.PenaltyTypeMisParking, amount, "mis-parking: "+reason)
	return &p, nil
}

// Record persists an assessed penalty. Kept separate so assessment
// stays side-effect free.
func (a *PenaltyAssessor) Record(ctx context.Context, p entities.Penalty) (entities.Penalty, error) {
	if p.TicketID == "" || p.Amount < 0 {
		return entities.Penalty{}, ErrInvalidPenalty
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = entities.PenaltyStatusActive
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return a.penaltyRepo.Create(ctx, p)
}

func (a *PenaltyAssessor) loadTicket(ctx context.Context, ticketID string) (entities.Ticket, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return entities.Ticket{}, ErrPenaltyTicketNotFound
	}
	t, err := a.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrPenaltyTicketNotFound
	}
	return t, nil
}

// allowanceFor is the declared stay plus the grace window for the
// reservation type.
func (a *PenaltyAssessor) allowanceFor(t entities.Ticket) time.Duration {
	if t.Type == entities.ReservationTypeMonthly {
		declared := time.Duration(t.DeclaredDays) * 24 * time.Hour
		return declared + monthlyGrace
	}
	declared := time.Duration(t.DeclaredHours * float64(time.Hour))
	return declared + hourlyGrace
}

func (a *PenaltyAssessor) newPenalty(t entities.Ticket, kind entities.PenaltyType, amount float64, description string) entities.Penalty {
	return entities.Penalty{
		ID:          uuid.NewString(),
		TicketID:    t.ID,
		UserID:      t.UserID,
		Type:        kind,
		Amount:      amount,
		Status:      entities.PenaltyStatusActive,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
