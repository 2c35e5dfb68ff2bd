package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"parking_xpto/internal/domain/entities"
	"parking_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidReservation         = errors.New("reservation: invalid reservation request")
	ErrTicketNotFound             = errors.New("reservation: ticket not found")
	ErrTicketNotActive            = errors.New("reservation: ticket not active")
	ErrUserNotFound               = errors.New("reservation: user not found")
	ErrUserInactive               = errors.New("reservation: user not active")
	ErrVehicleNotFound            = errors.New("reservation: vehicle not found")
	ErrVehicleNotOwned            = errors.New("reservation: vehicle does not belong to user")
	ErrLotNotFound                = errors.New("reservation: lot not found")
	ErrLotInactive                = errors.New("reservation: lot not active")
	ErrLotFull                    = errors.New("reservation: lot has no available spaces")
	ErrDuplicateActiveReservation = errors.New("reservation: vehicle already has an active reservation on this lot")
)

const ticketCodePrefix = "PKR"

// CreateReservationRequest is the usecase-level creation input.
type CreateReservationRequest struct {
	UserID       string
	LicensePlate string
	LotID        string
	Type         entities.ReservationType
	// DeclaredHours/DeclaredDays are the caller's stay estimate; used
	// for the non-binding price quote and the time-exceeded grace
	// window, never for billing.
	DeclaredHours float64
	DeclaredDays  int
}

// UserSummaryGroup aggregates one ticket state for a user.
type UserSummaryGroup struct {
	Count      int     `json:"count"`
	TotalSpent float64 `json:"total_spent"`
}

// UserSummary is the per-user reservation aggregate.
type UserSummary struct {
	UserID       string                      `json:"user_id"`
	TotalTickets int                         `json:"total_tickets"`
	TotalSpent   float64                     `json:"total_spent"`
	ByStatus     map[string]UserSummaryGroup `json:"by_status"`
}

// IReservationManager orchestrates the ticket lifecycle:
// active -> finalized -> paid, active -> cancelled.

type IReservationManager interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest) (entities.Ticket, error)
	FinalizeReservation(ctx context.Context, ticketID string, manualAmount *float64) (entities.Ticket, error)
	CancelReservation(ctx context.Context, ticketID, reason string) (entities.Ticket, error)
	GetUserSummary(ctx context.Context, userID string) (UserSummary, error)
}

type ReservationManager struct {
	ticketRepo  interfaces.ITicketRepository
	lotRepo     interfaces.ILotRepository
	userRepo    interfaces.IUserRepository
	vehicleRepo interfaces.IVehicleRepository
	calculator  *TariffCalculator
	policy      ReservationPolicy
}

var _ IReservationManager = (*ReservationManager)(nil)

func NewReservationManager(
	ticketRepo interfaces.ITicketRepository,
	lotRepo interfaces.ILotRepository,
	userRepo interfaces.IUserRepository,
	vehicleRepo interfaces.IVehicleRepository,
	calculator *TariffCalculator,
	policy ReservationPolicy,
) *ReservationManager {
	return &ReservationManager{
		ticketRepo:  ticketRepo,
		lotRepo:     lotRepo,
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		calculator:  calculator,
		policy:      policy,
	}
}

// CreateReservation validates user, vehicle ownership and lot state,
// takes a space when the capacity policy says so, and persists an
// active ticket with a human-readable code and a non-binding estimate.
func (u *ReservationManager) CreateReservation(ctx context.Context, req CreateReservationRequest) (entities.Ticket, error) {
	if err := validateCreateRequest(&req); err != nil {
		return entities.Ticket{}, err
	}
	log.Printf("[reservation][usecase] create start user_id=%s plate=%s lot_id=%s type=%s", req.UserID, req.LicensePlate, req.LotID, req.Type)

	user, err := u.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return entities.Ticket{}, err
	}
	if user.ID == "" {
		return entities.Ticket{}, ErrUserNotFound
	}
	if user.Status != entities.UserStatusActive {
		log.Printf("[reservation][usecase] user not active user_id=%s status=%s", user.ID, user.Status)
		return entities.Ticket{}, ErrUserInactive
	}

	vehicle, err := u.vehicleRepo.GetByPlate(ctx, req.LicensePlate)
	if err != nil {
		return entities.Ticket{}, err
	}
	if vehicle.ID == "" {
		return entities.Ticket{}, ErrVehicleNotFound
	}
	if vehicle.OwnerID != user.ID {
		log.Printf("[reservation][usecase] vehicle ownership mismatch plate=%s owner_id=%s user_id=%s", req.LicensePlate, vehicle.OwnerID, user.ID)
		return entities.Ticket{}, ErrVehicleNotOwned
	}

	lot, err := u.lotRepo.GetByID(ctx, req.LotID)
	if err != nil {
		return entities.Ticket{}, err
	}
	if lot.ID == "" {
		return entities.Ticket{}, ErrLotNotFound
	}
	if lot.Status != entities.LotStatusActive {
		log.Printf("[reservation][usecase] lot not active lot_id=%s status=%s", lot.ID, lot.Status)
		return entities.Ticket{}, ErrLotInactive
	}

	if u.policy.RejectDuplicateActive {
		dup, err := u.ticketRepo.HasActiveForVehicleLot(ctx, vehicle.ID, lot.ID)
		if err != nil {
			return entities.Ticket{}, err
		}
		if dup {
			log.Printf("[reservation][usecase] duplicate active reservation vehicle_id=%s lot_id=%s", vehicle.ID, lot.ID)
			return entities.Ticket{}, ErrDuplicateActiveReservation
		}
	}

	if u.policy.DecrementOnCreate {
		adjusted, err := u.lotRepo.AdjustAvailableSpaces(ctx, lot.ID, -1)
		if err != nil {
			return entities.Ticket{}, err
		}
		if adjusted.ID == "" {
			log.Printf("[reservation][usecase] lot full lot_id=%s", lot.ID)
			return entities.Ticket{}, ErrLotFull
		}
	}

	now := time.Now().UTC()
	ticket := entities.Ticket{
		ID:             uuid.NewString(),
		Code:           newTicketCode(now),
		UserID:         user.ID,
		VehicleID:      vehicle.ID,
		LotID:          lot.ID,
		Type:           req.Type,
		EntryTime:      now,
		DeclaredHours:  req.DeclaredHours,
		DeclaredDays:   req.DeclaredDays,
		EstimatedPrice: u.estimate(lot, req),
		Status:         entities.TicketStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.ticketRepo.Create(ctx, ticket)
	if err != nil {
		// Give the space back; the reservation never existed.
		if u.policy.DecrementOnCreate {
			if _, relErr := u.lotRepo.AdjustAvailableSpaces(ctx, lot.ID, +1); relErr != nil {
				log.Printf("[reservation][usecase] space compensation failed lot_id=%s err=%v", lot.ID, relErr)
			}
		}
		return entities.Ticket{}, err
	}

	if _, err := u.lotRepo.IncrementReservationCount(ctx, lot.ID); err != nil {
		log.Printf("[reservation][usecase] reservation counter increment failed lot_id=%s err=%v", lot.ID, err)
	}

	log.Printf("[reservation][usecase] create success ticket_id=%s code=%s estimate=%.2f", created.ID, created.Code, created.EstimatedPrice)
	return created, nil
}

// FinalizeReservation ends an active stay: the billed amount comes
// from manualAmount when supplied, otherwise from the tariff over the
// elapsed time (monthly stays bill the full monthly rate). The
// active -> finalized transition is a conditional write; a lost race
// leaves the ticket unmodified and reports it as not active.
func (u *ReservationManager) FinalizeReservation(ctx context.Context, ticketID string, manualAmount *float64) (entities.Ticket, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	if manualAmount != nil && *manualAmount < 0 {
		return entities.Ticket{}, ErrInvalidReservation
	}

	t, err := u.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	if t.Status != entities.TicketStatusActive {
		log.Printf("[reservation][usecase] finalize rejected ticket_id=%s status=%s", ticketID, t.Status)
		return entities.Ticket{}, ErrTicketNotActive
	}

	exit := time.Now().UTC()
	var price float64
	if manualAmount != nil {
		price = *manualAmount
	} else {
		lot, err := u.lotRepo.GetByID(ctx, t.LotID)
		if err != nil {
			return entities.Ticket{}, err
		}
		if lot.ID == "" {
			return entities.Ticket{}, ErrLotNotFound
		}
		price = u.billedAmount(t, lot, exit)
	}

	finalized, err := u.ticketRepo.Finalize(ctx, ticketID, exit, price)
	if err != nil {
		return entities.Ticket{}, err
	}
	if finalized.ID == "" {
		log.Printf("[reservation][usecase] finalize lost transition race ticket_id=%s", ticketID)
		return entities.Ticket{}, ErrTicketNotActive
	}

	u.releaseSpace(ctx, t.LotID)

	log.Printf("[reservation][usecase] finalize success ticket_id=%s price=%.2f", ticketID, price)
	return finalized, nil
}

// CancelReservation aborts an active stay without billing.
func (u *ReservationManager) CancelReservation(ctx context.Context, ticketID, reason string) (entities.Ticket, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}

	t, err := u.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	if t.Status != entities.TicketStatusActive {
		log.Printf("[reservation][usecase] cancel rejected ticket_id=%s status=%s", ticketID, t.Status)
		return entities.Ticket{}, ErrTicketNotActive
	}

	cancelled, err := u.ticketRepo.Cancel(ctx, ticketID, time.Now().UTC())
	if err != nil {
		return entities.Ticket{}, err
	}
	if cancelled.ID == "" {
		return entities.Ticket{}, ErrTicketNotActive
	}

	u.releaseSpace(ctx, t.LotID)

	log.Printf("[reservation][usecase] cancel success ticket_id=%s reason=%q", ticketID, reason)
	return cancelled, nil
}

// GetUserSummary aggregates ticket counts and totals spent per state.
func (u *ReservationManager) GetUserSummary(ctx context.Context, userID string) (UserSummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return UserSummary{}, ErrUserNotFound
	}

	tickets, err := u.ticketRepo.ListByUserID(ctx, userID)
	if err != nil {
		return UserSummary{}, err
	}

	summary := UserSummary{
		UserID:   userID,
		ByStatus: map[string]UserSummaryGroup{},
	}
	for _, t := range tickets {
		group := summary.ByStatus[string(t.Status)]
		group.Count++
		if t.Price != nil && t.Status == entities.TicketStatusPaid {
			group.TotalSpent += *t.Price
			summary.TotalSpent += *t.Price
		}
		summary.ByStatus[string(t.Status)] = group
		summary.TotalTickets++
	}
	return summary, nil
}

func (u *ReservationManager) billedAmount(t entities.Ticket, lot entities.Lot, exit time.Time) float64 {
	if t.Type == entities.ReservationTypeMonthly {
		return u.calculator.MonthlyCharge(lot.MonthlyRate, 30)
	}
	return u.calculator.HourlyCharge(lot.HourlyRate, exit.Sub(t.EntryTime).Hours())
}

func (u *ReservationManager) estimate(lot entities.Lot, req CreateReservationRequest) float64 {
	if req.Type == entities.ReservationTypeMonthly {
		days := req.DeclaredDays
		if days <= 0 {
			days = 30
		}
		return u.calculator.MonthlyCharge(lot.MonthlyRate, days)
	}
	if req.DeclaredHours > 0 {
		return u.calculator.HourlyCharge(lot.HourlyRate, req.DeclaredHours)
	}
	return 0
}

func (u *ReservationManager) releaseSpace(ctx context.Context, lotID string) {
	if !u.policy.DecrementOnCreate {
		return
	}
	if _, err := u.lotRepo.AdjustAvailableSpaces(ctx, lotID, +1); err != nil {
		log.Printf("[reservation][usecase] space release failed lot_id=%s err=%v", lotID, err)
	}
}

func validateCreateRequest(req *CreateReservationRequest) error {
	req.UserID = strings.TrimSpace(req.UserID)
	req.LicensePlate = strings.TrimSpace(req.LicensePlate)
	req.LotID = strings.TrimSpace(req.LotID)
	if req.UserID == "" || req.LicensePlate == "" || req.LotID == "" {
		return ErrInvalidReservation
	}
	switch req.Type {
	case entities.ReservationTypeHourly, entities.ReservationTypeMonthly:
	default:
		return ErrInvalidReservation
	}
	if req.DeclaredHours < 0 || req.DeclaredDays < 0 {
		return ErrInvalidReservation
	}
	return nil
}

func newTicketCode(now time.Time) string {
	suffix := make([]byte, 3)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%s-%s-%s", ticketCodePrefix, now.Format("20060102150405"), strings.ToUpper(hex.EncodeToString(suffix)))
}
