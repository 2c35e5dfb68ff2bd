package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"parking_xpto/internal/domain/entities"
	mock_interfaces "parking_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type managerMocks struct {
	ticketRepo  *mock_interfaces.MockITicketRepository
	lotRepo     *mock_interfaces.MockILotRepository
	userRepo    *mock_interfaces.MockIUserRepository
	vehicleRepo *mock_interfaces.MockIVehicleRepository
}

func newManager(ctrl *gomock.Controller, policy ReservationPolicy) (*ReservationManager, managerMocks) {
	m := managerMocks{
		ticketRepo:  mock_interfaces.NewMockITicketRepository(ctrl),
		lotRepo:     mock_interfaces.NewMockILotRepository(ctrl),
		userRepo:    mock_interfaces.NewMockIUserRepository(ctrl),
		vehicleRepo: mock_interfaces.NewMockIVehicleRepository(ctrl),
	}
	u := NewReservationManager(m.ticketRepo, m.lotRepo, m.userRepo, m.vehicleRepo, NewTariffCalculator(), policy)
	return u, m
}

func validCreateRequest() CreateReservationRequest {
	return CreateReservationRequest{
		UserID:        "u-1",
		LicensePlate:  "ABC1D23",
		LotID:         "l-1",
		Type:          entities.ReservationTypeHourly,
		DeclaredHours: 3,
	}
}

func activeUser() entities.User {
	return entities.User{ID: "u-1", Name: "Ana", Status: entities.UserStatusActive}
}

func ownedVehicle() entities.Vehicle {
	return entities.Vehicle{ID: "v-1", LicensePlate: "ABC1D23", OwnerID: "u-1"}
}

func openLot() entities.Lot {
	return entities.Lot{
		ID:              "l-1",
		Name:            "Central",
		TotalSpaces:     50,
		AvailableSpaces: 10,
		HourlyRate:      10.00,
		MonthlyRate:     300.00,
		Status:          entities.LotStatusActive,
	}
}

func TestReservationManager_CreateReservation(t *testing.T) {
	t.Run("invalid request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, _ := newManager(ctrl, DefaultReservationPolicy())

		cases := []CreateReservationRequest{
			{},
			{UserID: "u-1", LicensePlate: "ABC1D23", LotID: "l-1", Type: "weekly"},
			{UserID: "u-1", LicensePlate: "ABC1D23", LotID: "l-1", Type: entities.ReservationTypeHourly, DeclaredHours: -1},
		}
		for i, req := range cases {
			if _, err := u.CreateReservation(context.Background(), req); !errors.Is(err, ErrInvalidReservation) {
				t.Fatalf("case %d: expected ErrInvalidReservation, got %v", i, err)
			}
		}
	})

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		m.userRepo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		if _, err := u.CreateReservation(context.Background(), validCreateRequest()); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("user inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		blocked := activeUser()
		blocked.Status = entities.UserStatusInactive
		m.userRepo.EXPECT().GetByID(gomock.Any(), "u-1").Return(blocked, nil)

		if _, err := u.CreateReservation(context.Background(), validCreateRequest()); !errors.Is(err, ErrUserInactive) {
			t.Fatalf("expected ErrUserInactive, got %v", err)
		}
	})

	t.Run("vehicle not owned by user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		other := ownedVehicle()
		other.OwnerID = "u-2"
		m.userRepo.EXPECT().GetByID(gomock.Any(), "u-1").Return(activeUser(), nil)
		m.vehicleRepo.EXPECT().GetByPlate(gomock.Any(), "ABC1D23").Return(other, nil)

		if _, err := u.CreateReservation(context.Background(), validCreateRequest()); !errors.Is(err, ErrVehicleNotOwned) {
			t.Fatalf("expected ErrVehicleNotOwned, got %v", err)
		}
	})

	t.Run("duplicate active reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		m.userRepo.EXPECT().GetByID(gomock.Any(), "u-1").Return(activeUser(), nil)
		m.vehicleRepo.EXPECT().GetByPlate(gomock.Any(), "ABC1D23").Return(ownedVehicle(), nil)
		m.lotRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(openLot(), nil)
		m.ticketRepo.EXPECT().HasActiveForVehicleLot(gomock.Any(), "v-1", "l-1").Return(true, nil)

		if _, err := u.CreateReservation(context.Background(), validCreateRequest()); !errors.Is(err, ErrDuplicateActiveReservation) {
			t.Fatalf("expected ErrDuplicateActiveReservation, got %v", err)
		}
	})

	t.Run("lot full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		m.userRepo.EXPECT().GetByID(gomock.Any(), "u-1").Return(activeUser(), nil)
		m.vehicleRepo.EXPECT().GetByPlate(gomock.Any(), "ABC1D23").Return(ownedVehicle(), nil)
		m.lotRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(openLot(), nil)
		m.ticketRepo.EXPECT().HasActiveForVehicleLot(gomock.Any(), "v-1", "l-1").Return(false, nil)
		m.lotRepo.EXPECT().AdjustAvailableSpaces(gomock.Any(), "l-1", -1).Return(entities.Lot{}, nil)

		if _, err := u.CreateReservation(context.Background(), validCreateRequest()); !errors.Is(err, ErrLotFull) {
			t.Fatalf("expected ErrLotFull, got %v", err)
		}
	})

	t.Run("success with estimate and code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		m.userRepo.EXPECT().GetByID(gomock.Any(), "u-1").Return(activeUser(), nil)
		m.vehicleRepo.EXPECT().GetByPlate(gomock.Any(), "ABC1D23").Return(ownedVehicle(), nil)
		m.lotRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(openLot(), nil)
		m.ticketRepo.EXPECT().HasActiveForVehicleLot(gomock.Any(), "v-1", "l-1").Return(false, nil)
		m.lotRepo.EXPECT().AdjustAvailableSpaces(gomock.Any(), "l-1", -1).Return(openLot(), nil)
		m.ticketRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Ticket{})).DoAndReturn(
			func(_ context.Context, ticket entities.Ticket) (entities.Ticket, error) {
				if ticket.ID == "" || ticket.Status != entities.TicketStatusActive {
					t.Fatalf("unexpected ticket: %+v", ticket)
				}
				if !strings.HasPrefix(ticket.Code, "PKR-") {
					t.Fatalf("unexpected code: %q", ticket.Code)
				}
				// 3 declared hours at 10.00, no discount tier.
				if ticket.EstimatedPrice != 30.00 {
					t.Fatalf("expected estimate 30.00, got %.2f", ticket.EstimatedPrice)
				}
				return ticket, nil
			},
		)
		m.lotRepo.EXPECT().IncrementReservationCount(gomock.Any(), "l-1").Return(openLot(), nil)

		created, err := u.CreateReservation(context.Background(), validCreateRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.UserID != "u-1" || created.VehicleID != "v-1" || created.LotID != "l-1" {
			t.Fatalf("unexpected ticket: %+v", created)
		}
	})

	t.Run("create failure releases the taken space", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		m.userRepo.EXPECT().GetByID(gomock.Any(), "u-1").Return(activeUser(), nil)
		m.vehicleRepo.EXPECT().GetByPlate(gomock.Any(), "ABC1D23").Return(ownedVehicle(), nil)
		m.lotRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(openLot(), nil)
		m.ticketRepo.EXPECT().HasActiveForVehicleLot(gomock.Any(), "v-1", "l-1").Return(false, nil)
		m.lotRepo.EXPECT().AdjustAvailableSpaces(gomock.Any(), "l-1", -1).Return(openLot(), nil)
		m.ticketRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Ticket{}, errors.New("db down"))
		m.lotRepo.EXPECT().AdjustAvailableSpaces(gomock.Any(), "l-1", 1).Return(openLot(), nil)

		if _, err := u.CreateReservation(context.Background(), validCreateRequest()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("capacity policy off skips space accounting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policy := ReservationPolicy{RejectDuplicateActive: false, DecrementOnCreate: false}
		u, m := newManager(ctrl, policy)

		m.userRepo.EXPECT().GetByID(gomock.Any(), "u-1").Return(activeUser(), nil)
		m.vehicleRepo.EXPECT().GetByPlate(gomock.Any(), "ABC1D23").Return(ownedVehicle(), nil)
		m.lotRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(openLot(), nil)
		m.ticketRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ticket entities.Ticket) (entities.Ticket, error) { return ticket, nil },
		)
		m.lotRepo.EXPECT().IncrementReservationCount(gomock.Any(), "l-1").Return(openLot(), nil)

		if _, err := u.CreateReservation(context.Background(), validCreateRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReservationManager_FinalizeReservation(t *testing.T) {
	activeTicket := entities.Ticket{
		ID:        "t-1",
		UserID:    "u-1",
		LotID:     "l-1",
		Type:      entities.ReservationTypeHourly,
		EntryTime: time.Now().UTC().Add(-3*time.Hour - 24*time.Minute),
		Status:    entities.TicketStatusActive,
	}

	t.Run("ticket not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		m.ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Ticket{}, nil)

		if _, err := u.FinalizeReservation(context.Background(), "t-1", nil); !errors.Is(err, ErrTicketNotFound) {
			t.Fatalf("expected ErrTicketNotFound, got %v", err)
		}
	})

	t.Run("non-active ticket left unmodified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		done := activeTicket
		done.Status = entities.TicketStatusFinalized
		m.ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(done, nil)

		if _, err := u.FinalizeReservation(context.Background(), "t-1", nil); !errors.Is(err, ErrTicketNotActive) {
			t.Fatalf("expected ErrTicketNotActive, got %v", err)
		}
	})

	t.Run("negative manual amount rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, _ := newManager(ctrl, DefaultReservationPolicy())

		bad := -1.0
		if _, err := u.FinalizeReservation(context.Background(), "t-1", &bad); !errors.Is(err, ErrInvalidReservation) {
			t.Fatalf("expected ErrInvalidReservation, got %v", err)
		}
	})

	t.Run("bills elapsed hours and releases the space", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		m.ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(activeTicket, nil)
		m.lotRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(openLot(), nil)
		// 3h24m bills 4 hours at 10.00.
		m.ticketRepo.EXPECT().Finalize(gomock.Any(), "t-1", gomock.Any(), 40.00).DoAndReturn(
			func(_ context.Context, id string, exit time.Time, price float64) (entities.Ticket, error) {
				done := activeTicket
				done.ID = id
				done.Status = entities.TicketStatusFinalized
				done.ExitTime = &exit
				done.Price = &price
				return done, nil
			},
		)
		m.lotRepo.EXPECT().AdjustAvailableSpaces(gomock.Any(), "l-1", 1).Return(openLot(), nil)

		finalized, err := u.FinalizeReservation(context.Background(), "t-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if finalized.Status != entities.TicketStatusFinalized || finalized.Price == nil || *finalized.Price != 40.00 {
			t.Fatalf("unexpected ticket: %+v", finalized)
		}
	})

	t.Run("monthly bills the full monthly rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		monthly := activeTicket
		monthly.Type = entities.ReservationTypeMonthly
		m.ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(monthly, nil)
		m.lotRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(openLot(), nil)
		m.ticketRepo.EXPECT().Finalize(gomock.Any(), "t-1", gomock.Any(), 300.00).Return(monthly, nil)
		m.lotRepo.EXPECT().AdjustAvailableSpaces(gomock.Any(), "l-1", 1).Return(openLot(), nil)

		if _, err := u.FinalizeReservation(context.Background(), "t-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("manual amount overrides the tariff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		m.ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(activeTicket, nil)
		manual := 12.34
		m.ticketRepo.EXPECT().Finalize(gomock.Any(), "t-1", gomock.Any(), manual).Return(activeTicket, nil)
		m.lotRepo.EXPECT().AdjustAvailableSpaces(gomock.Any(), "l-1", 1).Return(openLot(), nil)

		if _, err := u.FinalizeReservation(context.Background(), "t-1", &manual); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost transition race surfaces as not active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		m.ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(activeTicket, nil)
		m.lotRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(openLot(), nil)
		m.ticketRepo.EXPECT().Finalize(gomock.Any(), "t-1", gomock.Any(), gomock.Any()).Return(entities.Ticket{}, nil)

		if _, err := u.FinalizeReservation(context.Background(), "t-1", nil); !errors.Is(err, ErrTicketNotActive) {
			t.Fatalf("expected ErrTicketNotActive, got %v", err)
		}
	})
}

func TestReservationManager_CancelReservation(t *testing.T) {
	activeTicket := entities.Ticket{
		ID:     "t-1",
		LotID:  "l-1",
		Status: entities.TicketStatusActive,
	}

	t.Run("non-active ticket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		paid := activeTicket
		paid.Status = entities.TicketStatusPaid
		m.ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(paid, nil)

		if _, err := u.CancelReservation(context.Background(), "t-1", "no show"); !errors.Is(err, ErrTicketNotActive) {
			t.Fatalf("expected ErrTicketNotActive, got %v", err)
		}
	})

	t.Run("success releases the space", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		m.ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(activeTicket, nil)
		m.ticketRepo.EXPECT().Cancel(gomock.Any(), "t-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, exit time.Time) (entities.Ticket, error) {
				done := activeTicket
				done.Status = entities.TicketStatusCancelled
				done.ExitTime = &exit
				return done, nil
			},
		)
		m.lotRepo.EXPECT().AdjustAvailableSpaces(gomock.Any(), "l-1", 1).Return(openLot(), nil)

		cancelled, err := u.CancelReservation(context.Background(), "t-1", "no show")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cancelled.Status != entities.TicketStatusCancelled {
			t.Fatalf("unexpected ticket: %+v", cancelled)
		}
	})
}

func TestReservationManager_GetUserSummary(t *testing.T) {
	t.Run("missing user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, _ := newManager(ctrl, DefaultReservationPolicy())

		if _, err := u.GetUserSummary(context.Background(), "  "); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("aggregates by status and counts only paid spend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		u, m := newManager(ctrl, DefaultReservationPolicy())

		p1, p2 := 40.00, 57.00
		m.ticketRepo.EXPECT().ListByUserID(gomock.Any(), "u-1").Return([]entities.Ticket{
			{ID: "t-1", Status: entities.TicketStatusPaid, Price: &p1},
			{ID: "t-2", Status: entities.TicketStatusPaid, Price: &p2},
			{ID: "t-3", Status: entities.TicketStatusActive},
			{ID: "t-4", Status: entities.TicketStatusCancelled},
			// Finalized but unpaid prices do not count as spend.
			{ID: "t-5", Status: entities.TicketStatusFinalized, Price: &p1},
		}, nil)

		summary, err := u.GetUserSummary(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalTickets != 5 {
			t.Fatalf("expected 5 tickets, got %d", summary.TotalTickets)
		}
		if summary.TotalSpent != 97.00 {
			t.Fatalf("expected total spent 97.00, got %.2f", summary.TotalSpent)
		}
		paid := summary.ByStatus[string(entities.TicketStatusPaid)]
		if paid.Count != 2 || paid.TotalSpent != 97.00 {
			t.Fatalf("unexpected paid group: %+v", paid)
		}
		if summary.ByStatus[string(entities.TicketStatusFinalized)].TotalSpent != 0 {
			t.Fatal("finalized tickets must not contribute to spend")
		}
	})
}
