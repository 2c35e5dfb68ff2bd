package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"parking_xpto/internal/domain/entities"
	mock_interfaces "parking_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPenaltyAssessor_AssessTimeExceeded(t *testing.T) {
	entry := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	hourlyTicket := entities.Ticket{
		ID:            "t-1",
		UserID:        "u-1",
		LotID:         "l-1",
		Type:          entities.ReservationTypeHourly,
		EntryTime:     entry,
		DeclaredHours: 2,
		Status:        entities.TicketStatusActive,
	}

	t.Run("ticket not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		a := NewPenaltyAssessor(ticketRepo, nil, nil, NewTariffCalculator())

		ticketRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Ticket{}, nil)

		_, err := a.AssessTimeExceeded(context.Background(), "missing", entry.Add(5*time.Hour))
		if !errors.Is(err, ErrPenaltyTicketNotFound) {
			t.Fatalf("expected ErrPenaltyTicketNotFound, got %v", err)
		}
	})

	t.Run("within declared hours plus grace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		a := NewPenaltyAssessor(ticketRepo, nil, nil, NewTariffCalculator())

		ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(hourlyTicket, nil)

		// 2h declared + 15min grace; exit at 2h10m is inside the window.
		p, err := a.AssessTimeExceeded(context.Background(), "t-1", entry.Add(2*time.Hour+10*time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p != nil {
			t.Fatalf("expected no penalty, got %+v", p)
		}
	})

	t.Run("overstay bills excess hours with multiplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		lotRepo := mock_interfaces.NewMockILotRepository(ctrl)
		a := NewPenaltyAssessor(ticketRepo, lotRepo, nil, NewTariffCalculator())

		ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(hourlyTicket, nil)
		lotRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lot{ID: "l-1", HourlyRate: 10.00}, nil)

		// 1h30m past the allowance rounds to 2 excess hours:
		// 10.00 * 2 * 1.5 = 30.00.
		p, err := a.AssessTimeExceeded(context.Background(), "t-1", entry.Add(2*time.Hour+15*time.Minute+90*time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected a penalty")
		}
		if p.Type != entities.PenaltyTypeTimeExceeded || p.Amount != 30.00 {
			t.Fatalf("unexpected penalty: %+v", p)
		}
		if p.TicketID != "t-1" || p.UserID != "u-1" || p.Status != entities.PenaltyStatusActive {
			t.Fatalf("unexpected penalty fields: %+v", p)
		}
	})

	t.Run("monthly allowance is declared days plus thirty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		a := NewPenaltyAssessor(ticketRepo, nil, nil, NewTariffCalculator())

		monthly := hourlyTicket
		monthly.Type = entities.ReservationTypeMonthly
		monthly.DeclaredHours = 0
		monthly.DeclaredDays = 45
		ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(monthly, nil)

		// 45 declared days + 30 days grace; day 70 is inside the window.
		p, err := a.AssessTimeExceeded(context.Background(), "t-1", entry.Add(70*24*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p != nil {
			t.Fatalf("expected no penalty inside the declared term plus grace, got %+v", p)
		}
	})

	t.Run("monthly overstay past the grace window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		lotRepo := mock_interfaces.NewMockILotRepository(ctrl)
		a := NewPenaltyAssessor(ticketRepo, lotRepo, nil, NewTariffCalculator())

		monthly := hourlyTicket
		monthly.Type = entities.ReservationTypeMonthly
		monthly.DeclaredHours = 0
		monthly.DeclaredDays = 30
		ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(monthly, nil)
		lotRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lot{ID: "l-1", HourlyRate: 10.00}, nil)

		// 30 declared + 30 grace days, then 1h over: 10.00 * 1 * 1.5.
		p, err := a.AssessTimeExceeded(context.Background(), "t-1", entry.Add(60*24*time.Hour+time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected a penalty")
		}
		if p.Amount != 15.00 {
			t.Fatalf("expected amount 15.00, got %.2f", p.Amount)
		}
	})

	t.Run("lot missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		lotRepo := mock_interfaces.NewMockILotRepository(ctrl)
		a := NewPenaltyAssessor(ticketRepo, lotRepo, nil, NewTariffCalculator())

		ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(hourlyTicket, nil)
		lotRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lot{}, nil)

		_, err := a.AssessTimeExceeded(context.Background(), "t-1", entry.Add(10*time.Hour))
		if !errors.Is(err, ErrLotNotFound) {
			t.Fatalf("expected ErrLotNotFound, got %v", err)
		}
	})
}

func TestPenaltyAssessor_AssessPropertyDamage(t *testing.T) {
	ticket := entities.Ticket{ID: "t-1", UserID: "u-1", LotID: "l-1"}

	t.Run("explicit amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		a := NewPenaltyAssessor(ticketRepo, nil, nil, NewTariffCalculator())

		ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(ticket, nil)

		p, err := a.AssessPropertyDamage(context.Background(), "t-1", "scratched gate arm", 230.00)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Amount != 230.00 || p.Description != "scratched gate arm" {
			t.Fatalf("unexpected penalty: %+v", p)
		}
	})

	t.Run("non-positive amount falls back to default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		a := NewPenaltyAssessor(ticketRepo, nil, nil, NewTariffCalculator())

		ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(ticket, nil)

		p, err := a.AssessPropertyDamage(context.Background(), "t-1", "", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Amount != 100.00 {
			t.Fatalf("expected default amount 100.00, got %.2f", p.Amount)
		}
		if p.Description == "" {
			t.Fatal("expected a default description")
		}
	})
}

func TestPenaltyAssessor_AssessMisParking(t *testing.T) {
	ticket := entities.Ticket{ID: "t-1", UserID: "u-1", LotID: "l-1"}

	cases := []struct {
		reason string
		want   float64
	}{
		{"double_parking", 25.00},
		{"disabled_spot", 50.00},
		{"blocking_exit", 35.00},
		{"out_of_lines", 15.00},
		{"forbidden_zone", 30.00},
		{"DISABLED_SPOT", 50.00},
		{"something_else", 20.00},
	}

	for _, tc := range cases {
		t.Run(tc.reason, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
			a := NewPenaltyAssessor(ticketRepo, nil, nil, NewTariffCalculator())

			ticketRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(ticket, nil)

			p, err := a.AssessMisParking(context.Background(), "t-1", tc.reason)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Amount != tc.want {
				t.Fatalf("expected %.2f, got %.2f", tc.want, p.Amount)
			}
		})
	}
}

func TestPenaltyAssessor_Record(t *testing.T) {
	t.Run("invalid descriptor", func(t *testing.T) {
		a := NewPenaltyAssessor(nil, nil, nil, NewTariffCalculator())
		_, err := a.Record(context.Background(), entities.Penalty{})
		if !errors.Is(err, ErrInvalidPenalty) {
			t.Fatalf("expected ErrInvalidPenalty, got %v", err)
		}
	})

	t.Run("fills defaults and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		penaltyRepo := mock_interfaces.NewMockIPenaltyRepository(ctrl)
		a := NewPenaltyAssessor(nil, nil, penaltyRepo, NewTariffCalculator())

		penaltyRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Penalty{})).DoAndReturn(
			func(_ context.Context, p entities.Penalty) (entities.Penalty, error) {
				if p.ID == "" || p.Status != entities.PenaltyStatusActive || p.CreatedAt.IsZero() {
					t.Fatalf("expected defaults to be filled: %+v", p)
				}
				return p, nil
			},
		)

		recorded, err := a.Record(context.Background(), entities.Penalty{TicketID: "t-1", Amount: 25.00})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if recorded.TicketID != "t-1" {
			t.Fatalf("unexpected record: %+v", recorded)
		}
	})
}
