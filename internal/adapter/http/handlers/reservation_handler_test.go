package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"parking_xpto/internal/adapter/http/handlers/mocks"
	"parking_xpto/internal/domain/entities"
	"parking_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReservationHandler_CreateReservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		manager := mocks.NewMockIReservationManager(ctrl)
		h := NewReservationHandler(manager)

		r := gin.New()
		r.POST("/v1/reservations", h.CreateReservation)

		req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		manager := mocks.NewMockIReservationManager(ctrl)
		h := NewReservationHandler(manager)

		r := gin.New()
		r.POST("/v1/reservations", h.CreateReservation)

		req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewBufferString(`{"user_id":"u-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lot full maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		manager := mocks.NewMockIReservationManager(ctrl)
		h := NewReservationHandler(manager)

		manager.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(entities.Ticket{}, usecase.ErrLotFull)

		r := gin.New()
		r.POST("/v1/reservations", h.CreateReservation)

		body := `{"user_id":"u-1","license_plate":"abc1d23","lot_id":"l-1","type":"hourly","declared_hours":3}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["code"] != "LOT_FULL" || resp["success"] != false {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("success normalizes the plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		manager := mocks.NewMockIReservationManager(ctrl)
		h := NewReservationHandler(manager)

		manager.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateReservationRequest) (entities.Ticket, error) {
				if cmd.LicensePlate != "ABC1D23" || cmd.Type != entities.ReservationTypeHourly {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Ticket{ID: "t-1", Code: "PKR-20260310080000-AB12CD", Status: entities.TicketStatusActive}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/reservations", h.CreateReservation)

		body := `{"user_id":"u-1","license_plate":" abc1d23 ","lot_id":"l-1","type":"Hourly","declared_hours":3}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reservations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				ID   string `json:"id"`
				Code string `json:"code"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !resp.Success || resp.Data.ID != "t-1" || resp.Data.Code == "" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReservationHandler_FinalizeReservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body bills by elapsed time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		manager := mocks.NewMockIReservationManager(ctrl)
		h := NewReservationHandler(manager)

		manager.EXPECT().FinalizeReservation(gomock.Any(), "t-1", nil).Return(entities.Ticket{ID: "t-1", Status: entities.TicketStatusFinalized}, nil)

		r := gin.New()
		r.PATCH("/v1/reservations/:ticket_id/finalize", h.FinalizeReservation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/reservations/t-1/finalize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("manual amount is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		manager := mocks.NewMockIReservationManager(ctrl)
		h := NewReservationHandler(manager)

		manager.EXPECT().FinalizeReservation(gomock.Any(), "t-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, amount *float64) (entities.Ticket, error) {
				if amount == nil || *amount != 12.34 {
					t.Fatalf("expected manual amount 12.34, got %v", amount)
				}
				return entities.Ticket{ID: "t-1", Status: entities.TicketStatusFinalized}, nil
			},
		)

		r := gin.New()
		r.PATCH("/v1/reservations/:ticket_id/finalize", h.FinalizeReservation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/reservations/t-1/finalize", bytes.NewBufferString(`{"amount":12.34}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("not active maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		manager := mocks.NewMockIReservationManager(ctrl)
		h := NewReservationHandler(manager)

		manager.EXPECT().FinalizeReservation(gomock.Any(), "t-1", nil).Return(entities.Ticket{}, usecase.ErrTicketNotActive)

		r := gin.New()
		r.PATCH("/v1/reservations/:ticket_id/finalize", h.FinalizeReservation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/reservations/t-1/finalize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestReservationHandler_CancelReservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ticket not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		manager := mocks.NewMockIReservationManager(ctrl)
		h := NewReservationHandler(manager)

		manager.EXPECT().CancelReservation(gomock.Any(), "missing", "").Return(entities.Ticket{}, usecase.ErrTicketNotFound)

		r := gin.New()
		r.PATCH("/v1/reservations/:ticket_id/cancel", h.CancelReservation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/reservations/missing/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		manager := mocks.NewMockIReservationManager(ctrl)
		h := NewReservationHandler(manager)

		manager.EXPECT().CancelReservation(gomock.Any(), "t-1", "no show").Return(entities.Ticket{ID: "t-1", Status: entities.TicketStatusCancelled}, nil)

		r := gin.New()
		r.PATCH("/v1/reservations/:ticket_id/cancel", h.CancelReservation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/reservations/t-1/cancel", bytes.NewBufferString(`{"reason":"no show"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestReservationHandler_GetUserSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		manager := mocks.NewMockIReservationManager(ctrl)
		h := NewReservationHandler(manager)

		manager.EXPECT().GetUserSummary(gomock.Any(), "u-1").Return(usecase.UserSummary{
			UserID:       "u-1",
			TotalTickets: 3,
			TotalSpent:   97.00,
			ByStatus: map[string]usecase.UserSummaryGroup{
				"paid": {Count: 2, TotalSpent: 97.00},
			},
		}, nil)

		r := gin.New()
		r.GET("/v1/users/:user_id/summary", h.GetUserSummary)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/u-1/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Data struct {
				TotalTickets int     `json:"total_tickets"`
				TotalSpent   float64 `json:"total_spent"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp.Data.TotalTickets != 3 || resp.Data.TotalSpent != 97.00 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapReservationError(t *testing.T) {
	cases := []struct {
		err        error
		wantCode   string
		wantStatus int
	}{
		{usecase.ErrInvalidReservation, "INVALID_RESERVATION", http.StatusBadRequest},
		{usecase.ErrUserNotFound, "USER_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrUserInactive, "USER_INACTIVE", http.StatusConflict},
		{usecase.ErrVehicleNotFound, "VEHICLE_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrVehicleNotOwned, "VEHICLE_NOT_OWNED", http.StatusConflict},
		{usecase.ErrLotNotFound, "LOT_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrLotInactive, "LOT_INACTIVE", http.StatusConflict},
		{usecase.ErrLotFull, "LOT_FULL", http.StatusConflict},
		{usecase.ErrDuplicateActiveReservation, "DUPLICATE_ACTIVE_RESERVATION", http.StatusConflict},
		{usecase.ErrTicketNotFound, "TICKET_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrTicketNotActive, "TICKET_NOT_ACTIVE", http.StatusConflict},
		{errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		appErr := mapReservationError(tc.err)
		if appErr.Code != tc.wantCode || appErr.HTTPStatus != tc.wantStatus {
			t.Fatalf("err %v: got (%s, %d), want (%s, %d)", tc.err, appErr.Code, appErr.HTTPStatus, tc.wantCode, tc.wantStatus)
		}
	}
}
