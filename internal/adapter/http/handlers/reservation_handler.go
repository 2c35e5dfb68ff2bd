package handlers

import (
	"errors"
	"io"
	request "parking_xpto/internal/adapter/http/dto/request"
	response "parking_xpto/internal/adapter/http/dto/response"
	"parking_xpto/internal/usecase"
	"parking_xpto/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReservationPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid reservation payload", http.StatusBadRequest)
	errMissingTicketID           = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing ticket id", http.StatusBadRequest)
	errMissingUserID             = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing user id", http.StatusBadRequest)
)

// ReservationHandler handles HTTP requests for the ticket lifecycle.

type ReservationHandler struct {
	manager usecase.IReservationManager
}

func NewReservationHandler(manager usecase.IReservationManager) *ReservationHandler {
	return &ReservationHandler{manager: manager}
}

// CreateReservation issues a new parking ticket.
//
// The returned estimated_price is a quote; the binding amount is computed
// at finalize time from the actual stay.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var payload request.ReservationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReservationPayload.HTTPStatus, errInvalidReservationPayload.ToHTTPError())
		return
	}

	ticket, err := h.manager.CreateReservation(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.FromTicket(ticket), "Reservation created"))
}

// FinalizeReservation closes an active ticket and computes the amount due.
// The body is optional; when present, `amount` overrides the computed value.
func (h *ReservationHandler) FinalizeReservation(c *gin.Context) {
	ticketID := strings.TrimSpace(c.Param("ticket_id"))
	if ticketID == "" {
		c.JSON(errMissingTicketID.HTTPStatus, errMissingTicketID.ToHTTPError())
		return
	}

	var payload request.ReservationFinalizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidReservationPayload.HTTPStatus, errInvalidReservationPayload.ToHTTPError())
		return
	}

	ticket, err := h.manager.FinalizeReservation(c.Request.Context(), ticketID, payload.Amount)
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromTicket(ticket), "Reservation finalized"))
}

// CancelReservation voids an active ticket without billing.
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	ticketID := strings.TrimSpace(c.Param("ticket_id"))
	if ticketID == "" {
		c.JSON(errMissingTicketID.HTTPStatus, errMissingTicketID.ToHTTPError())
		return
	}

	var payload request.ReservationCancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidReservationPayload.HTTPStatus, errInvalidReservationPayload.ToHTTPError())
		return
	}

	ticket, err := h.manager.CancelReservation(c.Request.Context(), ticketID, payload.Reason)
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromTicket(ticket), "Reservation cancelled"))
}

// GetUserSummary aggregates a user's tickets by status.
func (h *ReservationHandler) GetUserSummary(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("user_id"))
	if userID == "" {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	summary, err := h.manager.GetUserSummary(c.Request.Context(), userID)
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromUserSummary(summary), ""))
}

func mapReservationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReservation):
		return pkg.NewDomainErrorSimple("INVALID_RESERVATION", "Invalid reservation data", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserInactive):
		return pkg.NewDomainErrorSimple("USER_INACTIVE", "User is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotOwned):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_OWNED", "Vehicle does not belong to this user", http.StatusConflict)
	case errors.Is(err, usecase.ErrLotNotFound):
		return pkg.NewDomainErrorSimple("LOT_NOT_FOUND", "Parking lot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLotInactive):
		return pkg.NewDomainErrorSimple("LOT_INACTIVE", "Parking lot is not operating", http.StatusConflict)
	case errors.Is(err, usecase.ErrLotFull):
		return pkg.NewDomainErrorSimple("LOT_FULL", "Parking lot has no available spaces", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateActiveReservation):
		return pkg.NewDomainErrorSimple("DUPLICATE_ACTIVE_RESERVATION", "Vehicle already has an active reservation on this lot", http.StatusConflict)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTicketNotActive):
		return pkg.NewDomainErrorSimple("TICKET_NOT_ACTIVE", "Ticket is not active", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
