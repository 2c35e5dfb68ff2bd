package handlers

import (
	"errors"
	"io"
	request "parking_xpto/internal/adapter/http/dto/request"
	response "parking_xpto/internal/adapter/http/dto/response"
	"parking_xpto/internal/domain/entities"
	"parking_xpto/internal/usecase"
	"parking_xpto/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPenaltyPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid penalty payload", http.StatusBadRequest)
)

// PenaltyHandler handles HTTP requests for violation assessment.

type PenaltyHandler struct {
	assessor usecase.IPenaltyAssessor
}

func NewPenaltyHandler(assessor usecase.IPenaltyAssessor) *PenaltyHandler {
	return &PenaltyHandler{assessor: assessor}
}

// AssessTimeExceeded checks the stay against the declared window plus
// grace and records a penalty when the ticket overstayed. A stay within
// the allowance answers 200 with no penalty.
func (h *PenaltyHandler) AssessTimeExceeded(c *gin.Context) {
	ticketID := strings.TrimSpace(c.Param("ticket_id"))
	if ticketID == "" {
		c.JSON(errMissingTicketID.HTTPStatus, errMissingTicketID.ToHTTPError())
		return
	}

	var payload request.PenaltyTimeExceededRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPenaltyPayload.HTTPStatus, errInvalidPenaltyPayload.ToHTTPError())
		return
	}

	exitTime, err := payload.ResolveExitTime()
	if err != nil {
		c.JSON(errInvalidPenaltyPayload.HTTPStatus, errInvalidPenaltyPayload.ToHTTPError())
		return
	}

	penalty, err := h.assessor.AssessTimeExceeded(c.Request.Context(), ticketID, exitTime)
	if err != nil {
		appErr := mapPenaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if penalty == nil {
		c.JSON(http.StatusOK, response.Success(nil, "No penalty due"))
		return
	}

	h.recordPenalty(c, *penalty)
}

// AssessPropertyDamage records a damage fine against a ticket.
func (h *PenaltyHandler) AssessPropertyDamage(c *gin.Context) {
	ticketID := strings.TrimSpace(c.Param("ticket_id"))
	if ticketID == "" {
		c.JSON(errMissingTicketID.HTTPStatus, errMissingTicketID.ToHTTPError())
		return
	}

	var payload request.PenaltyPropertyDamageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPenaltyPayload.HTTPStatus, errInvalidPenaltyPayload.ToHTTPError())
		return
	}

	penalty, err := h.assessor.AssessPropertyDamage(c.Request.Context(), ticketID, payload.Description, payload.Amount)
	if err != nil {
		appErr := mapPenaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.recordPenalty(c, *penalty)
}

// AssessMisParking records a fixed fine for an improperly parked vehicle.
func (h *PenaltyHandler) AssessMisParking(c *gin.Context) {
	ticketID := strings.TrimSpace(c.Param("ticket_id"))
	if ticketID == "" {
		c.JSON(errMissingTicketID.HTTPStatus, errMissingTicketID.ToHTTPError())
		return
	}

	var payload request.PenaltyMisParkingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPenaltyPayload.HTTPStatus, errInvalidPenaltyPayload.ToHTTPError())
		return
	}

	penalty, err := h.assessor.AssessMisParking(c.Request.Context(), ticketID, payload.ResolveReason())
	if err != nil {
		appErr := mapPenaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.recordPenalty(c, *penalty)
}

func (h *PenaltyHandler) recordPenalty(c *gin.Context, penalty entities.Penalty) {
	recorded, err := h.assessor.Record(c.Request.Context(), penalty)
	if err != nil {
		appErr := mapPenaltyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.FromPenalty(recorded), "Penalty recorded"))
}

func mapPenaltyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPenalty):
		return pkg.NewDomainErrorSimple("INVALID_PENALTY", "Invalid penalty data", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPenaltyTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLotNotFound):
		return pkg.NewDomainErrorSimple("LOT_NOT_FOUND", "Parking lot not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
