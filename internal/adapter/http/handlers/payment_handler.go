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
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)
	errMissingPaymentID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing payment id", http.StatusBadRequest)
	errInvalidHistoryFilter  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment history filter", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for charging tickets and refunds.

type PaymentHandler struct {
	processor usecase.IPaymentProcessor
}

func NewPaymentHandler(processor usecase.IPaymentProcessor) *PaymentHandler {
	return &PaymentHandler{processor: processor}
}

// ProcessPayment charges the amount owed on a ticket.
//
// A gateway decline is a settled outcome, not a server fault: the payment
// record comes back with status failed and the client gets 402.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	ticketID := strings.TrimSpace(c.Param("ticket_id"))
	if ticketID == "" {
		c.JSON(errMissingTicketID.HTTPStatus, errMissingTicketID.ToHTTPError())
		return
	}

	var payload request.PaymentProcessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.processor.ProcessPayment(c.Request.Context(), ticketID, payload.ToPaymentData())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if payment.Status == entities.PaymentStatusFailed {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"success": false,
			"message": payment.FailureReason,
			"code":    "PAYMENT_FAILED",
			"data":    response.FromPayment(payment),
		})
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.FromPayment(payment), "Payment processed"))
}

// RefundPayment reverses a successful payment.
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	paymentID := strings.TrimSpace(c.Param("payment_id"))
	if paymentID == "" {
		c.JSON(errMissingPaymentID.HTTPStatus, errMissingPaymentID.ToHTTPError())
		return
	}

	// Body is optional; an empty body means a refund with no reason.
	var payload request.PaymentRefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.processor.RefundPayment(c.Request.Context(), paymentID, payload.Reason)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromPayment(payment), "Payment refunded"))
}

// GetUserPayments lists a user's payments, newest first. Supports
// `status`, `from` and `to` (RFC3339) query filters.
func (h *PaymentHandler) GetUserPayments(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("user_id"))
	if userID == "" {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	filter, err := parseHistoryFilter(c)
	if err != nil {
		c.JSON(errInvalidHistoryFilter.HTTPStatus, errInvalidHistoryFilter.ToHTTPError())
		return
	}

	payments, err := h.processor.GetPaymentHistory(c.Request.Context(), userID, filter)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromPayments(payments), ""))
}

func parseHistoryFilter(c *gin.Context) (usecase.PaymentHistoryFilter, error) {
	var filter usecase.PaymentHistoryFilter

	filter.Status = entities.PaymentStatus(strings.TrimSpace(c.Query("status")))

	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.To = &to
	}

	return filter, nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentData):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_DATA", "Invalid payment data", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTicketAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Ticket is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTicketState):
		return pkg.NewDomainErrorSimple("INVALID_TICKET_STATE", "Ticket cannot be paid in its current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidRefundState):
		return pkg.NewDomainErrorSimple("INVALID_REFUND_STATE", "Only successful payments can be refunded", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayFailure):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
