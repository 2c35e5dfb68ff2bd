package routes

import (
	"parking_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReservations = "/reservations"
	PathPayments     = "/payments"
	PathPenalties    = "/penalties"
	PathUsers        = "/users"
)

func addParkingRoutes(rg *gin.RouterGroup, reservationHandler *handlers.ReservationHandler, paymentHandler *handlers.PaymentHandler, penaltyHandler *handlers.PenaltyHandler) {
	reservations := rg.Group(PathReservations)
	{
		reservations.POST("", reservationHandler.CreateReservation)
		reservations.PATCH("/:ticket_id/finalize", reservationHandler.FinalizeReservation)
		reservations.PATCH("/:ticket_id/cancel", reservationHandler.CancelReservation)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:ticket_id", paymentHandler.ProcessPayment)
		payments.PATCH("/:payment_id/refund", paymentHandler.RefundPayment)
	}

	penalties := rg.Group(PathPenalties)
	{
		penalties.POST("/:ticket_id/time-exceeded", penaltyHandler.AssessTimeExceeded)
		penalties.POST("/:ticket_id/property-damage", penaltyHandler.AssessPropertyDamage)
		penalties.POST("/:ticket_id/mis-parking", penaltyHandler.AssessMisParking)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("/:user_id/summary", reservationHandler.GetUserSummary)
		users.GET("/:user_id/payments", paymentHandler.GetUserPayments)
	}
}
