package usecase

import (
	"os"
	"strings"
)

// ReservationPolicy names the business rules that were toggleable in
// the product: rejecting a second active reservation for the same
// vehicle on the same lot, and taking a space at creation time instead
// of entry. Both default to enabled; when DecrementOnCreate is off,
// finalize/cancel/payment do not release spaces either, so the
// available counter stays balanced.
type ReservationPolicy struct {
	RejectDuplicateActive bool
	DecrementOnCreate     bool
}

func DefaultReservationPolicy() ReservationPolicy {
	return ReservationPolicy{RejectDuplicateActive: true, DecrementOnCreate: true}
}

// PolicyFromEnv reads RESERVATION_REJECT_DUPLICATE_ACTIVE and
// RESERVATION_DECREMENT_ON_CREATE; unset keeps the default (enabled).
func PolicyFromEnv() ReservationPolicy {
	p := DefaultReservationPolicy()
	p.RejectDuplicateActive = boolEnvDefault("RESERVATION_REJECT_DUPLICATE_ACTIVE", p.RejectDuplicateActive)
	p.DecrementOnCreate = boolEnvDefault("RESERVATION_DECREMENT_ON_CREATE", p.DecrementOnCreate)
	return p
}

func boolEnvDefault(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
