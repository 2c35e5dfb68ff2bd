package request

import (
	"strings"
	"time"
)

// PenaltyTimeExceededRequest reports the observed exit moment. When
// `exit_time` is empty the server clock is used.
type PenaltyTimeExceededRequest struct {
	ExitTime string `json:"exit_time"`
}

// ResolveExitTime parses the RFC3339 exit time, falling back to now.
func (r PenaltyTimeExceededRequest) ResolveExitTime() (time.Time, error) {
	raw := strings.TrimSpace(r.ExitTime)
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse(time.RFC3339, raw)
}

// PenaltyPropertyDamageRequest carries the incident description and an
// optional assessed amount. Amount <= 0 falls back to the standard fee.
type PenaltyPropertyDamageRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount"`
}

// PenaltyMisParkingRequest names the violation kind (double_parking,
// disabled_spot, blocking_exit, out_of_lines, forbidden_zone).
type PenaltyMisParkingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (r PenaltyMisParkingRequest) ResolveReason() string {
	return strings.ToLower(strings.TrimSpace(r.Reason))
}
