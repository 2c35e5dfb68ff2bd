package entities

import "time"

// Vehicle is a persistence-layer collaborator resolved by license
// plate; the core only checks ownership against the requesting user.
type Vehicle struct {
	ID           string    `json:"id"`
	LicensePlate string    `json:"license_plate"`
	OwnerID      string    `json:"owner_id"`
	Model        string    `json:"model,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
