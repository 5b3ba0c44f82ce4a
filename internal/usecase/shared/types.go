package shared

import "github.com/google/uuid"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Actor is the authenticated caller as seen by the use cases.
type Actor struct {
	UserID uuid.UUID
	BoatID *uuid.UUID
	ClubID uuid.UUID
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// ActsForBoat: admins act for every boat, members only for their own.
func (a Actor) ActsForBoat(boatID uuid.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	return a.BoatID != nil && *a.BoatID == boatID
}
