// Package domain contains the core data types for the Travelog application.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (stats, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single journaled trip from start to finish.
// A trip is the top-level aggregate; days belong to a trip, and locations
// and hashtags belong to days.
//
// StartDate and EndDate are calendar dates (midnight UTC). EndDate is always
// on or after StartDate — the service layer rejects anything else.
type Trip struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Days returns the number of calendar days the trip spans, inclusive.
// A one-day trip (StartDate == EndDate) returns 1.
func (t Trip) Days() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}
