package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripDay is one calendar day of a trip. Every trip has exactly one TripDay
// per date in its inclusive start..end range; the service layer regenerates
// the set whenever the trip's dates change, so the date↔index correspondence
// can be assumed everywhere downstream.
type TripDay struct {
	ID     uuid.UUID `json:"id"`
	TripID uuid.UUID `json:"trip_id"`
	Date   time.Time `json:"date"`
	// DayIndex is 1-based and unique within a trip.
	DayIndex  int       `json:"day_index"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
