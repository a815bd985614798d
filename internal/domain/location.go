package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripLocation is a place visited on a particular day of a trip.
// A day may have zero, one, or many locations.
// City, Region, and Country are all optional; nil and empty string are
// treated the same by the stats engine.
type TripLocation struct {
	ID        uuid.UUID `json:"id"`
	TripDayID uuid.UUID `json:"trip_day_id"`
	City      *string   `json:"city,omitempty"`
	Region    *string   `json:"region,omitempty"`
	Country   *string   `json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
