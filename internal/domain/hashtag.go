package domain

import "github.com/google/uuid"

// TripDayHashtag links a hashtag to one day of a trip.
// Hashtags are stored lowercase without the leading '#'; the same hashtag on
// the same day is stored (and counted) once.
type TripDayHashtag struct {
	TripDayID uuid.UUID `json:"trip_day_id"`
	Hashtag   string    `json:"hashtag"`
}

// TripType is a user-assigned category for a trip ("adventure", "work", ...).
// A trip may carry multiple types; the same type on the same trip is stored once.
type TripType struct {
	TripID uuid.UUID `json:"trip_id"`
	Type   string    `json:"type"`
}
