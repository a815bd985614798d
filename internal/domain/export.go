package domain

// ExportRow is a single row in the full-journal export.
// It is a flat, denormalized view: one row per trip day, with trip fields
// repeated for every day on that trip. Trips with no days yield one row with
// zero values for all day fields.
//
// Dates are "2006-01-02" formatted strings. Locations are pre-joined
// "city, region, country" strings with empty parts dropped; Hashtags are
// sorted alphabetically. Callers that need a single cell (e.g. CSV) should
// join with "|".
type ExportRow struct {
	// Trip fields — repeated for every day on the trip.
	TripID        string
	TripName      string
	TripStartDate string
	TripEndDate   string
	TripTypes     []string

	// Day fields — zero values when the trip has no days.
	DayIndex int
	Date     string
	DayNotes string

	Locations []string
	Hashtags  []string
}
