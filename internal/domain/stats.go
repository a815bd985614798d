package domain

import "github.com/google/uuid"

// StatsSummary is the aggregated statistics for one user's full journal.
// It is a plain value object built fresh on every computation; nothing in it
// is shared or cached between calls. All slices are non-nil so the JSON
// encoding always produces arrays, never null.
type StatsSummary struct {
	TotalTrips           int               `json:"totalTrips"`
	TotalTravelDays      int               `json:"totalTravelDays"`
	CountriesVisited     int               `json:"countriesVisited"`
	LocationsVisited     int               `json:"locationsVisited"`
	MostVisitedLocation  *VisitedPlace     `json:"mostVisitedLocation"`
	HashtagDistribution  []HashtagBucket   `json:"hashtagDistribution"`
	TripTypeDistribution []TripTypeBucket  `json:"tripTypeDistribution"`
	TripTrendsYear       []TrendBucket     `json:"tripTrendsYear"`
	TripTrendsMonth      []TrendBucket     `json:"tripTrendsMonth"`
	TravelDayTrendsYear  []TravelDayBucket `json:"travelDayTrendsYear"`
	TravelDayTrendsMonth []TravelDayBucket `json:"travelDayTrendsMonth"`
}

// VisitedPlace is the most-visited city/country pair.
// DaysHere counts the distinct days that touched the place.
type VisitedPlace struct {
	City      string `json:"city"`
	Country   string `json:"country"`
	TripCount int    `json:"tripCount"`
	DaysHere  int    `json:"daysHere"`
}

// TripRef identifies a trip inside a distribution or trend bucket.
type TripRef struct {
	TripID   uuid.UUID `json:"tripId"`
	TripName string    `json:"tripName"`
}

// TripDayRef identifies one day of a trip inside a hashtag bucket.
type TripDayRef struct {
	TripID   uuid.UUID `json:"tripId"`
	TripName string    `json:"tripName"`
	DayIndex int       `json:"dayIndex"`
}

// TravelDayRef identifies one day of a trip inside a travel-day trend bucket.
// Date is the day's calendar date formatted as YYYY-MM-DD.
type TravelDayRef struct {
	TripID   uuid.UUID `json:"tripId"`
	TripName string    `json:"tripName"`
	DayIndex int       `json:"dayIndex"`
	Date     string    `json:"date"`
}

// HashtagBucket is one entry of the hashtag distribution.
// DayCount is the number of distinct days carrying the hashtag on completed
// trips; TripDays lists those days sorted by trip name.
type HashtagBucket struct {
	Hashtag  string       `json:"hashtag"`
	DayCount int          `json:"dayCount"`
	TripDays []TripDayRef `json:"tripDays"`
}

// TripTypeBucket is one entry of the trip-type distribution.
// TripCount is the number of distinct completed trips carrying the type;
// Trips lists them sorted by name.
type TripTypeBucket struct {
	Type      string    `json:"type"`
	TripCount int       `json:"tripCount"`
	Trips     []TripRef `json:"trips"`
}

// TrendBucket is one period of the trips-per-period series.
// Bucket is "YYYY" for the year series and "YYYY-MM" for the month series.
type TrendBucket struct {
	Bucket    string    `json:"bucket"`
	TripCount int       `json:"tripCount"`
	Trips     []TripRef `json:"trips"`
}

// TravelDayBucket is one period of the travel-days-per-period series.
// DayCount is the number of past-or-today days falling in the period.
type TravelDayBucket struct {
	Bucket   string         `json:"bucket"`
	DayCount int            `json:"dayCount"`
	Trips    []TripRef      `json:"trips"`
	TripDays []TravelDayRef `json:"tripDays"`
}
