// Package stats computes the aggregated statistics summary for one user's
// full journal. It is pure computation: it receives in-memory record sets
// and a reference date and returns a fresh domain.StatsSummary. No I/O, no
// clock reads, no state shared between calls — safe for concurrent use.
//
// Input rows are assumed to already belong to a single user; rows whose
// foreign keys do not resolve within the input set are silently skipped.
package stats

import (
	"time"

	"github.com/curtishsu/travelog/internal/domain"
)

// Input is the flat, un-joined record set the engine operates on.
// The engine never mutates any of the slices.
type Input struct {
	Trips     []domain.Trip
	Days      []domain.TripDay
	Locations []domain.TripLocation
	Hashtags  []domain.TripDayHashtag
	Types     []domain.TripType
}

// Compute builds the full statistics summary from in, classifying dates
// against today (truncated to day precision). It is the only entry point;
// everything below it is deterministic regardless of input row order.
func Compute(in Input, today time.Time) domain.StatsSummary {
	// No trips means nothing downstream can produce a value — short-circuit
	// to the zero summary instead of running the aggregators over empty maps.
	if len(in.Trips) == 0 {
		return emptySummary()
	}

	idx := newIndex(in)
	tc := newTemporal(today)

	s := emptySummary()
	s.TotalTrips = len(in.Trips)
	s.TotalTravelDays = countTravelDays(idx, tc)

	s.CountriesVisited, s.LocationsVisited, s.MostVisitedLocation = aggregateLocations(in.Locations, idx, tc)
	s.HashtagDistribution = hashtagDistribution(in.Hashtags, idx, tc)
	s.TripTypeDistribution = tripTypeDistribution(in.Types, idx, tc)

	s.TripTrendsYear = tripTrends(in.Trips, idx, byYear)
	s.TripTrendsMonth = tripTrends(in.Trips, idx, byMonth)
	s.TravelDayTrendsYear = travelDayTrends(idx, tc, byYear)
	s.TravelDayTrendsMonth = travelDayTrends(idx, tc, byMonth)

	return s
}

// countTravelDays counts distinct calendar dates among past-or-today days.
// Dedupe is by date string, not by day row, so malformed input carrying the
// same date twice still counts it once.
func countTravelDays(idx *index, tc temporal) int {
	dates := make(map[string]struct{})
	for _, d := range idx.days {
		if tc.pastOrToday(d) {
			dates[dateKey(d.Date)] = struct{}{}
		}
	}
	return len(dates)
}

// emptySummary returns a summary with zero counts and empty (non-nil)
// collections, so JSON encoding yields [] rather than null.
func emptySummary() domain.StatsSummary {
	return domain.StatsSummary{
		HashtagDistribution:  []domain.HashtagBucket{},
		TripTypeDistribution: []domain.TripTypeBucket{},
		TripTrendsYear:       []domain.TrendBucket{},
		TripTrendsMonth:      []domain.TrendBucket{},
		TravelDayTrendsYear:  []domain.TravelDayBucket{},
		TravelDayTrendsMonth: []domain.TravelDayBucket{},
	}
}
