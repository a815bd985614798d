package stats

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/curtishsu/travelog/internal/domain"
)

// place accumulates everything known about one deduplicated city+country pair.
type place struct {
	city    string
	country string
	trips   map[uuid.UUID]struct{}
	days    map[uuid.UUID]struct{}
	// latestTripStart is the latest start date (YYYY-MM-DD) among the trips
	// that touched this place. Used as the recency tie-break.
	latestTripStart string
}

// aggregateLocations walks every location on a past-or-today day and returns
// the distinct-country count, the distinct-place count, and the single
// most-visited place (nil when nothing qualifies).
//
// Most-visited selection is two-level: largest distinct-trip count first,
// ties broken by the later latestTripStart. A plain first-seen tie-break
// would change results under input reordering, so both levels are explicit.
func aggregateLocations(locations []domain.TripLocation, idx *index, tc temporal) (countries, placeCount int, most *domain.VisitedPlace) {
	countrySet := make(map[string]struct{})
	places := make(map[string]*place)

	for _, loc := range locations {
		day, trip, ok := idx.resolveDay(loc.TripDayID)
		if !ok || !tc.pastOrToday(day) {
			continue
		}
		city := normalize(loc.City)
		country := normalize(loc.Country)
		if city == "" && country == "" {
			continue
		}
		if country != "" {
			countrySet[strings.ToLower(country)] = struct{}{}
		}

		key := strings.ToLower(city) + "|" + strings.ToLower(country)
		p, ok := places[key]
		if !ok {
			p = &place{
				city:    city,
				country: country,
				trips:   make(map[uuid.UUID]struct{}),
				days:    make(map[uuid.UUID]struct{}),
			}
			places[key] = p
		}
		p.trips[trip.ID] = struct{}{}
		p.days[day.ID] = struct{}{}
		if start := dateKey(trip.StartDate); start > p.latestTripStart {
			p.latestTripStart = start
		}
	}

	// Walk keys in sorted order so the selection below is deterministic even
	// when both tie-break levels are equal.
	keys := make([]string, 0, len(places))
	for k := range places {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var best *place
	for _, k := range keys {
		p := places[k]
		switch {
		case best == nil:
			best = p
		case len(p.trips) > len(best.trips):
			best = p
		case len(p.trips) == len(best.trips) && p.latestTripStart > best.latestTripStart:
			best = p
		}
	}

	if best != nil {
		most = &domain.VisitedPlace{
			City:      best.city,
			Country:   best.country,
			TripCount: len(best.trips),
			DaysHere:  len(best.days),
		}
	}
	return len(countrySet), len(places), most
}

// normalize collapses a nullable text field to a trimmed string, treating
// nil and whitespace-only values as empty. Applied once at ingestion so no
// aggregator repeats the nil handling.
func normalize(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
