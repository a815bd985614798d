package stats

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/curtishsu/travelog/internal/domain"
)

// granularity maps a date to its period bucket key and knows how to order
// the resulting bucket keys.
type granularity struct {
	key func(time.Time) string
	// less orders bucket keys ascending. Year buckets compare numerically,
	// month buckets compare as strings; the two orderings agree for
	// well-formed zero-padded keys, but the distinction is kept on purpose
	// so malformed keys would surface differently per series.
	less func(a, b string) bool
}

var byYear = granularity{
	key: func(t time.Time) string { return t.Format("2006") },
	less: func(a, b string) bool {
		ai, _ := strconv.Atoi(a)
		bi, _ := strconv.Atoi(b)
		return ai < bi
	},
}

var byMonth = granularity{
	key:  func(t time.Time) string { return t.Format("2006-01") },
	less: func(a, b string) bool { return a < b },
}

// tripTrends assigns every trip (regardless of completion) to exactly one
// bucket: the dominant bucket among the trip's own days, i.e. the period
// containing the most of them. Ties go to the smaller bucket string. A trip
// with no days falls back to its start-date bucket.
func tripTrends(trips []domain.Trip, idx *index, g granularity) []domain.TrendBucket {
	buckets := make(map[string]map[uuid.UUID]domain.TripRef)

	for _, trip := range trips {
		bucket := dominantBucket(idx.daysByTrip[trip.ID], trip.StartDate, g)
		b, ok := buckets[bucket]
		if !ok {
			b = make(map[uuid.UUID]domain.TripRef)
			buckets[bucket] = b
		}
		b[trip.ID] = domain.TripRef{TripID: trip.ID, TripName: trip.Name}
	}

	out := make([]domain.TrendBucket, 0, len(buckets))
	for key, b := range buckets {
		out = append(out, domain.TrendBucket{
			Bucket:    key,
			TripCount: len(b),
			Trips:     sortedTripRefs(b),
		})
	}
	sort.Slice(out, func(i, j int) bool { return g.less(out[i].Bucket, out[j].Bucket) })
	return out
}

// dominantBucket partitions days by period and returns the period holding
// the most of them. Ties resolve to the lexicographically smaller key.
func dominantBucket(days []domain.TripDay, fallback time.Time, g granularity) string {
	if len(days) == 0 {
		return g.key(fallback)
	}
	counts := make(map[string]int)
	for _, d := range days {
		counts[g.key(d.Date)]++
	}
	var best string
	bestN := -1
	for key, n := range counts {
		if n > bestN || (n == bestN && key < best) {
			best, bestN = key, n
		}
	}
	return best
}

// travelDayTrends maps every past-or-today day directly to the bucket of its
// own date — no dominance logic. Each bucket carries the distinct trips
// touched, plus every day entry sorted by date then trip name.
func travelDayTrends(idx *index, tc temporal, g granularity) []domain.TravelDayBucket {
	type accum struct {
		trips   map[uuid.UUID]domain.TripRef
		entries []domain.TravelDayRef
	}
	buckets := make(map[string]*accum)

	for _, day := range idx.days {
		if !tc.pastOrToday(day) {
			continue
		}
		trip := idx.tripByID[day.TripID]
		key := g.key(day.Date)
		b, ok := buckets[key]
		if !ok {
			b = &accum{trips: make(map[uuid.UUID]domain.TripRef)}
			buckets[key] = b
		}
		b.trips[trip.ID] = domain.TripRef{TripID: trip.ID, TripName: trip.Name}
		b.entries = append(b.entries, domain.TravelDayRef{
			TripID:   trip.ID,
			TripName: trip.Name,
			DayIndex: day.DayIndex,
			Date:     dateKey(day.Date),
		})
	}

	out := make([]domain.TravelDayBucket, 0, len(buckets))
	for key, b := range buckets {
		sort.Slice(b.entries, func(i, j int) bool {
			if b.entries[i].Date != b.entries[j].Date {
				return b.entries[i].Date < b.entries[j].Date
			}
			return b.entries[i].TripName < b.entries[j].TripName
		})
		out = append(out, domain.TravelDayBucket{
			Bucket:   key,
			DayCount: len(b.entries),
			Trips:    sortedTripRefs(b.trips),
			TripDays: b.entries,
		})
	}
	sort.Slice(out, func(i, j int) bool { return g.less(out[i].Bucket, out[j].Bucket) })
	return out
}
