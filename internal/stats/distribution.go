package stats

import (
	"sort"

	"github.com/google/uuid"

	"github.com/curtishsu/travelog/internal/domain"
)

// Both distributions are restricted to completed trips — unlike the location
// aggregation, which gates on the day-level past-or-today predicate.

// hashtagDistribution counts distinct days per hashtag across completed
// trips. A hashtag appearing more than once on the same day counts once.
// Output is sorted by day count descending, ties broken by hashtag ascending.
func hashtagDistribution(rows []domain.TripDayHashtag, idx *index, tc temporal) []domain.HashtagBucket {
	type accum struct {
		days     map[uuid.UUID]struct{}
		tripDays []domain.TripDayRef
	}
	buckets := make(map[string]*accum)

	for _, row := range rows {
		day, trip, ok := idx.resolveDay(row.TripDayID)
		if !ok || !tc.completed(trip) {
			continue
		}
		b, ok := buckets[row.Hashtag]
		if !ok {
			b = &accum{days: make(map[uuid.UUID]struct{})}
			buckets[row.Hashtag] = b
		}
		if _, seen := b.days[day.ID]; seen {
			continue
		}
		b.days[day.ID] = struct{}{}
		b.tripDays = append(b.tripDays, domain.TripDayRef{
			TripID:   trip.ID,
			TripName: trip.Name,
			DayIndex: day.DayIndex,
		})
	}

	out := make([]domain.HashtagBucket, 0, len(buckets))
	for tag, b := range buckets {
		sort.Slice(b.tripDays, func(i, j int) bool {
			if b.tripDays[i].TripName != b.tripDays[j].TripName {
				return b.tripDays[i].TripName < b.tripDays[j].TripName
			}
			return b.tripDays[i].DayIndex < b.tripDays[j].DayIndex
		})
		out = append(out, domain.HashtagBucket{
			Hashtag:  tag,
			DayCount: len(b.days),
			TripDays: b.tripDays,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayCount != out[j].DayCount {
			return out[i].DayCount > out[j].DayCount
		}
		return out[i].Hashtag < out[j].Hashtag
	})
	return out
}

// tripTypeDistribution counts distinct completed trips per type.
// Output is sorted by trip count descending, ties broken by type ascending.
func tripTypeDistribution(rows []domain.TripType, idx *index, tc temporal) []domain.TripTypeBucket {
	buckets := make(map[string]map[uuid.UUID]domain.TripRef)

	for _, row := range rows {
		trip, ok := idx.tripByID[row.TripID]
		if !ok || !tc.completed(trip) {
			continue
		}
		b, ok := buckets[row.Type]
		if !ok {
			b = make(map[uuid.UUID]domain.TripRef)
			buckets[row.Type] = b
		}
		b[trip.ID] = domain.TripRef{TripID: trip.ID, TripName: trip.Name}
	}

	out := make([]domain.TripTypeBucket, 0, len(buckets))
	for typ, b := range buckets {
		out = append(out, domain.TripTypeBucket{
			Type:      typ,
			TripCount: len(b),
			Trips:     sortedTripRefs(b),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TripCount != out[j].TripCount {
			return out[i].TripCount > out[j].TripCount
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// sortedTripRefs flattens a trip set into a slice sorted by name, then by ID
// string so trips sharing a name still order deterministically.
func sortedTripRefs(set map[uuid.UUID]domain.TripRef) []domain.TripRef {
	refs := make([]domain.TripRef, 0, len(set))
	for _, r := range set {
		refs = append(refs, r)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].TripName != refs[j].TripName {
			return refs[i].TripName < refs[j].TripName
		}
		return refs[i].TripID.String() < refs[j].TripID.String()
	})
	return refs
}
