package stats

import (
	"github.com/google/uuid"

	"github.com/curtishsu/travelog/internal/domain"
)

// index holds the lookup structures every aggregator shares.
// days contains only days whose trip resolves within the input; a day row
// pointing at an unknown trip is dropped here once, so no aggregator has to
// re-check trip resolution.
type index struct {
	tripByID   map[uuid.UUID]domain.Trip
	dayByID    map[uuid.UUID]domain.TripDay
	daysByTrip map[uuid.UUID][]domain.TripDay
	days       []domain.TripDay
}

// newIndex builds the lookups in one pass per collection. Pure construction,
// no validation beyond skip-on-missing-reference.
func newIndex(in Input) *index {
	idx := &index{
		tripByID:   make(map[uuid.UUID]domain.Trip, len(in.Trips)),
		dayByID:    make(map[uuid.UUID]domain.TripDay, len(in.Days)),
		daysByTrip: make(map[uuid.UUID][]domain.TripDay, len(in.Trips)),
	}
	for _, t := range in.Trips {
		idx.tripByID[t.ID] = t
	}
	for _, d := range in.Days {
		if _, ok := idx.tripByID[d.TripID]; !ok {
			continue
		}
		idx.dayByID[d.ID] = d
		idx.daysByTrip[d.TripID] = append(idx.daysByTrip[d.TripID], d)
		idx.days = append(idx.days, d)
	}
	return idx
}

// resolveDay returns the day and its owning trip for a trip_day_id foreign
// key, or ok=false when the reference does not resolve.
func (idx *index) resolveDay(dayID uuid.UUID) (domain.TripDay, domain.Trip, bool) {
	d, ok := idx.dayByID[dayID]
	if !ok {
		return domain.TripDay{}, domain.Trip{}, false
	}
	t, ok := idx.tripByID[d.TripID]
	if !ok {
		return domain.TripDay{}, domain.Trip{}, false
	}
	return d, t, true
}
