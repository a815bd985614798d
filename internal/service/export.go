package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/curtishsu/travelog/internal/domain"
	"github.com/curtishsu/travelog/internal/repo"
)

const exportDateLayout = "2006-01-02"

// ExportService assembles a full flat export of the journal: one row per
// trip day, with trip fields repeated. It reuses the stats repo's flat load
// so the export and the stats engine always see the same shape of data.
type ExportService struct {
	data repo.StatsRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(data repo.StatsRepo) *ExportService {
	return &ExportService{data: data}
}

// Export returns one ExportRow per trip day across all trips, ordered by
// trip start date descending (matching the trip list) and day_index
// ascending within a trip. Trips with no days contribute one row with
// empty day fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	in, err := s.data.LoadInput(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	daysByTrip := make(map[uuid.UUID][]domain.TripDay)
	for _, d := range in.Days {
		daysByTrip[d.TripID] = append(daysByTrip[d.TripID], d)
	}
	locsByDay := make(map[uuid.UUID][]string)
	for _, l := range in.Locations {
		locsByDay[l.TripDayID] = append(locsByDay[l.TripDayID], formatLocation(l))
	}
	tagsByDay := make(map[uuid.UUID][]string)
	for _, h := range in.Hashtags {
		tagsByDay[h.TripDayID] = append(tagsByDay[h.TripDayID], h.Hashtag)
	}
	typesByTrip := make(map[uuid.UUID][]string)
	for _, t := range in.Types {
		typesByTrip[t.TripID] = append(typesByTrip[t.TripID], t.Type)
	}

	trips := make([]domain.Trip, len(in.Trips))
	copy(trips, in.Trips)
	sort.Slice(trips, func(i, j int) bool {
		if !trips[i].StartDate.Equal(trips[j].StartDate) {
			return trips[i].StartDate.After(trips[j].StartDate)
		}
		return trips[i].Name < trips[j].Name
	})

	rows := []domain.ExportRow{}
	for _, trip := range trips {
		types := typesByTrip[trip.ID]
		sort.Strings(types)
		base := domain.ExportRow{
			TripID:        trip.ID.String(),
			TripName:      trip.Name,
			TripStartDate: trip.StartDate.Format(exportDateLayout),
			TripEndDate:   trip.EndDate.Format(exportDateLayout),
			TripTypes:     types,
		}

		days := daysByTrip[trip.ID]
		if len(days) == 0 {
			rows = append(rows, base)
			continue
		}
		sort.Slice(days, func(i, j int) bool { return days[i].DayIndex < days[j].DayIndex })

		for _, day := range days {
			row := base
			row.DayIndex = day.DayIndex
			row.Date = day.Date.Format(exportDateLayout)
			row.DayNotes = day.Notes
			row.Locations = locsByDay[day.ID]
			tags := tagsByDay[day.ID]
			sort.Strings(tags)
			row.Hashtags = tags
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// formatLocation joins the set parts of a location as "city, region, country".
func formatLocation(l domain.TripLocation) string {
	parts := []string{}
	for _, p := range []*string{l.City, l.Region, l.Country} {
		if p != nil && strings.TrimSpace(*p) != "" {
			parts = append(parts, strings.TrimSpace(*p))
		}
	}
	return strings.Join(parts, ", ")
}
