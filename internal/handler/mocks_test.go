package handler_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/curtishsu/travelog/internal/domain"
	"github.com/curtishsu/travelog/internal/handler"
)

// Test doubles for the servicer interfaces. Set only the method fields a test
// needs; calling an unset field panics, which flags unexpected service access.

type mockTripService struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
	listDays  func(ctx context.Context, tripID uuid.UUID) ([]domain.TripDay, error)
}

func (m *mockTripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockTripService) ListDays(ctx context.Context, tripID uuid.UUID) ([]domain.TripDay, error) {
	return m.listDays(ctx, tripID)
}

var _ handler.TripServicer = (*mockTripService)(nil)

type mockDayService struct {
	getByID        func(ctx context.Context, id uuid.UUID) (domain.TripDay, error)
	updateNotes    func(ctx context.Context, id uuid.UUID, notes string) (domain.TripDay, error)
	addLocation    func(ctx context.Context, loc domain.TripLocation) (domain.TripLocation, error)
	listLocations  func(ctx context.Context, dayID uuid.UUID) ([]domain.TripLocation, error)
	removeLocation func(ctx context.Context, dayID, locID uuid.UUID) error
	addHashtag     func(ctx context.Context, dayID uuid.UUID, hashtag string) (string, error)
	removeHashtag  func(ctx context.Context, dayID uuid.UUID, hashtag string) error
	listHashtags   func(ctx context.Context, dayID uuid.UUID) ([]string, error)
}

func (m *mockDayService) GetByID(ctx context.Context, id uuid.UUID) (domain.TripDay, error) {
	return m.getByID(ctx, id)
}
func (m *mockDayService) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (domain.TripDay, error) {
	return m.updateNotes(ctx, id, notes)
}
func (m *mockDayService) AddLocation(ctx context.Context, loc domain.TripLocation) (domain.TripLocation, error) {
	return m.addLocation(ctx, loc)
}
func (m *mockDayService) ListLocations(ctx context.Context, dayID uuid.UUID) ([]domain.TripLocation, error) {
	return m.listLocations(ctx, dayID)
}
func (m *mockDayService) RemoveLocation(ctx context.Context, dayID, locID uuid.UUID) error {
	return m.removeLocation(ctx, dayID, locID)
}
func (m *mockDayService) AddHashtag(ctx context.Context, dayID uuid.UUID, hashtag string) (string, error) {
	return m.addHashtag(ctx, dayID, hashtag)
}
func (m *mockDayService) RemoveHashtag(ctx context.Context, dayID uuid.UUID, hashtag string) error {
	return m.removeHashtag(ctx, dayID, hashtag)
}
func (m *mockDayService) ListHashtags(ctx context.Context, dayID uuid.UUID) ([]string, error) {
	return m.listHashtags(ctx, dayID)
}

var _ handler.DayServicer = (*mockDayService)(nil)

type mockTypeService struct {
	replace    func(ctx context.Context, tripID uuid.UUID, types []string) ([]string, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]string, error)
}

func (m *mockTypeService) Replace(ctx context.Context, tripID uuid.UUID, types []string) ([]string, error) {
	return m.replace(ctx, tripID, types)
}
func (m *mockTypeService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]string, error) {
	return m.listByTrip(ctx, tripID)
}

var _ handler.TypeServicer = (*mockTypeService)(nil)

type mockStatsService struct {
	summary func(ctx context.Context) (domain.StatsSummary, error)
}

func (m *mockStatsService) Summary(ctx context.Context) (domain.StatsSummary, error) {
	return m.summary(ctx)
}

var _ handler.StatsServicer = (*mockStatsService)(nil)

type mockExportService struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExportService)(nil)
