package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/curtishsu/travelog/internal/domain"
	"github.com/curtishsu/travelog/internal/repo"
	"github.com/curtishsu/travelog/internal/stats"
)

// Test doubles for the repo interfaces. Set only the method fields your test
// needs; calling an unset field panics, which flags unexpected repo access.

type mockTripRepo struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list      func(ctx context.Context) ([]domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockDayRepo struct {
	getByID        func(ctx context.Context, id uuid.UUID) (domain.TripDay, error)
	listByTrip     func(ctx context.Context, tripID uuid.UUID) ([]domain.TripDay, error)
	replaceForTrip func(ctx context.Context, tripID uuid.UUID, days []domain.TripDay) ([]domain.TripDay, error)
	updateNotes    func(ctx context.Context, id uuid.UUID, notes string) (domain.TripDay, error)
}

func (m *mockDayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TripDay, error) {
	return m.getByID(ctx, id)
}
func (m *mockDayRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripDay, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockDayRepo) ReplaceForTrip(ctx context.Context, tripID uuid.UUID, days []domain.TripDay) ([]domain.TripDay, error) {
	return m.replaceForTrip(ctx, tripID, days)
}
func (m *mockDayRepo) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (domain.TripDay, error) {
	return m.updateNotes(ctx, id, notes)
}

var _ repo.DayRepo = (*mockDayRepo)(nil)

type mockLocationRepo struct {
	create    func(ctx context.Context, loc domain.TripLocation) (domain.TripLocation, error)
	listByDay func(ctx context.Context, dayID uuid.UUID) ([]domain.TripLocation, error)
	delete    func(ctx context.Context, dayID, locID uuid.UUID) error
}

func (m *mockLocationRepo) Create(ctx context.Context, loc domain.TripLocation) (domain.TripLocation, error) {
	return m.create(ctx, loc)
}
func (m *mockLocationRepo) ListByDay(ctx context.Context, dayID uuid.UUID) ([]domain.TripLocation, error) {
	return m.listByDay(ctx, dayID)
}
func (m *mockLocationRepo) Delete(ctx context.Context, dayID, locID uuid.UUID) error {
	return m.delete(ctx, dayID, locID)
}

var _ repo.LocationRepo = (*mockLocationRepo)(nil)

type mockHashtagRepo struct {
	add       func(ctx context.Context, dayID uuid.UUID, hashtag string) error
	remove    func(ctx context.Context, dayID uuid.UUID, hashtag string) error
	listByDay func(ctx context.Context, dayID uuid.UUID) ([]string, error)
}

func (m *mockHashtagRepo) Add(ctx context.Context, dayID uuid.UUID, hashtag string) error {
	return m.add(ctx, dayID, hashtag)
}
func (m *mockHashtagRepo) Remove(ctx context.Context, dayID uuid.UUID, hashtag string) error {
	return m.remove(ctx, dayID, hashtag)
}
func (m *mockHashtagRepo) ListByDay(ctx context.Context, dayID uuid.UUID) ([]string, error) {
	return m.listByDay(ctx, dayID)
}

var _ repo.HashtagRepo = (*mockHashtagRepo)(nil)

type mockTypeRepo struct {
	replace    func(ctx context.Context, tripID uuid.UUID, types []string) error
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]string, error)
}

func (m *mockTypeRepo) Replace(ctx context.Context, tripID uuid.UUID, types []string) error {
	return m.replace(ctx, tripID, types)
}
func (m *mockTypeRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]string, error) {
	return m.listByTrip(ctx, tripID)
}

var _ repo.TypeRepo = (*mockTypeRepo)(nil)

type mockStatsRepo struct {
	loadInput func(ctx context.Context) (stats.Input, error)
}

func (m *mockStatsRepo) LoadInput(ctx context.Context) (stats.Input, error) {
	return m.loadInput(ctx)
}

var _ repo.StatsRepo = (*mockStatsRepo)(nil)
