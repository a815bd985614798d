// Package handler implements the HTTP handlers for the Travelog API.
// All handlers are methods on Server; methods are split into domain-specific
// files (trip.go, day.go, stats.go, ...) but all share the same Server struct
// so they can access its dependencies. Routes wires them onto a chi router.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/curtishsu/travelog/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListDays(ctx context.Context, tripID uuid.UUID) ([]domain.TripDay, error)
}

// DayServicer defines the business operations the day handlers depend on.
type DayServicer interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripDay, error)
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (domain.TripDay, error)
	AddLocation(ctx context.Context, loc domain.TripLocation) (domain.TripLocation, error)
	ListLocations(ctx context.Context, dayID uuid.UUID) ([]domain.TripLocation, error)
	RemoveLocation(ctx context.Context, dayID, locID uuid.UUID) error
	AddHashtag(ctx context.Context, dayID uuid.UUID, hashtag string) (string, error)
	RemoveHashtag(ctx context.Context, dayID uuid.UUID, hashtag string) error
	ListHashtags(ctx context.Context, dayID uuid.UUID) ([]string, error)
}

// TypeServicer defines the business operations the trip-type handlers depend on.
type TypeServicer interface {
	Replace(ctx context.Context, tripID uuid.UUID, types []string) ([]string, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]string, error)
}

// StatsServicer defines the statistics operation the stats handler depends on.
type StatsServicer interface {
	Summary(ctx context.Context) (domain.StatsSummary, error)
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the service dependencies for all API endpoints.
// Wire it in main.go via Routes.
type Server struct {
	trips  TripServicer
	days   DayServicer
	types  TypeServicer
	stats  StatsServicer
	export ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, days DayServicer, types TypeServicer, stats StatsServicer, export ExportServicer) *Server {
	return &Server{trips: trips, days: days, types: types, stats: stats, export: export}
}

// Routes mounts every endpoint on a fresh chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/days", s.ListTripDays)
			r.Get("/types", s.ListTripTypes)
			r.Put("/types", s.ReplaceTripTypes)
		})
	})

	r.Route("/days/{dayID}", func(r chi.Router) {
		r.Put("/notes", s.UpdateDayNotes)
		r.Get("/locations", s.ListDayLocations)
		r.Post("/locations", s.AddDayLocation)
		r.Delete("/locations/{locationID}", s.RemoveDayLocation)
		r.Get("/hashtags", s.ListDayHashtags)
		r.Put("/hashtags/{hashtag}", s.AddDayHashtag)
		r.Delete("/hashtags/{hashtag}", s.RemoveDayHashtag)
	})

	r.Get("/stats", s.GetStats)
	r.Get("/export", s.GetExport)

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathUUID parses a UUID path parameter; ok=false means a 422 was written.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(name+" must be a valid UUID"))
		return uuid.UUID{}, false
	}
	return id, true
}
