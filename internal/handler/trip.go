package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/curtishsu/travelog/internal/domain"
)

// TripRequest is the JSON body for POST /trips and PUT /trips/{tripID}.
// Dates are YYYY-MM-DD; openapi_types.Date handles the (un)marshaling.
type TripRequest struct {
	Name      string             `json:"name"`
	StartDate openapi_types.Date `json:"start_date"`
	EndDate   openapi_types.Date `json:"end_date"`
	Notes     *string            `json:"notes,omitempty"`
}

// TripResponse is the JSON representation of a trip.
type TripResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	StartDate openapi_types.Date `json:"start_date"`
	EndDate   openapi_types.Date `json:"end_date"`
	Notes     *string            `json:"notes,omitempty"`
}

// TripListResponse is the paginated body for GET /trips.
type TripListResponse struct {
	Data       []TripResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// Pagination echoes the effective paging parameters plus the total count.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// DayResponse is the JSON representation of a trip day.
type DayResponse struct {
	ID       string             `json:"id"`
	TripID   string             `json:"trip_id"`
	Date     openapi_types.Date `json:"date"`
	DayIndex int                `json:"day_index"`
	Notes    *string            `json:"notes,omitempty"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	trip, ok := decodeTrip(w, r)
	if !ok {
		return
	}
	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		respondServiceError(w, err, "trip")
		return
	}
	respondJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		respondServiceError(w, err, "trip")
		return
	}

	data := make([]TripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	respondJSON(w, http.StatusOK, TripListResponse{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "trip")
		return
	}
	respondJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	trip, ok := decodeTrip(w, r)
	if !ok {
		return
	}
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		respondServiceError(w, err, "trip")
		return
	}
	respondJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	if err := s.trips.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err, "trip")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTripDays handles GET /trips/{tripID}/days.
func (s *Server) ListTripDays(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	days, err := s.trips.ListDays(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "trip")
		return
	}
	out := make([]DayResponse, len(days))
	for i, d := range days {
		out[i] = dayToResponse(d)
	}
	respondJSON(w, http.StatusOK, out)
}

// --- mapping helpers --------------------------------------------------------

// decodeTrip parses and converts a trip request body; ok=false means a 422
// response has already been written.
func decodeTrip(w http.ResponseWriter, r *http.Request) (domain.Trip, bool) {
	var body TripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return domain.Trip{}, false
	}
	t := domain.Trip{
		Name:      body.Name,
		StartDate: body.StartDate.Time,
		EndDate:   body.EndDate.Time,
	}
	if body.Notes != nil {
		t.Notes = *body.Notes
	}
	return t, true
}

// tripToResponse converts a domain.Trip into its JSON representation.
func tripToResponse(t domain.Trip) TripResponse {
	resp := TripResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		StartDate: openapi_types.Date{Time: t.StartDate},
		EndDate:   openapi_types.Date{Time: t.EndDate},
	}
	if t.Notes != "" {
		resp.Notes = &t.Notes
	}
	return resp
}

// dayToResponse converts a domain.TripDay into its JSON representation.
func dayToResponse(d domain.TripDay) DayResponse {
	resp := DayResponse{
		ID:       d.ID.String(),
		TripID:   d.TripID.String(),
		Date:     openapi_types.Date{Time: d.Date},
		DayIndex: d.DayIndex,
	}
	if d.Notes != "" {
		resp.Notes = &d.Notes
	}
	return resp
}

// queryInt parses an optional integer query parameter; malformed values are
// treated as absent rather than rejected.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
