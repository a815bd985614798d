package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/curtishsu/travelog/internal/domain"
)

// DayNotesRequest is the JSON body for PUT /days/{dayID}/notes.
type DayNotesRequest struct {
	Notes string `json:"notes"`
}

// LocationRequest is the JSON body for POST /days/{dayID}/locations.
type LocationRequest struct {
	City    *string `json:"city,omitempty"`
	Region  *string `json:"region,omitempty"`
	Country *string `json:"country,omitempty"`
}

// LocationResponse is the JSON representation of a day location.
type LocationResponse struct {
	ID      string  `json:"id"`
	DayID   string  `json:"trip_day_id"`
	City    *string `json:"city,omitempty"`
	Region  *string `json:"region,omitempty"`
	Country *string `json:"country,omitempty"`
}

// HashtagResponse is the JSON representation of a single hashtag link.
type HashtagResponse struct {
	DayID   string `json:"trip_day_id"`
	Hashtag string `json:"hashtag"`
}

// UpdateDayNotes handles PUT /days/{dayID}/notes.
func (s *Server) UpdateDayNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	var body DayNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}
	day, err := s.days.UpdateNotes(r.Context(), id, body.Notes)
	if err != nil {
		respondServiceError(w, err, "day")
		return
	}
	respondJSON(w, http.StatusOK, dayToResponse(day))
}

// AddDayLocation handles POST /days/{dayID}/locations.
func (s *Server) AddDayLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	var body LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}
	loc := domain.TripLocation{
		TripDayID: id,
		City:      body.City,
		Region:    body.Region,
		Country:   body.Country,
	}
	created, err := s.days.AddLocation(r.Context(), loc)
	if err != nil {
		respondServiceError(w, err, "day")
		return
	}
	respondJSON(w, http.StatusCreated, locationToResponse(created))
}

// ListDayLocations handles GET /days/{dayID}/locations.
func (s *Server) ListDayLocations(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	locs, err := s.days.ListLocations(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "day")
		return
	}
	out := make([]LocationResponse, len(locs))
	for i, l := range locs {
		out[i] = locationToResponse(l)
	}
	respondJSON(w, http.StatusOK, out)
}

// RemoveDayLocation handles DELETE /days/{dayID}/locations/{locationID}.
func (s *Server) RemoveDayLocation(w http.ResponseWriter, r *http.Request) {
	dayID, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	locID, ok := pathUUID(w, r, "locationID")
	if !ok {
		return
	}
	if err := s.days.RemoveLocation(r.Context(), dayID, locID); err != nil {
		respondServiceError(w, err, "location")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddDayHashtag handles PUT /days/{dayID}/hashtags/{hashtag}.
// Idempotent: attaching an already-present hashtag succeeds.
func (s *Server) AddDayHashtag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	tag, err := s.days.AddHashtag(r.Context(), id, chi.URLParam(r, "hashtag"))
	if err != nil {
		respondServiceError(w, err, "day")
		return
	}
	respondJSON(w, http.StatusOK, HashtagResponse{DayID: id.String(), Hashtag: tag})
}

// RemoveDayHashtag handles DELETE /days/{dayID}/hashtags/{hashtag}.
func (s *Server) RemoveDayHashtag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	if err := s.days.RemoveHashtag(r.Context(), id, chi.URLParam(r, "hashtag")); err != nil {
		respondServiceError(w, err, "hashtag")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListDayHashtags handles GET /days/{dayID}/hashtags.
func (s *Server) ListDayHashtags(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	tags, err := s.days.ListHashtags(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "day")
		return
	}
	respondJSON(w, http.StatusOK, tags)
}

// locationToResponse converts a domain.TripLocation into its JSON representation.
func locationToResponse(l domain.TripLocation) LocationResponse {
	return LocationResponse{
		ID:      l.ID.String(),
		DayID:   l.TripDayID.String(),
		City:    l.City,
		Region:  l.Region,
		Country: l.Country,
	}
}
