package handler

import (
	"encoding/json"
	"net/http"
)

// TripTypesRequest is the JSON body for PUT /trips/{tripID}/types.
// The listed types fully replace the trip's current set.
type TripTypesRequest struct {
	Types []string `json:"types"`
}

// ReplaceTripTypes handles PUT /trips/{tripID}/types.
func (s *Server) ReplaceTripTypes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	var body TripTypesRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return
	}
	types, err := s.types.Replace(r.Context(), id, body.Types)
	if err != nil {
		respondServiceError(w, err, "trip")
		return
	}
	respondJSON(w, http.StatusOK, types)
}

// ListTripTypes handles GET /trips/{tripID}/types.
func (s *Server) ListTripTypes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	types, err := s.types.ListByTrip(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "trip")
		return
	}
	respondJSON(w, http.StatusOK, types)
}
