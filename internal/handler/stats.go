package handler

import "net/http"

// GetStats handles GET /stats.
// The summary is recomputed from the full journal on every call; there is
// no caching layer between this endpoint and the engine.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	summary, err := s.stats.Summary(r.Context())
	if err != nil {
		respondServiceError(w, err, "stats")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
