package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/curtishsu/travelog/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "trip_start_date", "trip_end_date", "trip_types",
	"day_index", "date", "day_notes", "locations", "hashtags",
}

// ExportRowResponse is the JSON representation of one export row.
type ExportRowResponse struct {
	TripID        string   `json:"trip_id"`
	TripName      string   `json:"trip_name"`
	TripStartDate string   `json:"trip_start_date"`
	TripEndDate   string   `json:"trip_end_date"`
	TripTypes     []string `json:"trip_types"`
	DayIndex      *int     `json:"day_index,omitempty"`
	Date          *string  `json:"date,omitempty"`
	DayNotes      *string  `json:"day_notes,omitempty"`
	Locations     []string `json:"locations"`
	Hashtags      []string `json:"hashtags"`
}

// GetExport handles GET /export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		respondServiceError(w, err, "export")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]ExportRowResponse, len(rows))
	for i, row := range rows {
		out[i] = rowToResponse(row)
	}
	respondJSON(w, http.StatusOK, out)
}

// writeCSV streams the rows as CSV. Multi-valued cells (types, locations,
// hashtags) are pipe-separated to keep each day on a single line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="travelog-export.csv"`)

	cw := csv.NewWriter(w)
	// Write errors surface on Flush.
	_ = cw.Write(csvHeaders)
	for _, r := range rows {
		_ = cw.Write(rowToCSVRecord(r))
	}
	cw.Flush()
}

// rowToResponse maps a domain.ExportRow to its JSON shape.
// Day fields on a day-less trip row become nil pointers (omitempty in JSON).
func rowToResponse(r domain.ExportRow) ExportRowResponse {
	resp := ExportRowResponse{
		TripID:        r.TripID,
		TripName:      r.TripName,
		TripStartDate: r.TripStartDate,
		TripEndDate:   r.TripEndDate,
		TripTypes:     emptyIfNil(r.TripTypes),
		Locations:     emptyIfNil(r.Locations),
		Hashtags:      emptyIfNil(r.Hashtags),
	}
	if r.Date != "" {
		resp.DayIndex = &r.DayIndex
		resp.Date = &r.Date
	}
	if r.DayNotes != "" {
		resp.DayNotes = &r.DayNotes
	}
	return resp
}

// rowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Day fields on a day-less trip row are encoded as empty strings.
func rowToCSVRecord(r domain.ExportRow) []string {
	dayIndex := ""
	if r.Date != "" {
		dayIndex = strconv.Itoa(r.DayIndex)
	}
	return []string{
		r.TripID,
		r.TripName,
		r.TripStartDate,
		r.TripEndDate,
		strings.Join(r.TripTypes, "|"),
		dayIndex,
		r.Date,
		r.DayNotes,
		strings.Join(r.Locations, "|"),
		strings.Join(r.Hashtags, "|"),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
