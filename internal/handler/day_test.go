package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curtishsu/travelog/internal/domain"
	"github.com/curtishsu/travelog/internal/handler"
)

func TestUpdateDayNotes(t *testing.T) {
	dayID := uuid.New()
	days := &mockDayService{
		updateNotes: func(_ context.Context, id uuid.UUID, notes string) (domain.TripDay, error) {
			assert.Equal(t, dayID, id)
			assert.Equal(t, "long drive", notes)
			return domain.TripDay{
				ID:       id,
				TripID:   uuid.New(),
				Date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				DayIndex: 1,
				Notes:    notes,
			}, nil
		},
	}
	h := newTestServer(nil, days, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPut, "/days/"+dayID.String()+"/notes",
		`{"notes":"long drive"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.DayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "long drive", *resp.Notes)
}

func TestUpdateDayNotes_NotFound(t *testing.T) {
	days := &mockDayService{
		updateNotes: func(_ context.Context, id uuid.UUID, notes string) (domain.TripDay, error) {
			return domain.TripDay{}, fmt.Errorf("repo: %w", domain.ErrNotFound)
		},
	}
	h := newTestServer(nil, days, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPut, "/days/"+uuid.NewString()+"/notes", `{"notes":"x"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddDayLocation(t *testing.T) {
	dayID := uuid.New()
	days := &mockDayService{
		addLocation: func(_ context.Context, loc domain.TripLocation) (domain.TripLocation, error) {
			assert.Equal(t, dayID, loc.TripDayID)
			require.NotNil(t, loc.City)
			assert.Equal(t, "Lima", *loc.City)
			loc.ID = uuid.New()
			return loc, nil
		},
	}
	h := newTestServer(nil, days, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/days/"+dayID.String()+"/locations",
		`{"city":"Lima","country":"Peru"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp handler.LocationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dayID.String(), resp.DayID)
	require.NotNil(t, resp.City)
	assert.Equal(t, "Lima", *resp.City)
	assert.Nil(t, resp.Region)
}

func TestAddDayLocation_AllFieldsEmpty(t *testing.T) {
	days := &mockDayService{
		addLocation: func(_ context.Context, loc domain.TripLocation) (domain.TripLocation, error) {
			return domain.TripLocation{}, fmt.Errorf("service: %w: at least one of city, region, country is required", domain.ErrValidation)
		},
	}
	h := newTestServer(nil, days, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/days/"+uuid.NewString()+"/locations", `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListDayLocations(t *testing.T) {
	dayID := uuid.New()
	city := "Lima"
	days := &mockDayService{
		listLocations: func(_ context.Context, id uuid.UUID) ([]domain.TripLocation, error) {
			return []domain.TripLocation{{ID: uuid.New(), TripDayID: id, City: &city}}, nil
		},
	}
	h := newTestServer(nil, days, nil, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/days/"+dayID.String()+"/locations", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []handler.LocationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

func TestRemoveDayLocation(t *testing.T) {
	dayID := uuid.New()
	locID := uuid.New()
	days := &mockDayService{
		removeLocation: func(_ context.Context, gotDay, gotLoc uuid.UUID) error {
			assert.Equal(t, dayID, gotDay)
			assert.Equal(t, locID, gotLoc)
			return nil
		},
	}
	h := newTestServer(nil, days, nil, nil, nil)

	rec := doRequest(t, h, http.MethodDelete,
		"/days/"+dayID.String()+"/locations/"+locID.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAddDayHashtag(t *testing.T) {
	dayID := uuid.New()
	days := &mockDayService{
		addHashtag: func(_ context.Context, id uuid.UUID, hashtag string) (string, error) {
			assert.Equal(t, dayID, id)
			assert.Equal(t, "Food", hashtag)
			return "food", nil
		},
	}
	h := newTestServer(nil, days, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPut, "/days/"+dayID.String()+"/hashtags/Food", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.HashtagResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "food", resp.Hashtag, "response carries the normalized tag")
}

func TestRemoveDayHashtag_NotFound(t *testing.T) {
	days := &mockDayService{
		removeHashtag: func(_ context.Context, id uuid.UUID, hashtag string) error {
			return fmt.Errorf("repo: %w", domain.ErrNotFound)
		},
	}
	h := newTestServer(nil, days, nil, nil, nil)

	rec := doRequest(t, h, http.MethodDelete, "/days/"+uuid.NewString()+"/hashtags/food", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDayHashtags(t *testing.T) {
	days := &mockDayService{
		listHashtags: func(_ context.Context, id uuid.UUID) ([]string, error) {
			return []string{"food", "hiking"}, nil
		},
	}
	h := newTestServer(nil, days, nil, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/days/"+uuid.NewString()+"/hashtags", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["food","hiking"]`, rec.Body.String())
}
