package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curtishsu/travelog/internal/domain"
	"github.com/curtishsu/travelog/internal/stats"
)

// A trip spanning Dec 30–Jan 2 has 3 days in January and 1 in December:
// it must bucket under January for the month series and under the January
// year for the year series.
func TestCompute_TripTrendsDominantBucket(t *testing.T) {
	tr := trip("New Year", "2023-12-30", "2024-01-02")

	got := stats.Compute(stats.Input{
		Trips: []domain.Trip{tr},
		Days:  daysOf(tr),
	}, date("2024-06-01"))

	require.Len(t, got.TripTrendsMonth, 1)
	assert.Equal(t, "2024-01", got.TripTrendsMonth[0].Bucket)
	assert.Equal(t, 1, got.TripTrendsMonth[0].TripCount)

	require.Len(t, got.TripTrendsYear, 1)
	assert.Equal(t, "2024", got.TripTrendsYear[0].Bucket)
}

// On a day-count tie the lexicographically smaller bucket wins: Dec 30–Jan 2
// split 2/2 goes to December.
func TestCompute_TripTrendsDominantBucketTie(t *testing.T) {
	tr := trip("Even Split", "2023-12-31", "2024-01-01")

	got := stats.Compute(stats.Input{
		Trips: []domain.Trip{tr},
		Days:  daysOf(tr),
	}, date("2024-06-01"))

	require.Len(t, got.TripTrendsMonth, 1)
	assert.Equal(t, "2023-12", got.TripTrendsMonth[0].Bucket)
	require.Len(t, got.TripTrendsYear, 1)
	assert.Equal(t, "2023", got.TripTrendsYear[0].Bucket)
}

// A trip with no day rows falls back to its start-date bucket.
func TestCompute_TripTrendsNoDaysFallsBackToStartDate(t *testing.T) {
	tr := trip("No Days", "2024-03-15", "2024-03-20")

	got := stats.Compute(stats.Input{Trips: []domain.Trip{tr}}, date("2024-06-01"))

	require.Len(t, got.TripTrendsMonth, 1)
	assert.Equal(t, "2024-03", got.TripTrendsMonth[0].Bucket)
	require.Len(t, got.TripTrendsYear, 1)
	assert.Equal(t, "2024", got.TripTrendsYear[0].Bucket)
}

// Future trips still appear in the trip trend series — completion is not a
// gate here, only for the distributions.
func TestCompute_TripTrendsIncludeFutureTrips(t *testing.T) {
	future := trip("Future", "2025-07-01", "2025-07-05")

	got := stats.Compute(stats.Input{
		Trips: []domain.Trip{future},
		Days:  daysOf(future),
	}, date("2024-06-01"))

	require.Len(t, got.TripTrendsYear, 1)
	assert.Equal(t, "2025", got.TripTrendsYear[0].Bucket)
	assert.Empty(t, got.TravelDayTrendsYear, "future days never enter the travel-day series")
}

// Travel-day buckets map each past-or-today day directly by its own date, no
// dominance logic: the Dec 30–Jan 2 trip contributes to both months.
func TestCompute_TravelDayTrendsDirectMapping(t *testing.T) {
	tr := trip("New Year", "2023-12-30", "2024-01-02")

	got := stats.Compute(stats.Input{
		Trips: []domain.Trip{tr},
		Days:  daysOf(tr),
	}, date("2024-06-01"))

	require.Len(t, got.TravelDayTrendsMonth, 2)
	assert.Equal(t, "2023-12", got.TravelDayTrendsMonth[0].Bucket)
	assert.Equal(t, 2, got.TravelDayTrendsMonth[0].DayCount)
	assert.Equal(t, "2024-01", got.TravelDayTrendsMonth[1].Bucket)
	assert.Equal(t, 2, got.TravelDayTrendsMonth[1].DayCount)

	require.Len(t, got.TravelDayTrendsYear, 2)
	assert.Equal(t, "2023", got.TravelDayTrendsYear[0].Bucket)
	assert.Equal(t, "2024", got.TravelDayTrendsYear[1].Bucket)

	// Entries carry the day's own date and sort by date.
	entries := got.TravelDayTrendsMonth[0].TripDays
	require.Len(t, entries, 2)
	assert.Equal(t, "2023-12-30", entries[0].Date)
	assert.Equal(t, "2023-12-31", entries[1].Date)
	require.Len(t, got.TravelDayTrendsMonth[0].Trips, 1)
	assert.Equal(t, "New Year", got.TravelDayTrendsMonth[0].Trips[0].TripName)
}

// Month buckets (string-sorted) must come out in the same chronological
// order as year buckets (numerically sorted) across a multi-year span.
func TestCompute_MonthAndYearBucketOrderAgree(t *testing.T) {
	t1 := trip("One", "2019-11-01", "2019-11-03")
	t2 := trip("Two", "2020-02-01", "2020-02-03")
	t3 := trip("Three", "2021-09-01", "2021-09-03")
	days := append(append(daysOf(t1), daysOf(t2)...), daysOf(t3)...)

	got := stats.Compute(stats.Input{
		Trips: []domain.Trip{t3, t1, t2}, // shuffled input order
		Days:  days,
	}, date("2024-06-01"))

	require.Len(t, got.TravelDayTrendsMonth, 3)
	assert.Equal(t, "2019-11", got.TravelDayTrendsMonth[0].Bucket)
	assert.Equal(t, "2020-02", got.TravelDayTrendsMonth[1].Bucket)
	assert.Equal(t, "2021-09", got.TravelDayTrendsMonth[2].Bucket)

	require.Len(t, got.TravelDayTrendsYear, 3)
	assert.Equal(t, "2019", got.TravelDayTrendsYear[0].Bucket)
	assert.Equal(t, "2020", got.TravelDayTrendsYear[1].Bucket)
	assert.Equal(t, "2021", got.TravelDayTrendsYear[2].Bucket)
}

// Two trips dominant in the same month aggregate into one bucket with a
// name-sorted trip list.
func TestCompute_TripTrendsAggregatePerBucket(t *testing.T) {
	b := trip("Beta", "2024-03-01", "2024-03-03")
	a := trip("Alpha", "2024-03-10", "2024-03-12")
	days := append(daysOf(b), daysOf(a)...)

	got := stats.Compute(stats.Input{
		Trips: []domain.Trip{b, a},
		Days:  days,
	}, date("2024-06-01"))

	require.Len(t, got.TripTrendsMonth, 1)
	bucket := got.TripTrendsMonth[0]
	assert.Equal(t, "2024-03", bucket.Bucket)
	assert.Equal(t, 2, bucket.TripCount)
	require.Len(t, bucket.Trips, 2)
	assert.Equal(t, "Alpha", bucket.Trips[0].TripName)
	assert.Equal(t, "Beta", bucket.Trips[1].TripName)
}
