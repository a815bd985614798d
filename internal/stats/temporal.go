package stats

import (
	"time"

	"github.com/curtishsu/travelog/internal/domain"
)

const dateLayout = "2006-01-02"

// temporal is the single temporal gate used by every aggregator. Both
// predicates compare formatted date strings, which for ISO dates orders the
// same as the underlying time values and sidesteps sub-day components on
// the reference time.
type temporal struct {
	today string
}

func newTemporal(today time.Time) temporal {
	return temporal{today: dateKey(today)}
}

// pastOrToday reports whether the day's date is on or before the reference date.
func (tc temporal) pastOrToday(d domain.TripDay) bool {
	return dateKey(d.Date) <= tc.today
}

// completed reports whether the trip ended strictly before the reference
// date. A trip ending today is not completed.
func (tc temporal) completed(t domain.Trip) bool {
	return dateKey(t.EndDate) < tc.today
}

// dateKey formats a calendar date as YYYY-MM-DD.
func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}
