package internal

import (
	"fmt"
	"time"
)

// The business operates in Chicago time; every stored timestamp and derived
// date component is local, while the Square API speaks UTC.
var chicagoTZ = func() *time.Location {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		panic(err)
	}
	return loc
}()

const dateLayout = "2006-01-02"

// ConvertToChicago parses a Square timestamp (RFC3339, fractional seconds
// allowed) and converts it to Chicago local time. CST/CDT offsets follow
// from the calendar date.
func ConvertToChicago(ts string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid timestamp %q", ErrValidation, ts)
	}
	return t.In(chicagoTZ), nil
}

// ExtractDateComponents returns the month label (YYYY-MM) and the full
// English weekday name for a local timestamp.
func ExtractDateComponents(t time.Time) (string, string) {
	return t.Format("2006-01"), t.Weekday().String()
}

// CalculatePreviousMonthRange returns the first and last day of the month
// before today, as YYYY-MM-DD. Today is a parameter so the monthly run can
// pass the clock and tests can pin it.
func CalculatePreviousMonthRange(today time.Time) (string, string) {
	today = today.In(chicagoTZ)

	firstOfCurrent := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, chicagoTZ)
	lastOfPrevious := firstOfCurrent.AddDate(0, 0, -1)
	firstOfPrevious := time.Date(lastOfPrevious.Year(), lastOfPrevious.Month(), 1, 0, 0, 0, 0, chicagoTZ)

	return firstOfPrevious.Format(dateLayout), lastOfPrevious.Format(dateLayout)
}

// DayWindowUTC expands a calendar date to one boundary of its full-day
// window in Chicago local time (00:00:00.000000 or 23:59:59.999999) and
// returns it as a UTC instant, which is what the Square closed_at filter
// compares against.
func DayWindowUTC(date string, endOfDay bool) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, date, chicagoTZ)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, date)
	}
	if endOfDay {
		d = time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999999000, chicagoTZ)
	}
	return d.UTC(), nil
}

// ValidateDateRange reports whether both dates parse and start <= end.
func ValidateDateRange(start, end string) bool {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return false
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return false
	}
	return !s.After(e)
}
