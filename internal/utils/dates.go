package utils

import "time"

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	// All other months have 31 days
	return 31
}

// CivilDate truncates a timestamp to midnight of its calendar day,
// keeping the location. All date arithmetic in this package operates
// on civil dates, so callers normalize to the business timezone first.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// LastDayOfMonth returns the last calendar day of t's month.
func LastDayOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, DaysInMonth(y, int(m)), 0, 0, 0, 0, t.Location())
}

// FirstOfNextMonth returns the 1st of the month following t's month.
func FirstOfNextMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	year, month := y, int(m)+1
	if month > 12 {
		month = 1
		year++
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b.
// Both timestamps are reduced to their civil dates first, so the
// result is stable across DST transitions.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

// AddOneCalendarMonth increments the month component by one, rolling
// the year forward from December. When the target month is shorter
// than the source day-of-month, the result clamps to the last valid
// day: Jan 31 becomes Feb 28 (or 29 in a leap year), Mar 31 becomes
// Apr 30.
func AddOneCalendarMonth(t time.Time) time.Time {
	y, m, d := t.Date()
	year, month := y, int(m)+1
	if month > 12 {
		month = 1
		year++
	}
	if dim := DaysInMonth(year, month); d > dim {
		d = dim
	}
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, t.Location())
}

// RollDateRangeForward moves a date range to begin at newStart while
// enforcing a minimum duration of one calendar month.
//
// Ranges shorter than one calendar month from newStart are expanded to
// that floor (which varies 28-31 days with the target month). Longer
// ranges keep their original duration exactly, counted in days rather
// than re-expressed in calendar months.
func RollDateRangeForward(startDate, endDate, newStart time.Time) (time.Time, time.Time) {
	start := CivilDate(newStart)

	originalDurationDays := DaysBetween(startDate, endDate)

	minimumEnd := AddOneCalendarMonth(start)
	minimumDurationDays := DaysBetween(start, minimumEnd)

	if originalDurationDays < minimumDurationDays {
		return start, minimumEnd
	}
	return start, start.AddDate(0, 0, originalDurationDays)
}
