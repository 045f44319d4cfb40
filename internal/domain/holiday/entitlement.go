package holiday

import "time"

// Entitlement computes a member's vacation days for a year. Base days
// are pro-rated by full months employed when the member was hired
// during that year, then carryover from the previous year is added.
// Members hired before the year get the full base.
func Entitlement(baseDays, carryover int, hiredAt *time.Time, year int) int {
	if baseDays < 0 {
		baseDays = 0
	}
	if carryover < 0 {
		carryover = 0
	}
	if hiredAt == nil || hiredAt.Year() < year {
		return baseDays + carryover
	}
	if hiredAt.Year() > year {
		return 0
	}
	// Months from hire month through December, counting the hire
	// month only when employment started on the 1st.
	months := 12 - int(hiredAt.Month())
	if hiredAt.Day() == 1 {
		months++
	}
	prorated := baseDays * months / 12
	return prorated + carryover
}

// Balance returns entitlement minus days already consumed by approved
// requests. It never goes below zero.
func Balance(entitlement, approvedDays int) int {
	if approvedDays < 0 {
		approvedDays = 0
	}
	b := entitlement - approvedDays
	if b < 0 {
		return 0
	}
	return b
}

// Weekdays counts Monday..Friday days in [from, to] inclusive. An
// inverted range counts as zero.
func Weekdays(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	if to.Before(from) {
		return 0
	}
	n := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			n++
		}
	}
	return n
}
