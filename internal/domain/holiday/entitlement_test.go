package holiday

import (
	"testing"
	"time"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestEntitlement(t *testing.T) {
	tests := []struct {
		name      string
		base      int
		carryover int
		hiredAt   *time.Time
		year      int
		want      int
	}{
		{"no hire date", 28, 0, nil, 2026, 28},
		{"hired in earlier year", 28, 0, datePtr(2020, time.March, 15), 2026, 28},
		{"hired in later year", 28, 0, datePtr(2027, time.January, 1), 2026, 0},
		{"hired january first", 24, 0, datePtr(2026, time.January, 1), 2026, 24},
		{"hired july first", 24, 0, datePtr(2026, time.July, 1), 2026, 12},
		{"hired mid july", 24, 0, datePtr(2026, time.July, 15), 2026, 10},
		{"hired december", 24, 0, datePtr(2026, time.December, 15), 2026, 0},
		{"carryover added after proration", 24, 5, datePtr(2026, time.July, 1), 2026, 17},
		{"carryover on full year", 28, 3, nil, 2026, 31},
		{"negative base floored", -5, 0, nil, 2026, 0},
		{"negative carryover floored", 28, -3, nil, 2026, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Entitlement(tt.base, tt.carryover, tt.hiredAt, tt.year)
			if got != tt.want {
				t.Errorf("Entitlement(%d, %d, %v, %d) = %d, want %d",
					tt.base, tt.carryover, tt.hiredAt, tt.year, got, tt.want)
			}
		})
	}
}

func TestBalance(t *testing.T) {
	if got := Balance(28, 10); got != 18 {
		t.Errorf("Balance(28, 10) = %d, want 18", got)
	}
	if got := Balance(10, 15); got != 0 {
		t.Errorf("Balance(10, 15) = %d, want 0 (never negative)", got)
	}
	if got := Balance(10, -3); got != 10 {
		t.Errorf("Balance(10, -3) = %d, want 10", got)
	}
}

func TestWeekdays(t *testing.T) {
	mon := time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC)
	fri := time.Date(2026, time.August, 7, 0, 0, 0, 0, time.UTC)
	sun := time.Date(2026, time.August, 9, 0, 0, 0, 0, time.UTC)
	sat := time.Date(2026, time.August, 8, 0, 0, 0, 0, time.UTC)

	if got := Weekdays(mon, fri); got != 5 {
		t.Errorf("Mon..Fri = %d, want 5", got)
	}
	if got := Weekdays(mon, sun); got != 5 {
		t.Errorf("Mon..Sun = %d, want 5 (weekend excluded)", got)
	}
	if got := Weekdays(sat, sun); got != 0 {
		t.Errorf("Sat..Sun = %d, want 0", got)
	}
	if got := Weekdays(mon, mon); got != 1 {
		t.Errorf("single weekday = %d, want 1", got)
	}
	if got := Weekdays(fri, mon); got != 0 {
		t.Errorf("inverted range = %d, want 0", got)
	}
	// Two full weeks spanning two weekends.
	if got := Weekdays(mon, mon.AddDate(0, 0, 13)); got != 10 {
		t.Errorf("two weeks = %d, want 10", got)
	}
}
