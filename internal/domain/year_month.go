package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// A calendar month in the Gregorian calendar, independent of any timezone.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Parse a YYYY-MM token. The year must have exactly four digits and the
// month exactly two, zero-padded, in 1..12.
func ParseYearMonth(s string) (YearMonth, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return YearMonth{}, fmt.Errorf("parse month %q: expected YYYY-MM: %w", s, ErrInvalidMonth)
	}

	if len(parts[0]) != 4 || !allDigits(parts[0]) {
		return YearMonth{}, fmt.Errorf("parse month %q: year must be 4 digits: %w", s, ErrInvalidMonth)
	}
	if len(parts[1]) != 2 || !allDigits(parts[1]) {
		return YearMonth{}, fmt.Errorf("parse month %q: month must be 2 digits: %w", s, ErrInvalidMonth)
	}

	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse month %q: %w: %v", s, ErrInvalidMonth, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse month %q: %w: %v", s, ErrInvalidMonth, err)
	}
	if m < 1 || m > 12 {
		return YearMonth{}, fmt.Errorf("parse month %q: month %d out of range: %w", s, m, ErrInvalidMonth)
	}

	return YearMonth{Year: y, Month: time.Month(m)}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Return the calendar month immediately following ym.
func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// Return midnight of the first day of the month as a wall-clock time in loc.
// When midnight does not exist locally (DST gap) time.Date normalizes it forward.
func (ym YearMonth) FirstDay(loc *time.Location) time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, loc)
}

// Inclusive number of months from..to, or 0 when from is after to.
func MonthsBetween(from, to YearMonth) int {
	n := (to.Year-from.Year)*12 + int(to.Month-from.Month) + 1
	if n < 0 {
		return 0
	}
	return n
}
