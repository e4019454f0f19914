package services

import (
	"fmt"
	"time"
	"timezone-months-service/internal/domain"
)

// ComputeMonthEnds returns, for every month in the inclusive range from..to,
// the last second of that month in timezone, converted to UTC and rendered
// with format (ISO when empty).
//
// Boundaries are built in local wall-clock time and only then converted, so
// a DST change inside a month shifts its UTC instant by the offset
// difference. When from is after to the result is empty, not an error.
func ComputeMonthEnds(timezone, from, to, format string) ([]string, error) {
	fromMonth, err := domain.ParseYearMonth(from)
	if err != nil {
		return nil, fmt.Errorf("compute month ends: from: %w", err)
	}
	toMonth, err := domain.ParseYearMonth(to)
	if err != nil {
		return nil, fmt.Errorf("compute month ends: to: %w", err)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("compute month ends: load location %q: %w: %w", timezone, domain.ErrConversion, err)
	}

	template := MapDateFormat(format)

	cursor := fromMonth
	end := toMonth.Next().FirstDay(loc)

	monthEnds := make([]string, 0, domain.MonthsBetween(fromMonth, toMonth))
	for cursor.FirstDay(loc).Before(end) {
		next := cursor.Next()
		lastSecond := next.FirstDay(loc).Add(-time.Second).UTC()

		s := renderTemplate(template, lastSecond)
		if s == "" {
			return nil, fmt.Errorf("compute month ends: render %s with %q: %w", cursor, format, domain.ErrConversion)
		}
		monthEnds = append(monthEnds, s)

		cursor = next
	}

	return monthEnds, nil
}
