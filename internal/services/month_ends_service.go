package services

import (
	"context"
	"fmt"
	"timezone-months-service/internal/domain"
	"timezone-months-service/internal/metrics"
	"timezone-months-service/internal/platform/obs"
	"timezone-months-service/internal/ports"
)

// Resolves the timezone of a location and computes its month ends.
type MonthEndsService struct {
	Resolver ports.TimezoneResolver
}

func NewMonthEndsService(resolver ports.TimezoneResolver) *MonthEndsService {
	return &MonthEndsService{Resolver: resolver}
}

func (s *MonthEndsService) Compute(
	ctx context.Context,
	coords domain.Coordinates,
	from string,
	to string,
	format string,
) (_ domain.MonthEnds, err error) {
	defer obs.Time(ctx, "month_ends.compute")(&err)

	tz := s.Resolver.Resolve(ctx, coords)

	values, err := ComputeMonthEnds(tz, from, to, format)
	if err != nil {
		return domain.MonthEnds{}, fmt.Errorf("month ends for %s in %s: %w", coords, tz, err)
	}
	metrics.MonthsComputed.Add(float64(len(values)))

	return domain.MonthEnds{
		Timezone: tz,
		Format:   format,
		Values:   values,
	}, nil
}
