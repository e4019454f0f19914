package timezone

import (
	"context"
	"timezone-months-service/internal/domain"
	"timezone-months-service/internal/metrics"
	"timezone-months-service/internal/platform/obs"
	"timezone-months-service/internal/ports"

	"github.com/rs/zerolog/log"
)

// FallbackTimezone is used when the boundary dataset has no zone for a point.
const FallbackTimezone = "UTC"

// Resolves coordinates against a timezone-boundary dataset.
// The dataset is read-only, so a FinderResolver is safe for concurrent use.
type FinderResolver struct {
	finder   ports.ZoneFinder
	fallback string
}

func NewFinderResolver(finder ports.ZoneFinder, fallback string) *FinderResolver {
	if fallback == "" {
		fallback = FallbackTimezone
	}
	return &FinderResolver{finder: finder, fallback: fallback}
}

// Resolve returns the first candidate zone for the point. Candidates come
// back sorted, so the choice is the same on every call.
func (r *FinderResolver) Resolve(ctx context.Context, coords domain.Coordinates) string {
	names, err := r.finder.GetTimezoneNames(coords.Lon, coords.Lat)
	if err != nil {
		return r.fallbackFor(ctx, coords, err.Error())
	}
	if len(names) == 0 || names[0] == "" {
		return r.fallbackFor(ctx, coords, "no candidates")
	}

	if len(names) > 1 {
		log.Debug().
			Str("req_id", obs.RequestID(ctx)).
			Stringer("coords", coords).
			Strs("candidates", names).
			Msg("Ambiguous timezone lookup, using first candidate")
	}

	metrics.ResolutionsTotal.WithLabelValues("resolved").Inc()
	return names[0]
}

func (r *FinderResolver) fallbackFor(ctx context.Context, coords domain.Coordinates, reason string) string {
	log.Warn().
		Str("req_id", obs.RequestID(ctx)).
		Stringer("coords", coords).
		Str("reason", reason).
		Str("fallback", r.fallback).
		Msg("Timezone lookup missed, using fallback")

	metrics.ResolutionsTotal.WithLabelValues("fallback").Inc()
	return r.fallback
}
