package timezone

import (
	"context"
	"timezone-months-service/internal/domain"
)

// Resolves every point to one configured zone. Used for offline runs
// where loading the boundary dataset is not wanted.
type StaticResolver struct {
	Timezone string
}

func NewStaticResolver(tz string) *StaticResolver {
	if tz == "" {
		tz = FallbackTimezone
	}
	return &StaticResolver{Timezone: tz}
}

func (r *StaticResolver) Resolve(ctx context.Context, coords domain.Coordinates) string {
	return r.Timezone
}
