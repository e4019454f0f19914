package ports

import (
	"context"
	"timezone-months-service/internal/domain"
)

// Contract for mapping coordinates to an IANA timezone identifier.
type TimezoneResolver interface {
	// Return the timezone for the coordinates. Implementations never fail;
	// a lookup miss resolves to a fallback identifier.
	Resolve(ctx context.Context, coords domain.Coordinates) string
}
