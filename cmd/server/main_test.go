package main

import (
	"context"
	"testing"
	"timezone-months-service/internal/adapters/timezone"
	"timezone-months-service/internal/config"
	"timezone-months-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolverStatic(t *testing.T) {
	opts := Options{Resolver: "static", StaticTimezone: "Asia/Tokyo", CacheSize: 16}

	r, err := newResolver(opts, config.Default())
	require.NoError(t, err)

	assert.IsType(t, &timezone.StaticResolver{}, r)
	assert.Equal(t, "Asia/Tokyo", r.Resolve(context.Background(), domain.Coordinates{Lon: 0, Lat: 0}))
}

func TestNewResolverRejectsUnknownStaticZone(t *testing.T) {
	opts := Options{Resolver: "static", StaticTimezone: "Nowhere/Atlantis"}

	_, err := newResolver(opts, config.Default())
	assert.Error(t, err)
}
