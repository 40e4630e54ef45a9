package location

import (
	"context"
	"testing"

	"github.com/jonathan/career-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	saved := &types.UserLocation{
		Latitude:  12.9716,
		Longitude: 77.5946,
		City:      "Bangalore",
		State:     "Karnataka",
		Country:   "India",
	}
	require.NoError(t, s.Save(ctx, saved, types.PermissionGranted))

	loc, perm, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.PermissionGranted, perm)
	assert.Equal(t, saved, loc)
}

func TestStoreEmptyReadsAsPrompt(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	loc, perm, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loc)
	assert.Equal(t, types.PermissionPrompt, perm)
}

func TestStoreDeniedHidesLocation(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	loc := &types.UserLocation{Latitude: 1, Longitude: 2}
	require.NoError(t, s.Save(ctx, loc, types.PermissionGranted))
	require.NoError(t, s.Save(ctx, nil, types.PermissionDenied))

	got, perm, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, types.PermissionDenied, perm)
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Save(ctx, &types.UserLocation{Latitude: 1, Longitude: 2}, types.PermissionGranted))
	require.NoError(t, s.Clear(ctx))

	loc, perm, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loc)
	assert.Equal(t, types.PermissionPrompt, perm)
}

func TestStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Save(ctx, &types.UserLocation{Latitude: 1, Longitude: 2}, types.PermissionGranted))
	require.NoError(t, s.Save(ctx, &types.UserLocation{Latitude: 3, Longitude: 4, City: "Pune"}, types.PermissionGranted))

	loc, _, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3.0, loc.Latitude)
	assert.Equal(t, "Pune", loc.City)
}
