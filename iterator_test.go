package geotile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geotile/geom"
	"geotile/internal/fixture"
	"geotile/internal/layout"
	"geotile/tilecover"
)

func buildStore(t *testing.T, b *fixture.Builder) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiles.bin")
	require.NoError(t, os.WriteFile(path, b.Build(), 0644))
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

const testZoom = 4

func TestForEachFeatureYieldsMatchingFeature(t *testing.T) {
	b := fixture.NewBuilder(1)
	tileID := b.AddFeatureAtPoint(10, 10, testZoom, fixture.Feature{
		ID:           1,
		GeometryKind: uint8(geom.GeometryPoint),
		Coordinates:  []layout.Coordinate{{X: 10, Y: 10}},
		HasLabel:     true,
		Label:        "Springfield",
		Properties:   []fixture.PropertyPair{{Key: "place", Value: "city"}, {Key: "name", Value: "Springfield"}},
	})
	require.NotZero(t, tileID)

	store := buildStore(t, b)

	var got []geom.MapFeatureData
	box := geom.GeographicBoundingBox{MinLat: 9, MaxLat: 11, MinLon: 9, MaxLon: 11}
	err := store.ForEachFeature(box, testZoom, func(f geom.MapFeatureData) bool {
		got = append(got, f)
		return true
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, geom.PopulatedPlace, got[0].Environment)
	require.NotNil(t, got[0].Name)
	assert.Equal(t, "Springfield", *got[0].Name)
}

func TestForEachFeatureSkipsFeaturesOutsideBox(t *testing.T) {
	b := fixture.NewBuilder(1)
	b.AddFeatureAtPoint(10, 10, testZoom, fixture.Feature{
		ID:           1,
		GeometryKind: uint8(geom.GeometryPoint),
		Coordinates:  []layout.Coordinate{{X: 10, Y: 10}},
	})

	store := buildStore(t, b)

	box := geom.GeographicBoundingBox{MinLat: 50, MaxLat: 51, MinLon: 50, MaxLon: 51}
	count := 0
	err := store.ForEachFeature(box, testZoom, func(geom.MapFeatureData) bool {
		count++
		return true
	})

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestForEachFeatureStopsOnCallbackFalse(t *testing.T) {
	b := fixture.NewBuilder(1)
	box := geom.GeographicBoundingBox{MinLat: 0, MaxLat: 20, MinLon: 0, MaxLon: 20}
	for i := int64(0); i < 5; i++ {
		lat := 1.0 + float64(i)
		b.AddFeatureAtPoint(lat, 1, testZoom, fixture.Feature{
			ID:           i,
			GeometryKind: uint8(geom.GeometryPoint),
			Coordinates:  []layout.Coordinate{{X: 1, Y: float32(lat)}},
		})
	}

	store := buildStore(t, b)

	count := 0
	err := store.ForEachFeature(box, testZoom, func(geom.MapFeatureData) bool {
		count++
		return false
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestForEachFeatureNilCallbackIsNoop(t *testing.T) {
	store := buildStore(t, fixture.NewBuilder(1))
	box := geom.GeographicBoundingBox{MinLat: 0, MaxLat: 1, MinLon: 0, MaxLon: 1}
	assert.NoError(t, store.ForEachFeature(box, testZoom, nil))
}

func TestForEachFeatureEmptyBoxIsNoop(t *testing.T) {
	store := buildStore(t, fixture.NewBuilder(1))
	called := false
	err := store.ForEachFeature(geom.GeographicBoundingBox{MinLat: 5, MaxLat: 1}, testZoom, func(geom.MapFeatureData) bool {
		called = true
		return true
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestForEachFeatureDeduplicatesAcrossCoveringTiles(t *testing.T) {
	// A feature near a tile boundary can be covered by more than one
	// tilesForBoundingBox result, but it lives in exactly one primary
	// tile block, so it must still be yielded exactly once.
	b := fixture.NewBuilder(1)
	b.AddFeatureAtPoint(10, 10, testZoom, fixture.Feature{
		ID:           1,
		GeometryKind: uint8(geom.GeometryPoint),
		Coordinates:  []layout.Coordinate{{X: 10, Y: 10}},
	})

	store := buildStore(t, b)

	box := geom.GeographicBoundingBox{MinLat: 0, MaxLat: 20, MinLon: 0, MaxLon: 20}
	covering := tilecover.TilesForBoundingBox(box, testZoom)
	require.True(t, len(covering) >= 1)

	count := 0
	err := store.ForEachFeature(box, testZoom, func(geom.MapFeatureData) bool {
		count++
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
