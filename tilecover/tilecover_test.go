package tilecover

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"geotile/geom"
)

func TestTilesForBoundingBoxEmptyReturnsNil(t *testing.T) {
	box := geom.GeographicBoundingBox{MinLat: 5, MaxLat: 1}
	assert.Nil(t, TilesForBoundingBox(box, 4))
}

func TestTilesForBoundingBoxIsSortedAndDeduplicated(t *testing.T) {
	box := geom.GeographicBoundingBox{MinLat: -1, MaxLat: 1, MinLon: -1, MaxLon: 1}
	ids := TilesForBoundingBox(box, 4)

	assert.NotEmpty(t, ids)
	seen := make(map[uint32]bool, len(ids))
	for i, id := range ids {
		assert.False(t, seen[id], "duplicate tile id %d", id)
		seen[id] = true
		if i > 0 {
			assert.True(t, ids[i-1] < id)
		}
	}
}

func TestTilesForPointMatchesBoundingBoxCover(t *testing.T) {
	ids := TilesForPoint(10, 10, 6)
	require := assert.New(t)
	require.Len(ids, 1)

	box := geom.GeographicBoundingBox{MinLat: 10, MaxLat: 10, MinLon: 10, MaxLon: 10}
	cover := TilesForBoundingBox(box, 6)
	require.Contains(cover, ids[0])
}
