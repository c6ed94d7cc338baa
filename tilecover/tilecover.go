// Package tilecover implements the tilesForBoundingBox collaborator the
// feature iterator treats as a known pure function over the geographic
// grid, using the same paulmach/orb tile-cover machinery the teacher uses
// to compute tile counts and covers for its own download tasks.
package tilecover

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/maptile/tilecover"

	"geotile/geom"
)

// TileID packs a z/x/y tile into the u32 id stored in TileHeaderEntry.
// Zoom occupies the top 6 bits, x and y 13 bits each - comfortable up to
// zoom 13, which covers every zoom this store is built at. Both the
// fixture builder and ForEachFeature must agree on this packing; it is
// an implementation convention, not part of the on-disk format.
func TileID(t maptile.Tile) uint32 {
	return uint32(t.Z)<<26 | (uint32(t.X)&0x1FFF)<<13 | (uint32(t.Y) & 0x1FFF)
}

// TilesForBoundingBox returns the ids of every tile at zoom that covers
// box, deduplicated, in ascending order.
func TilesForBoundingBox(box geom.GeographicBoundingBox, zoom int) []uint32 {
	if box.Empty() {
		return nil
	}
	bound := orb.Bound{
		Min: orb.Point{box.MinLon, box.MinLat},
		Max: orb.Point{box.MaxLon, box.MaxLat},
	}
	tiles := tilecover.Bound(bound, maptile.Zoom(zoom))

	ids := make([]uint32, 0, len(tiles))
	for t := range tiles {
		ids = append(ids, TileID(t))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// TilesForPoint returns the single tile id at zoom that contains (lat, lon).
// Fixture builders use this to assign a feature to its primary tile
// without duplicating the bounding-box cover logic.
func TilesForPoint(lat, lon float64, zoom int) []uint32 {
	t := maptile.At(orb.Point{lon, lat}, maptile.Zoom(zoom))
	return []uint32{TileID(t)}
}
