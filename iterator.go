package geotile

import (
	"fmt"

	"geotile/classify"
	"geotile/geom"
	"geotile/internal/layout"
	"geotile/tilecover"
)

// LayoutError reports that a tile header, feature record or string /
// coordinate offset reaches outside the mapped region. It aborts the
// current ForEachFeature call; malformed records are never silently
// skipped.
type LayoutError = layout.LayoutError

// ForEachFeature determines the tiles covering box at zoom, walks each
// tile's features in storage order, and invokes cb once per feature that
// has at least one coordinate inside box. cb returning false stops
// iteration immediately, across all remaining tiles. A nil callback
// returns immediately without visiting anything.
//
// Because the fixture builder and tilecover package assign each feature
// to exactly one primary tile (the tile whose block contains it), a
// feature can never be yielded twice in one call even when several
// covering tile ids are returned for the same box.
func (s *Store) ForEachFeature(box geom.GeographicBoundingBox, zoom int, cb func(geom.MapFeatureData) bool) error {
	if cb == nil {
		return nil
	}
	if box.Empty() {
		return nil
	}

	tileIDs := tilecover.TilesForBoundingBox(box, zoom)
	props := make(geom.Properties, 8)

	for _, tileID := range tileIDs {
		block, baseOffset, found, err := layout.FindTile(s.region, s.header, tileID)
		if err != nil {
			return fmt.Errorf("geotile: tile %d: %w", tileID, err)
		}
		if !found {
			continue // tile id not present in index: skipped silently
		}

		stop, err := s.walkTile(block, baseOffset, box, props, cb)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}

func (s *Store) walkTile(block layout.TileBlockHeader, baseOffset int64, box geom.GeographicBoundingBox, props geom.Properties, cb func(geom.MapFeatureData) bool) (stop bool, err error) {
	for i := 0; i < int(block.FeaturesCount); i++ {
		record, err := layout.FeatureAt(s.region, baseOffset, i)
		if err != nil {
			return false, fmt.Errorf("geotile: feature %d: %w", i, err)
		}

		coords, err := layout.Coordinates(s.region, int64(block.CoordinatesOffsetInBytes), int(record.CoordinateOffset), int(record.CoordinateCount))
		if err != nil {
			return false, fmt.Errorf("geotile: feature %d coordinates: %w", record.ID, err)
		}

		kind := geom.GeometryKind(record.GeometryKind)
		if !anyCoordinateInBox(coords, box) {
			continue
		}

		for k := range props {
			delete(props, k)
		}
		if err := loadProperties(s.region, block, record, props); err != nil {
			return false, fmt.Errorf("geotile: feature %d properties: %w", record.ID, err)
		}

		label := ""
		if record.LabelOffset >= 0 {
			label, err = layout.StringAt(s.region, int64(block.StringsOffsetInBytes), int64(block.CharactersOffsetInBytes), int(record.LabelOffset))
			if err != nil {
				return false, fmt.Errorf("geotile: feature %d label: %w", record.ID, err)
			}
		}

		data := geom.MapFeatureData{
			ID:           record.ID,
			GeometryKind: kind,
			Label:        label,
			Coordinates:  coordsToGeom(coords),
			Environment:  classify.Classify(props, kind),
			Name:         lookupName(props),
		}

		if !cb(data) {
			return true, nil
		}
	}
	return false, nil
}

func anyCoordinateInBox(coords []layout.Coordinate, box geom.GeographicBoundingBox) bool {
	for _, c := range coords {
		// Coordinates are stored (x, y); x is treated as longitude, y as latitude,
		// matching the rest of the store's planar convention.
		if box.Contains(float64(c.Y), float64(c.X)) {
			return true
		}
	}
	return false
}

func coordsToGeom(coords []layout.Coordinate) []geom.Coordinate {
	out := make([]geom.Coordinate, len(coords))
	for i, c := range coords {
		out[i] = geom.Coordinate{X: c.X, Y: c.Y}
	}
	return out
}

func loadProperties(region []byte, block layout.TileBlockHeader, record layout.MapFeatureRecord, dst geom.Properties) error {
	n := int(record.PropertyCount)
	for i := 0; i < n; i++ {
		keyIdx := int(record.PropertiesOffset) + 2*i
		valIdx := keyIdx + 1

		key, err := layout.StringAt(region, int64(block.StringsOffsetInBytes), int64(block.CharactersOffsetInBytes), keyIdx)
		if err != nil {
			return err
		}
		val, err := layout.StringAt(region, int64(block.StringsOffsetInBytes), int64(block.CharactersOffsetInBytes), valIdx)
		if err != nil {
			return err
		}
		dst[key] = val // duplicate keys collapse to the last occurrence
	}
	return nil
}

func lookupName(props geom.Properties) *string {
	if name, ok := props.Get("name"); ok && name != "" {
		return &name
	}
	return nil
}
