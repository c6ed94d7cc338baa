// Package fixture builds the on-disk binary tile format in memory, for
// tests that need a real Store without shipping a prebuilt binary file.
// It mirrors the same shape the teacher's loadCollection/loadFeature
// helpers produced from GeoJSON, except it serializes straight to the
// layout this module reads rather than handing back an orb.Collection.
package fixture

import (
	"encoding/binary"
	"math"
	"sort"

	"golang.org/x/text/encoding/unicode"

	"geotile/internal/layout"
	"geotile/tilecover"
)

// Feature is one record to place into a tile block. Properties is an
// ordered list so callers control string-table layout deterministically
// in tests (map iteration order would make fixtures non-reproducible).
type Feature struct {
	ID           int64
	Label        string
	HasLabel     bool
	GeometryKind uint8
	Coordinates  []layout.Coordinate
	Properties   []PropertyPair
}

// PropertyPair is one ordered (key, value) property.
type PropertyPair struct {
	Key, Value string
}

// Builder accumulates features per tile id and serializes them into the
// exact byte layout internal/layout decodes.
type Builder struct {
	version uint32
	tiles   map[uint32][]Feature
}

// NewBuilder returns an empty builder for a file of the given format
// version.
func NewBuilder(version uint32) *Builder {
	return &Builder{version: version, tiles: make(map[uint32][]Feature)}
}

// AddFeature places f into the tile block for tileID.
func (b *Builder) AddFeature(tileID uint32, f Feature) {
	b.tiles[tileID] = append(b.tiles[tileID], f)
}

// AddFeatureAtPoint is a convenience for tests: it resolves tileID from
// (lat, lon) at zoom using the same scheme tilecover.TileID uses, so
// callers never have to compute tile ids by hand.
func (b *Builder) AddFeatureAtPoint(lat, lon float64, zoom int, f Feature) uint32 {
	ids := tilecover.TilesForPoint(lat, lon, zoom)
	if len(ids) == 0 {
		return 0
	}
	b.AddFeature(ids[0], f)
	return ids[0]
}

// Build serializes every accumulated tile into one file-format byte
// slice: FileHeader, sorted TileHeaderEntry array, then each tile's
// TileBlockHeader, feature records, coordinate array and string table
// back to back, in ascending tile id order.
func (b *Builder) Build() []byte {
	tileIDs := make([]uint32, 0, len(b.tiles))
	for id := range b.tiles {
		tileIDs = append(tileIDs, id)
	}
	sort.Slice(tileIDs, func(i, j int) bool { return tileIDs[i] < tileIDs[j] })

	indexSize := layout.FileHeaderSize + len(tileIDs)*layout.TileHeaderEntrySize

	blocks := make([][]byte, len(tileIDs))
	blockOffset := uint64(indexSize)
	for i, id := range tileIDs {
		blocks[i] = encodeTileBlock(b.tiles[id], blockOffset)
		blockOffset += uint64(len(blocks[i]))
	}

	total := indexSize
	for _, blk := range blocks {
		total += len(blk)
	}

	out := make([]byte, total)
	binary.LittleEndian.PutUint32(out[0:4], b.version)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(tileIDs)))

	offset := uint64(indexSize)
	entryOff := layout.FileHeaderSize
	for i, id := range tileIDs {
		binary.LittleEndian.PutUint32(out[entryOff:entryOff+4], id)
		binary.LittleEndian.PutUint64(out[entryOff+4:entryOff+12], offset)
		entryOff += layout.TileHeaderEntrySize
		offset += uint64(len(blocks[i]))
	}

	pos := indexSize
	for _, blk := range blocks {
		copy(out[pos:], blk)
		pos += len(blk)
	}
	return out
}

// encoder accumulates one tile's coordinate array and string table
// while feature records are written, since record offsets into those
// tables must be known before the record bytes themselves are emitted.
type encoder struct {
	coords  []layout.Coordinate
	strings []layout.StringEntry
	chars   []byte // UTF-16LE code units, flat
	index   map[string]int32
}

func newEncoder() *encoder {
	return &encoder{index: make(map[string]int32)}
}

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func (e *encoder) internString(s string) int32 {
	if idx, ok := e.index[s]; ok {
		return idx
	}
	idx := e.appendString(s)
	e.index[s] = idx
	return idx
}

// appendString always adds s as a new string table entry, so property
// key/value pairs land at the consecutive indices the record format uses.
func (e *encoder) appendString(s string) int32 {
	encoded, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		encoded = nil
	}
	offset := uint32(len(e.chars) / 2)
	length := uint32(len(encoded) / 2)
	idx := int32(len(e.strings))
	e.strings = append(e.strings, layout.StringEntry{Offset: offset, Length: length})
	e.chars = append(e.chars, encoded...)
	return idx
}

func (e *encoder) addCoordinates(coords []layout.Coordinate) (offset, count int32) {
	offset = int32(len(e.coords))
	e.coords = append(e.coords, coords...)
	return offset, int32(len(coords))
}

// encodeTileBlock serializes one tile block that will sit at absolute
// file offset base; the offsets in its TileBlockHeader are written
// absolute, as internal/layout reads them.
func encodeTileBlock(features []Feature, base uint64) []byte {
	enc := newEncoder()

	type recordFields struct {
		id               int64
		labelOffset      int32
		geometryKind     uint8
		coordinateOffset int32
		coordinateCount  int32
		propertiesOffset int32
		propertyCount    int32
	}
	records := make([]recordFields, len(features))

	for i, f := range features {
		coordOff, coordCount := enc.addCoordinates(f.Coordinates)

		labelOffset := int32(-1)
		if f.HasLabel {
			labelOffset = enc.internString(f.Label)
		}

		propsOffset := int32(len(enc.strings))
		for _, p := range f.Properties {
			enc.appendString(p.Key)
			enc.appendString(p.Value)
		}

		records[i] = recordFields{
			id:               f.ID,
			labelOffset:      labelOffset,
			geometryKind:     f.GeometryKind,
			coordinateOffset: coordOff,
			coordinateCount:  coordCount,
			propertiesOffset: propsOffset,
			propertyCount:    int32(len(f.Properties)),
		}
	}

	coordBytes := len(enc.coords) * layout.CoordinateSize
	stringBytes := len(enc.strings) * layout.StringEntrySize
	charBytes := len(enc.chars)
	recordBytes := len(records) * layout.MapFeatureRecordSize

	coordinatesOffset := uint64(layout.TileBlockHeaderSize + recordBytes)
	stringsOffset := coordinatesOffset + uint64(coordBytes)
	charactersOffset := stringsOffset + uint64(stringBytes)

	total := int(charactersOffset) + charBytes
	out := make([]byte, total)

	binary.LittleEndian.PutUint32(out[0:4], uint32(len(features)))
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(enc.coords)))
	binary.LittleEndian.PutUint32(out[8:12], uint32(len(enc.strings)))
	binary.LittleEndian.PutUint32(out[12:16], uint32(charBytes/2))
	binary.LittleEndian.PutUint64(out[16:24], base+coordinatesOffset)
	binary.LittleEndian.PutUint64(out[24:32], base+stringsOffset)
	binary.LittleEndian.PutUint64(out[32:40], base+charactersOffset)

	recOff := layout.TileBlockHeaderSize
	for _, r := range records {
		b := out[recOff : recOff+layout.MapFeatureRecordSize]
		binary.LittleEndian.PutUint64(b[0:8], uint64(r.id))
		binary.LittleEndian.PutUint32(b[8:12], uint32(r.labelOffset))
		b[12] = r.geometryKind
		binary.LittleEndian.PutUint32(b[13:17], uint32(r.coordinateOffset))
		binary.LittleEndian.PutUint32(b[17:21], uint32(r.coordinateCount))
		binary.LittleEndian.PutUint32(b[21:25], uint32(r.propertiesOffset))
		binary.LittleEndian.PutUint32(b[25:29], uint32(r.propertyCount))
		recOff += layout.MapFeatureRecordSize
	}

	coordOff := int(coordinatesOffset)
	for _, c := range enc.coords {
		binary.LittleEndian.PutUint32(out[coordOff:coordOff+4], float32Bits(c.X))
		binary.LittleEndian.PutUint32(out[coordOff+4:coordOff+8], float32Bits(c.Y))
		coordOff += layout.CoordinateSize
	}

	strOff := int(stringsOffset)
	for _, s := range enc.strings {
		binary.LittleEndian.PutUint32(out[strOff:strOff+4], s.Offset)
		binary.LittleEndian.PutUint32(out[strOff+4:strOff+8], s.Length)
		strOff += layout.StringEntrySize
	}

	copy(out[charactersOffset:], enc.chars)

	return out
}

func float32Bits(f float32) uint32 { return math.Float32bits(f) }
