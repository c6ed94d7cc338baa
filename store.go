// Package geotile is a memory-mapped, read-only geographic tile store:
// headers, feature records, coordinates and strings are decoded on demand
// straight from a single mapped region, and only the tiles covering a
// query's bounding box are read. Coordinates and strings handed to the
// callback are decoded copies, not views into the region.
package geotile

import (
	"fmt"
	"os"
	"sync"

	"github.com/tysonmote/gommap"

	"geotile/internal/layout"
)

// OpenError reports that a tile file could not be mapped: missing, too
// small for its own header, or denied by the filesystem.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("geotile: open %s: %s", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// Store owns a memory-mapped tile file. The mapped region is acquired at
// Open and released at Close; there is no partial state in between. A
// Store is safe to share read-only across goroutines, but each goroutine
// driving ForEachFeature must not reenter the same call concurrently with
// itself (the iterator reuses a scratch property map).
type Store struct {
	file   *os.File
	region gommap.MMap
	header layout.FileHeader

	closeOnce sync.Once
	closeErr  error
}

// Open memory-maps path read-only and validates the file header and tile
// index fit within the mapped region.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}

	region, err := gommap.Map(f.Fd(), gommap.PROT_READ, gommap.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}

	header, err := layout.ReadFileHeader(region)
	if err != nil {
		region.UnsafeUnmap()
		f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}

	minSize := int64(layout.FileHeaderSize) + int64(header.TileCount)*int64(layout.TileHeaderEntrySize)
	if info.Size() < minSize {
		region.UnsafeUnmap()
		f.Close()
		return nil, &OpenError{Path: path, Err: fmt.Errorf("file size %d smaller than header+index %d", info.Size(), minSize)}
	}

	return &Store{file: f, region: region, header: header}, nil
}

// Close releases the mapped region and the underlying file descriptor.
// Double-close is a no-op; using the Store afterwards is a programming
// error.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		if err := s.region.UnsafeUnmap(); err != nil {
			s.closeErr = err
			return
		}
		s.closeErr = s.file.Close()
	})
	return s.closeErr
}

// TileCount reports how many tiles the index carries.
func (s *Store) TileCount() int { return int(s.header.TileCount) }

// Version reports the file format version marker.
func (s *Store) Version() uint32 { return s.header.Version }
