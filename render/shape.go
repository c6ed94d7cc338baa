// Package render turns classified features into z-ordered shapes and
// composites them onto a raster canvas. Shapes are a closed set of
// concrete struct types, one per variant, sharing an embedded header
// rather than a class hierarchy; the renderer holds them as Shape
// interface values and calls Draw through that interface.
package render

import (
	"image/color"

	"geotile/geom"
)

// Shape is anything the renderer can translate to screen space and draw.
// Every variant owns a mutable copy of its input coordinates; shapes live
// only for the duration of one render call.
type Shape interface {
	ZIndex() int32
	Coordinates() []geom.Coordinate
	MinCoordinates() int
	TranslateAndScale(originX, originY, scale, canvasHeight float32)
	Draw(c Canvas)
}

// shapeHeader is embedded by every concrete shape; it carries the mutable
// screen coordinates and the fixed z-index assigned at construction.
type shapeHeader struct {
	screen []geom.Coordinate
	zIndex int32
}

func newShapeHeader(src []geom.Coordinate, zIndex int32) shapeHeader {
	screen := make([]geom.Coordinate, len(src))
	copy(screen, src)
	return shapeHeader{screen: screen, zIndex: zIndex}
}

func (h *shapeHeader) ZIndex() int32                  { return h.zIndex }
func (h *shapeHeader) Coordinates() []geom.Coordinate { return h.screen }

// MinCoordinates is the fewest screen coordinates a variant can draw
// with; Render treats anything short of this as degenerate. Lines and
// polygons need two points to draw anything; PopulatedPlaceShape
// overrides this to 1 since it draws a label at a single point.
func (h *shapeHeader) MinCoordinates() int { return 2 }

// translateAndScale maps each (x, y) to ((x-originX)*scale, canvasHeight-(y-originY)*scale).
// Y is inverted because screen Y grows downward while the source plane's
// Y grows upward.
func (h *shapeHeader) translateAndScale(originX, originY, scale, canvasHeight float32) {
	for i, c := range h.screen {
		h.screen[i] = geom.Coordinate{
			X: (c.X - originX) * scale,
			Y: canvasHeight - (c.Y-originY)*scale,
		}
	}
}

// GeoFeatureSubtype names the environment categories that share the
// filled-polygon "geo feature" shape: areas of land cover distinguished
// only by fill color and z-index.
type GeoFeatureSubtype uint8

const (
	SubtypePlain GeoFeatureSubtype = iota
	SubtypeForest
	SubtypeMountains
	SubtypeDesert
	SubtypeLakes
	SubtypeNationalPark
	SubtypeCivilian
	SubtypeBuildings
)

// GeoFeatureShape is a filled polygon area: plains, forests, mountains,
// desert, lakes, national parks, civilian land use or buildings.
type GeoFeatureShape struct {
	shapeHeader
	Subtype GeoFeatureSubtype
	Fill    color.Color
}

func (s *GeoFeatureShape) TranslateAndScale(ox, oy, scale, h float32) { s.translateAndScale(ox, oy, scale, h) }
func (s *GeoFeatureShape) Draw(c Canvas)                              { c.DrawPolygon(s.screen, s.Fill) }

// WaterwayShape is a river/stream (line) or a lake body stored as a
// polygon; IsPolygon distinguishes the two so Draw knows which primitive
// to issue.
type WaterwayShape struct {
	shapeHeader
	IsPolygon bool
	Fill      color.Color
	Stroke    color.Color
	Width     float32
}

func (s *WaterwayShape) TranslateAndScale(ox, oy, scale, h float32) { s.translateAndScale(ox, oy, scale, h) }
func (s *WaterwayShape) Draw(c Canvas) {
	if s.IsPolygon {
		c.DrawPolygon(s.screen, s.Fill)
		return
	}
	c.DrawLine(s.screen, s.Stroke, s.Width, false)
}

// RoadShape is a light, mid-width stroke.
type RoadShape struct {
	shapeHeader
	Stroke color.Color
	Width  float32
}

func (s *RoadShape) TranslateAndScale(ox, oy, scale, h float32) { s.translateAndScale(ox, oy, scale, h) }
func (s *RoadShape) Draw(c Canvas)                              { c.DrawLine(s.screen, s.Stroke, s.Width, false) }

// HighwayShape is a heavier, higher-contrast stroke than Road.
type HighwayShape struct {
	shapeHeader
	Stroke color.Color
	Width  float32
}

func (s *HighwayShape) TranslateAndScale(ox, oy, scale, h float32) { s.translateAndScale(ox, oy, scale, h) }
func (s *HighwayShape) Draw(c Canvas)                              { c.DrawLine(s.screen, s.Stroke, s.Width, false) }

// RailwayShape is a dashed stroke.
type RailwayShape struct {
	shapeHeader
	Stroke color.Color
	Width  float32
}

func (s *RailwayShape) TranslateAndScale(ox, oy, scale, h float32) { s.translateAndScale(ox, oy, scale, h) }
func (s *RailwayShape) Draw(c Canvas)                              { c.DrawLine(s.screen, s.Stroke, s.Width, true) }

// BorderShape is a dashed, bold stroke.
type BorderShape struct {
	shapeHeader
	Stroke color.Color
	Width  float32
}

func (s *BorderShape) TranslateAndScale(ox, oy, scale, h float32) { s.translateAndScale(ox, oy, scale, h) }
func (s *BorderShape) Draw(c Canvas)                              { c.DrawLine(s.screen, s.Stroke, s.Width, true) }

// PopulatedPlaceShape is a single point with a text label.
type PopulatedPlaceShape struct {
	shapeHeader
	Label string
	Style TextStyle
}

func (s *PopulatedPlaceShape) TranslateAndScale(ox, oy, scale, h float32) {
	s.translateAndScale(ox, oy, scale, h)
}
func (s *PopulatedPlaceShape) Draw(c Canvas) {
	if len(s.screen) == 0 {
		return
	}
	c.DrawText(s.screen[0], s.Label, s.Style)
}

// MinCoordinates overrides shapeHeader's default: a label only needs
// the single point it is drawn at.
func (s *PopulatedPlaceShape) MinCoordinates() int { return 1 }
