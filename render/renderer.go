package render

import (
	"image/color"

	"geotile/geom"
)

// Tessellate builds the shape variant selected by feature.Environment,
// enqueues it with its fixed z-index, and expands bbox to cover every
// one of its (pre-scaled) screen coordinates. Features classified
// Unknown are dropped and Tessellate returns nil.
func Tessellate(feature geom.MapFeatureData, bbox *geom.ScreenBoundingBox, q *Queue, styles *StyleTable) Shape {
	if styles == nil {
		styles = DefaultStyleTable()
	}

	shape := buildShape(feature, styles)
	if shape == nil {
		return nil
	}

	for _, c := range shape.Coordinates() {
		bbox.Expand(c.X, c.Y)
	}
	q.Push(shape)
	return shape
}

func buildShape(f geom.MapFeatureData, styles *StyleTable) Shape {
	switch f.Environment {
	case geom.Unknown:
		return nil

	case geom.Water:
		isPolygon := f.GeometryKind == geom.GeometryPolygon || f.GeometryKind == geom.GeometryMultiPolygon
		return &WaterwayShape{
			shapeHeader: newShapeHeader(f.Coordinates, zWaterway),
			IsPolygon:   isPolygon,
			Fill:        styles.WaterwayFill,
			Stroke:      styles.WaterwayStroke,
			Width:       styles.WaterwayWidth,
		}

	case geom.Road:
		return &RoadShape{
			shapeHeader: newShapeHeader(f.Coordinates, zRoad),
			Stroke:      styles.RoadStroke,
			Width:       styles.RoadWidth,
		}

	case geom.Highway:
		return &HighwayShape{
			shapeHeader: newShapeHeader(f.Coordinates, zHighway),
			Stroke:      styles.HighwayStroke,
			Width:       styles.HighwayWidth,
		}

	case geom.Railway:
		return &RailwayShape{
			shapeHeader: newShapeHeader(f.Coordinates, zRailway),
			Stroke:      styles.RailwayStroke,
			Width:       styles.RailwayWidth,
		}

	case geom.Border:
		return &BorderShape{
			shapeHeader: newShapeHeader(f.Coordinates, zBorder),
			Stroke:      styles.BorderStroke,
			Width:       styles.BorderWidth,
		}

	case geom.PopulatedPlace:
		label := f.Label
		if f.Name != nil && *f.Name != "" {
			label = *f.Name
		}
		return &PopulatedPlaceShape{
			shapeHeader: newShapeHeader(f.Coordinates, zPopulated),
			Label:       label,
			Style:       styles.LabelStyle,
		}

	case geom.Plain, geom.Forest, geom.Mountains, geom.Desert, geom.Lakes, geom.NationalPark, geom.Civilian, geom.Buildings:
		subtype := subtypeFor(f.Environment)
		style := styles.geoFeature(subtype)
		return &GeoFeatureShape{
			shapeHeader: newShapeHeader(f.Coordinates, style.ZIndex),
			Subtype:     subtype,
			Fill:        style.Fill,
		}

	default:
		return nil
	}
}

func subtypeFor(category geom.EnvironmentCategory) GeoFeatureSubtype {
	switch category {
	case geom.Plain:
		return SubtypePlain
	case geom.Forest:
		return SubtypeForest
	case geom.Mountains:
		return SubtypeMountains
	case geom.Desert:
		return SubtypeDesert
	case geom.Lakes:
		return SubtypeLakes
	case geom.NationalPark:
		return SubtypeNationalPark
	case geom.Civilian:
		return SubtypeCivilian
	default:
		return SubtypeBuildings
	}
}

// Render drains q in ascending z-index order onto a width x height
// canvas filled with opaque white, scaling every shape by the uniform
// factor that fits bbox into the canvas. A non-positive extent (empty
// scene) returns the background-filled canvas untouched. The queue is
// consumed: after Render returns, q.Len() == 0.
func Render(q *Queue, bbox geom.ScreenBoundingBox, width, height int) *ImageCanvas {
	canvas := NewImageCanvas(width, height)
	canvas.Fill(color.White)

	widthExtent, heightExtent := bbox.Width(), bbox.Height()
	if widthExtent <= 0 || heightExtent <= 0 {
		drainRemaining(q)
		return canvas
	}

	scaleX := float32(width) / widthExtent
	scaleY := float32(height) / heightExtent
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	for q.Len() > 0 {
		shape := q.Pop()
		if len(shape.Coordinates()) < shape.MinCoordinates() {
			continue // degenerate shape: silently skipped
		}
		shape.TranslateAndScale(bbox.MinX, bbox.MinY, scale, float32(height))
		shape.Draw(canvas)
	}
	return canvas
}

func drainRemaining(q *Queue) {
	for q.Len() > 0 {
		q.Pop()
	}
}
