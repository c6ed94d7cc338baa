package render

import "image/color"

// StyleTable fixes the colors, stroke widths and z-indices used to turn a
// classified feature into a shape. The implementer fixes this table at
// construction, per the shape model's design notes; callers that want a
// different palette build their own table and pass it to Tessellate.
type StyleTable struct {
	GeoFeature map[GeoFeatureSubtype]geoFeatureStyle

	WaterwayFill, WaterwayStroke       color.Color
	RoadStroke, HighwayStroke          color.Color
	RailwayStroke, BorderStroke        color.Color
	RoadWidth, HighwayWidth            float32
	RailwayWidth, BorderWidth          float32
	WaterwayWidth                      float32
	LabelStyle                         TextStyle
}

type geoFeatureStyle struct {
	ZIndex int32
	Fill   color.Color
}

// z-indices fixed by the shape model's variant table (§4.E). GeoFeature
// subtypes are spread across 10-34, with Buildings at 36, all below the
// Waterway layer at 40.
const (
	zPlain        int32 = 10
	zForest       int32 = 14
	zMountains    int32 = 18
	zDesert       int32 = 22
	zLakes        int32 = 26
	zNationalPark int32 = 30
	zCivilian     int32 = 34
	zBuildings    int32 = 36
	zWaterway     int32 = 40
	zRoad         int32 = 50
	zRailway      int32 = 55
	zHighway      int32 = 60
	zBorder       int32 = 70
	zPopulated    int32 = 90
)

// DefaultStyleTable returns a reasonable fixed palette, good enough to
// render without any further configuration.
func DefaultStyleTable() *StyleTable {
	return &StyleTable{
		GeoFeature: map[GeoFeatureSubtype]geoFeatureStyle{
			SubtypePlain:        {ZIndex: zPlain, Fill: color.RGBA{0xD8, 0xE8, 0xC8, 0xFF}},
			SubtypeForest:       {ZIndex: zForest, Fill: color.RGBA{0x9E, 0xC9, 0x8A, 0xFF}},
			SubtypeMountains:    {ZIndex: zMountains, Fill: color.RGBA{0xB5, 0xAC, 0xA0, 0xFF}},
			SubtypeDesert:       {ZIndex: zDesert, Fill: color.RGBA{0xE8, 0xDA, 0xAC, 0xFF}},
			SubtypeLakes:        {ZIndex: zLakes, Fill: color.RGBA{0x9F, 0xC9, 0xE8, 0xFF}},
			SubtypeNationalPark: {ZIndex: zNationalPark, Fill: color.RGBA{0xA8, 0xD9, 0xA0, 0xFF}},
			SubtypeCivilian:     {ZIndex: zCivilian, Fill: color.RGBA{0xE0, 0xDC, 0xD4, 0xFF}},
			SubtypeBuildings:    {ZIndex: zBuildings, Fill: color.RGBA{0xC9, 0xBC, 0xAE, 0xFF}},
		},
		WaterwayFill:   color.RGBA{0x8B, 0xBE, 0xE8, 0xFF},
		WaterwayStroke: color.RGBA{0x6C, 0xA6, 0xD9, 0xFF},
		WaterwayWidth:  1.5,
		RoadStroke:     color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		RoadWidth:      1.5,
		HighwayStroke:  color.RGBA{0xF2, 0x9B, 0x3C, 0xFF},
		HighwayWidth:   3,
		RailwayStroke:  color.RGBA{0x60, 0x60, 0x60, 0xFF},
		RailwayWidth:   1,
		BorderStroke:   color.RGBA{0x90, 0x30, 0x30, 0xFF},
		BorderWidth:    2,
		LabelStyle:     TextStyle{Color: color.RGBA{0x20, 0x20, 0x20, 0xFF}},
	}
}

func (t *StyleTable) geoFeature(subtype GeoFeatureSubtype) geoFeatureStyle {
	if s, ok := t.GeoFeature[subtype]; ok {
		return s
	}
	return geoFeatureStyle{ZIndex: zPlain, Fill: color.RGBA{0xCC, 0xCC, 0xCC, 0xFF}}
}
