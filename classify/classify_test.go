package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"geotile/geom"
)

func TestClassifyHighway(t *testing.T) {
	props := geom.Properties{"highway": "motorway"}
	assert.Equal(t, geom.Highway, Classify(props, geom.GeometryLine))
}

func TestClassifyRoad(t *testing.T) {
	props := geom.Properties{"highway": "residential"}
	assert.Equal(t, geom.Road, Classify(props, geom.GeometryLine))
}

func TestClassifyWaterRequiresNonPoint(t *testing.T) {
	props := geom.Properties{"waterway": "river"}
	assert.Equal(t, geom.Water, Classify(props, geom.GeometryLine))
	assert.Equal(t, geom.Unknown, Classify(props, geom.GeometryPoint))
}

func TestClassifyWaterMatchesMultiPolygon(t *testing.T) {
	// rule 3 only excludes Point; a multi-part lake is still Water.
	props := geom.Properties{"water": "lake"}
	assert.Equal(t, geom.Water, Classify(props, geom.GeometryMultiPolygon))
}

func TestClassifyBorderRequiresAdminLevelTwo(t *testing.T) {
	props := geom.Properties{"boundary": "administrative", "admin_level": "2"}
	assert.Equal(t, geom.Border, Classify(props, geom.GeometryPolygon))

	props["admin_level"] = "4"
	assert.Equal(t, geom.Unknown, Classify(props, geom.GeometryPolygon))
}

func TestClassifyPopulatedPlaceRequiresPoint(t *testing.T) {
	props := geom.Properties{"place": "city"}
	assert.Equal(t, geom.PopulatedPlace, Classify(props, geom.GeometryPoint))
	assert.Equal(t, geom.Unknown, Classify(props, geom.GeometryPolygon))
}

func TestClassifyRailway(t *testing.T) {
	props := geom.Properties{"railway": "rail"}
	assert.Equal(t, geom.Railway, Classify(props, geom.GeometryLine))
}

func TestClassifyNaturalSwitch(t *testing.T) {
	cases := map[string]geom.EnvironmentCategory{
		"grassland": geom.Plain,
		"wood":      geom.Forest,
		"bare_rock": geom.Mountains,
		"sand":      geom.Desert,
		"water":     geom.Lakes,
		"glacier":   geom.Unknown,
	}
	for value, want := range cases {
		props := geom.Properties{"natural": value}
		assert.Equal(t, want, Classify(props, geom.GeometryPolygon), "natural=%s", value)
	}
}

func TestClassifyNaturalRequiresPolygon(t *testing.T) {
	props := geom.Properties{"natural": "wood"}
	assert.Equal(t, geom.Unknown, Classify(props, geom.GeometryLine))
}

func TestClassifyForestBoundaryAndLanduse(t *testing.T) {
	assert.Equal(t, geom.Forest, Classify(geom.Properties{"boundary": "forest_compartment"}, geom.GeometryPolygon))
	assert.Equal(t, geom.Forest, Classify(geom.Properties{"landuse": "orchard"}, geom.GeometryPolygon))
}

func TestClassifyCivilianLanduse(t *testing.T) {
	props := geom.Properties{"landuse": "industrial"}
	assert.Equal(t, geom.Civilian, Classify(props, geom.GeometryPolygon))
}

func TestClassifyPlainLanduse(t *testing.T) {
	props := geom.Properties{"landuse": "meadow"}
	assert.Equal(t, geom.Plain, Classify(props, geom.GeometryPolygon))
}

func TestClassifyLakesLanduse(t *testing.T) {
	props := geom.Properties{"landuse": "reservoir"}
	assert.Equal(t, geom.Lakes, Classify(props, geom.GeometryPolygon))
}

func TestClassifyBuildingsAndAmenity(t *testing.T) {
	assert.Equal(t, geom.Buildings, Classify(geom.Properties{"building": "yes"}, geom.GeometryPolygon))
	assert.Equal(t, geom.Buildings, Classify(geom.Properties{"amenity": "school"}, geom.GeometryPolygon))
}

func TestClassifyLeisureIsNationalPark(t *testing.T) {
	props := geom.Properties{"leisure": "park"}
	assert.Equal(t, geom.NationalPark, Classify(props, geom.GeometryPolygon))
}

func TestClassifyFallsThroughToUnknown(t *testing.T) {
	assert.Equal(t, geom.Unknown, Classify(geom.Properties{"foo": "bar"}, geom.GeometryPolygon))
}

func TestClassifyRuleOrderHighwayBeatsWater(t *testing.T) {
	// highway rules run before the water rule; a feature matching both
	// must resolve as Highway, not Water.
	props := geom.Properties{"highway": "trunk", "waterway": "canal"}
	assert.Equal(t, geom.Highway, Classify(props, geom.GeometryLine))
}
