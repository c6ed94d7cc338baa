// Package classify implements the deterministic rule engine that maps a
// feature's property bag and geometry kind to an environment category.
// Rules are evaluated in a fixed order and the first match wins; this
// ordering is load-bearing and must never be reshuffled for "cleanliness".
package classify

import "geotile/geom"

// HighwayTypes is the closed set of "road-like" highway tag values,
// matched by prefix against the highway property's value.
var HighwayTypes = []string{
	"primary", "secondary", "tertiary", "residential", "service",
	"unclassified", "living_street", "pedestrian", "track", "road",
	"primary_link", "secondary_link", "tertiary_link", "motorway_link", "trunk_link",
}

var plainNaturalValues = set("fell", "grassland", "heath", "moor", "scrub", "wetland")
var forestNaturalValues = set("wood", "tree_row")
var mountainsNaturalValues = set("bare_rock", "rock", "scree")
var desertNaturalValues = set("beach", "sand")

var civilianLanduseValues = []string{
	"residential", "cemetery", "industrial", "commercial", "square",
	"construction", "military", "quarry", "brownfield",
}
var plainLanduseValues = set("farm", "meadow", "grass", "greenfield", "recreation_ground", "winter_sports", "allotments")
var lakesLanduseValues = set("reservoir", "basin")

var populatedPlacePrefixes = []string{"city", "town", "locality", "hamlet"}

func set(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

func anyPrefix(value string, prefixes []string) bool {
	for _, p := range prefixes {
		if hasPrefix(value, p) {
			return true
		}
	}
	return false
}

func hasPrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return s[:len(prefix)] == prefix
}

// Classify applies the §4.D rule table to props and kind, in order,
// returning the first matching category or geom.Unknown if none match.
func Classify(props geom.Properties, kind geom.GeometryKind) geom.EnvironmentCategory {
	highway, hasHighway := props.Get("highway")

	// 1. highway in {motorway, trunk} -> Highway.
	if hasHighway && (highway == "motorway" || highway == "trunk") {
		return geom.Highway
	}

	// 2. highway present and road-like (prefix match against the closed set) -> Road.
	if hasHighway && anyPrefix(highway, HighwayTypes) {
		return geom.Road
	}

	// 3. any key starting with "water" and geometry != Point -> Water.
	if kind != geom.GeometryPoint && props.AnyKeyHasPrefix("water") {
		return geom.Water
	}

	// 4. boundary = administrative and admin_level = 2 -> Border.
	if boundary, ok := props.Get("boundary"); ok && boundary == "administrative" {
		if level, ok := props.Get("admin_level"); ok && level == "2" {
			return geom.Border
		}
	}

	// 5. Point with place present, value prefixed by a populated-place tag -> PopulatedPlace.
	if kind == geom.GeometryPoint {
		if place, ok := props.Get("place"); ok && anyPrefix(place, populatedPlacePrefixes) {
			return geom.PopulatedPlace
		}
	}

	// 6. any key starting with "railway" -> Railway.
	if props.AnyKeyHasPrefix("railway") {
		return geom.Railway
	}

	// 7. Polygon and any key starting with "natural" -> switch on its value.
	if kind == geom.GeometryPolygon && props.AnyKeyHasPrefix("natural") {
		natural, _ := props.Get("natural")
		switch {
		case isIn(natural, plainNaturalValues):
			return geom.Plain
		case isIn(natural, forestNaturalValues):
			return geom.Forest
		case isIn(natural, mountainsNaturalValues):
			return geom.Mountains
		case isIn(natural, desertNaturalValues):
			return geom.Desert
		case natural == "water":
			return geom.Lakes
		default:
			return geom.Unknown
		}
	}

	// 8. boundary starts with "forest" -> Forest.
	if boundary, ok := props.Get("boundary"); ok && hasPrefix(boundary, "forest") {
		return geom.Forest
	}

	// 9. landuse starts with "forest" or "orchard" -> Forest.
	if landuse, ok := props.Get("landuse"); ok && (hasPrefix(landuse, "forest") || hasPrefix(landuse, "orchard")) {
		return geom.Forest
	}

	// 10. Polygon and landuse in the civilian set (prefix match) -> Civilian.
	if kind == geom.GeometryPolygon {
		if landuse, ok := props.Get("landuse"); ok && anyPrefix(landuse, civilianLanduseValues) {
			return geom.Civilian
		}
	}

	// 11. Polygon and landuse in the plain set -> Plain.
	if kind == geom.GeometryPolygon {
		if landuse, ok := props.Get("landuse"); ok && isIn(landuse, plainLanduseValues) {
			return geom.Plain
		}
	}

	// 12. Polygon and landuse in {reservoir, basin} -> Lakes.
	if kind == geom.GeometryPolygon {
		if landuse, ok := props.Get("landuse"); ok && isIn(landuse, lakesLanduseValues) {
			return geom.Lakes
		}
	}

	// 13. Polygon and any key starting with "building" -> Buildings.
	if kind == geom.GeometryPolygon && props.AnyKeyHasPrefix("building") {
		return geom.Buildings
	}

	// 14. Polygon and any key starting with "leisure" -> NationalPark.
	if kind == geom.GeometryPolygon && props.AnyKeyHasPrefix("leisure") {
		return geom.NationalPark
	}

	// 15. Polygon and any key starting with "amenity" -> Buildings.
	if kind == geom.GeometryPolygon && props.AnyKeyHasPrefix("amenity") {
		return geom.Buildings
	}

	// 16. otherwise -> Unknown.
	return geom.Unknown
}

func isIn(value string, set map[string]struct{}) bool {
	_, ok := set[value]
	return ok
}
