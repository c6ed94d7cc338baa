package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeographicBoundingBoxContainsIsInclusive(t *testing.T) {
	box := GeographicBoundingBox{MinLat: 10, MinLon: 10, MaxLat: 20, MaxLon: 20}
	assert.True(t, box.Contains(10, 10))
	assert.True(t, box.Contains(20, 20))
	assert.False(t, box.Contains(9.999, 15))
	assert.False(t, box.Contains(15, 20.001))
}

func TestGeographicBoundingBoxEmpty(t *testing.T) {
	assert.True(t, GeographicBoundingBox{MinLat: 5, MaxLat: 1}.Empty())
	assert.False(t, GeographicBoundingBox{MinLat: 1, MaxLat: 5, MinLon: 1, MaxLon: 5}.Empty())
}

func TestScreenBoundingBoxExpand(t *testing.T) {
	box := NewScreenBoundingBox()
	box.Expand(5, 10)
	box.Expand(-2, 30)
	assert.Equal(t, float32(-2), box.MinX)
	assert.Equal(t, float32(5), box.MaxX)
	assert.Equal(t, float32(10), box.MinY)
	assert.Equal(t, float32(30), box.MaxY)
	assert.Equal(t, float32(7), box.Width())
	assert.Equal(t, float32(20), box.Height())
}

func TestScreenBoundingBoxUnexpandedIsEmpty(t *testing.T) {
	box := NewScreenBoundingBox()
	assert.True(t, box.Width() < 0)
	assert.True(t, box.Height() < 0)
}

func TestPropertiesAnyKeyHasPrefix(t *testing.T) {
	p := Properties{"natural": "wood", "name": "Big Wood"}
	assert.True(t, p.AnyKeyHasPrefix("natural"))
	assert.False(t, p.AnyKeyHasPrefix("landuse"))
}

func TestPropertiesGet(t *testing.T) {
	p := Properties{"highway": "trunk"}
	v, ok := p.Get("highway")
	assert.True(t, ok)
	assert.Equal(t, "trunk", v)

	_, ok = p.Get("missing")
	assert.False(t, ok)
}

func TestEnvironmentCategoryString(t *testing.T) {
	assert.Equal(t, "Highway", Highway.String())
	assert.Equal(t, "EnvironmentCategory(255)", EnvironmentCategory(255).String())
}
