package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"geotile/geom"
)

func TestQueueDrainsInAscendingZOrder(t *testing.T) {
	q := NewQueue()
	q.Push(&GeoFeatureShape{shapeHeader: newShapeHeader(nil, 30)})
	q.Push(&GeoFeatureShape{shapeHeader: newShapeHeader(nil, 10)})
	q.Push(&GeoFeatureShape{shapeHeader: newShapeHeader(nil, 20)})

	var order []int32
	for q.Len() > 0 {
		order = append(order, q.Pop().ZIndex())
	}
	assert.Equal(t, []int32{10, 20, 30}, order)
}

func TestQueueTiesBreakByInsertionOrder(t *testing.T) {
	q := NewQueue()
	first := &GeoFeatureShape{shapeHeader: newShapeHeader([]geom.Coordinate{{X: 1}}, 5)}
	second := &GeoFeatureShape{shapeHeader: newShapeHeader([]geom.Coordinate{{X: 2}}, 5)}
	q.Push(first)
	q.Push(second)

	assert.Same(t, first, q.Pop())
	assert.Same(t, second, q.Pop())
}
