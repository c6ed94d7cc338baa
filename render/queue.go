package render

import "container/heap"

// Queue is a z-index-ordered min-heap of shapes: smallest z drains first.
// Ties break by insertion order (stable), as required by the ordering
// guarantee in the store's concurrency and resource model.
type Queue struct {
	items []queueItem
	seq   int
}

type queueItem struct {
	shape Shape
	seq   int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	heap.Init((*shapeHeap)(q))
	return q
}

// Push enqueues shape, stamping it with the next insertion sequence
// number so equal-z shapes drain in the order they were pushed.
func (q *Queue) Push(shape Shape) {
	heap.Push((*shapeHeap)(q), queueItem{shape: shape, seq: q.seq})
	q.seq++
}

// Len reports how many shapes remain in the queue.
func (q *Queue) Len() int { return len(q.items) }

// Pop removes and returns the lowest-z (or, on ties, earliest-inserted)
// shape. It panics if the queue is empty; callers should guard with Len.
func (q *Queue) Pop() Shape {
	item := heap.Pop((*shapeHeap)(q)).(queueItem)
	return item.shape
}

// shapeHeap adapts Queue to container/heap.Interface.
type shapeHeap Queue

func (h *shapeHeap) Len() int { return len(h.items) }

func (h *shapeHeap) Less(i, j int) bool {
	zi, zj := h.items[i].shape.ZIndex(), h.items[j].shape.ZIndex()
	if zi != zj {
		return zi < zj
	}
	return h.items[i].seq < h.items[j].seq
}

func (h *shapeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *shapeHeap) Push(x interface{}) { h.items = append(h.items, x.(queueItem)) }

func (h *shapeHeap) Pop() interface{} {
	n := len(h.items)
	item := h.items[n-1]
	h.items = h.items[:n-1]
	return item
}
