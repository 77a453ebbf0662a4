package datastructure

import (
	"golang.org/x/exp/constraints"
)

type PriorityQueueNode[T comparable, R constraints.Ordered] struct {
	rank    R
	item    T
	itemPos int
}

func (p *PriorityQueueNode[T, R]) GetItem() T {
	return p.item
}

func (p *PriorityQueueNode[T, R]) GetRank() R {
	return p.rank
}

func (p *PriorityQueueNode[T, R]) GetPos() int {
	return p.itemPos
}

func NewPriorityQueueNode[T comparable, R constraints.Ordered](rank R, item T) *PriorityQueueNode[T, R] {
	return &PriorityQueueNode[T, R]{rank: rank, item: item}
}

// MinHeap d-ary heap priorityqueue
type MinHeap[T comparable, R constraints.Ordered] struct {
	heap []*PriorityQueueNode[T, R]
	d    int
}

func NewBinaryHeap[T comparable, R constraints.Ordered]() *MinHeap[T, R] {
	return NewdAryHeap[T, R](2)
}

func NewFourAryHeap[T comparable, R constraints.Ordered]() *MinHeap[T, R] {
	return NewdAryHeap[T, R](4)
}

func NewdAryHeap[T comparable, R constraints.Ordered](d int) *MinHeap[T, R] {
	return &MinHeap[T, R]{
		heap: make([]*PriorityQueueNode[T, R], 0),
		d:    d,
	}
}

func (h *MinHeap[T, R]) Preallocate(maxSize int) {
	h.heap = make([]*PriorityQueueNode[T, R], 0, maxSize)
}

// parent get index dari parent
func (h *MinHeap[T, R]) parent(index int) int {
	return (index - 1) / h.d
}

// heapifyUp restores the heap property upward from index. O(logN) tree height.
func (h *MinHeap[T, R]) heapifyUp(index int) {
	for index != 0 && h.heap[index].rank < h.heap[h.parent(index)].rank {
		h.Swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown restores the heap property downward from index. O(logN) tree height.
func (h *MinHeap[T, R]) heapifyDown(index int) {
	leftMostChild := index*h.d + 1
	if leftMostChild >= len(h.heap) {
		return
	}

	sentinel := leftMostChild + h.d
	if sentinel > len(h.heap) {
		sentinel = len(h.heap)
	}

	smallest := leftMostChild
	for i := leftMostChild + 1; i < sentinel; i++ {
		if h.heap[i].rank < h.heap[smallest].rank {
			smallest = i
		}
	}

	if h.heap[smallest].rank < h.heap[index].rank {
		h.Swap(index, smallest)

		h.heapifyDown(smallest)
	}
}

func (h *MinHeap[T, R]) Swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.heap[i].itemPos = i
	h.heap[j].itemPos = j
}

func (h *MinHeap[T, R]) Insert(node *PriorityQueueNode[T, R]) {
	h.heap = append(h.heap, node)
	node.itemPos = len(h.heap) - 1
	h.heapifyUp(node.itemPos)
}

func (h *MinHeap[T, R]) GetMin() *PriorityQueueNode[T, R] {
	return h.heap[0]
}

func (h *MinHeap[T, R]) ExtractMin() *PriorityQueueNode[T, R] {
	if len(h.heap) == 0 {
		return nil
	}
	min := h.heap[0]
	last := len(h.heap) - 1
	h.Swap(0, last)
	h.heap = h.heap[:last]
	if last > 0 {
		h.heapifyDown(0)
	}
	return min
}

func (h *MinHeap[T, R]) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T, R]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T, R]) Nodes() []*PriorityQueueNode[T, R] {
	return h.heap
}
