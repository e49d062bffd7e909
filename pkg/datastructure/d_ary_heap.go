package datastructure

import (
	"errors"
)

var ErrEmptyHeap = errors.New("heap is empty")

// PriorityQueueNode. an (item, rank) pair stored in the heap.
type PriorityQueueNode[T comparable] struct {
	rank float64
	item T
}

func (p PriorityQueueNode[T]) GetItem() T {
	return p.item
}

func (p PriorityQueueNode[T]) GetRank() float64 {
	return p.rank
}

func NewPriorityQueueNode[T comparable](rank float64, item T) PriorityQueueNode[T] {
	return PriorityQueueNode[T]{rank: rank, item: item}
}

// MinHeap d-ary heap priorityqueue. items are not deduplicated, the same item may sit in the heap
// several times with different ranks.
type MinHeap[T comparable] struct {
	heap []PriorityQueueNode[T]
	d    int
}

func NewBinaryHeap[T comparable]() *MinHeap[T] {
	return NewdAryHeap[T](2)
}

func NewdAryHeap[T comparable](d int) *MinHeap[T] {
	if d < 2 {
		d = 2
	}
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
		d:    d,
	}
}

// Preallocate reserves room for maxSearchSize entries, dropping current ones.
func (h *MinHeap[T]) Preallocate(maxSearchSize int) {
	h.heap = make([]PriorityQueueNode[T], 0, maxSearchSize)
}

// parent index of the parent of index
func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / h.d
}

// heapifyUp swaps the entry at index with its parent while its rank is smaller. O(logN) tree height.
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].rank < h.heap[h.parent(index)].rank {
		h.Swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown swaps the entry at index with its smallest child while that child is smaller. O(logN) tree height.
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
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

		if h.heap[smallest].rank >= h.heap[index].rank {
			return
		}
		h.Swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap[T]) Swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
}

// IsEmpty check apakah heap kosong
func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

// Size ukuran heap
func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T]) Clear() {
	h.heap = h.heap[:0]
}

// Insert appends item and sifts it up. O(logN)
func (h *MinHeap[T]) Insert(item T, rank float64) {
	h.heap = append(h.heap, NewPriorityQueueNode(rank, item))
	h.heapifyUp(len(h.heap) - 1)
}

// ExtractMin removes and returns the minimum entry. O(logN), O(1) when a single entry is left.
func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], error) {
	if h.IsEmpty() {
		return PriorityQueueNode[T]{}, ErrEmptyHeap
	}

	last := len(h.heap) - 1
	if last == 0 {
		root := h.heap[0]
		h.heap = h.heap[:0]
		return root, nil
	}

	root := h.heap[0]
	h.heap[0] = h.heap[last]
	h.heap = h.heap[:last]
	h.heapifyDown(0)

	return root, nil
}

// Contains reports whether item has an entry in the heap. linear scan, O(N): fine for a campus graph
// of a few hundred vertices, not for road networks.
func (h *MinHeap[T]) Contains(item T) bool {
	for _, node := range h.heap {
		if node.item == item {
			return true
		}
	}
	return false
}
