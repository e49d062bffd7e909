package datastructure

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapExtractOrder(t *testing.T) {
	testCases := []struct {
		name  string
		d     int
		ranks []float64
	}{
		{name: "binary heap", d: 2, ranks: []float64{5, 3, 8, 1, 9, 2, 7}},
		{name: "four-ary heap", d: 4, ranks: []float64{5, 3, 8, 1, 9, 2, 7, 0.5, 11}},
		{name: "duplicate ranks", d: 2, ranks: []float64{2, 2, 1, 1, 3, 3}},
		{name: "single entry", d: 2, ranks: []float64{42}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			h := NewdAryHeap[int](tt.d)
			for i, r := range tt.ranks {
				h.Insert(i, r)
			}
			require.Equal(t, len(tt.ranks), h.Size())

			want := append([]float64(nil), tt.ranks...)
			sort.Float64s(want)

			got := make([]float64, 0, len(want))
			for !h.IsEmpty() {
				node, err := h.ExtractMin()
				require.NoError(t, err)
				got = append(got, node.GetRank())
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestMinHeapRandom(t *testing.T) {
	rd := rand.New(rand.NewSource(7))
	h := NewBinaryHeap[int]()

	ranks := make([]float64, 500)
	for i := range ranks {
		ranks[i] = rd.Float64() * 1000
		h.Insert(i, ranks[i])
	}

	prev := -1.0
	for i := 0; i < len(ranks); i++ {
		node, err := h.ExtractMin()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, node.GetRank(), prev)
		assert.Equal(t, ranks[node.GetItem()], node.GetRank())
		prev = node.GetRank()
	}
	assert.True(t, h.IsEmpty())
}

func TestMinHeapEmpty(t *testing.T) {
	h := NewBinaryHeap[string]()

	_, err := h.ExtractMin()
	assert.True(t, errors.Is(err, ErrEmptyHeap))

	assert.False(t, h.Contains("A"))
	assert.Zero(t, h.Size())
}

func TestMinHeapContains(t *testing.T) {
	h := NewBinaryHeap[string]()
	h.Insert("A", 3)
	h.Insert("B", 1)
	h.Insert("A", 2)

	assert.True(t, h.Contains("A"))
	assert.True(t, h.Contains("B"))
	assert.False(t, h.Contains("C"))

	node, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "B", node.GetItem())
	assert.False(t, h.Contains("B"))

	// duplicates are kept: the better entry comes out first, the stale one later.
	node, err = h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "A", node.GetItem())
	assert.Equal(t, 2.0, node.GetRank())
	assert.True(t, h.Contains("A"))

	node, err = h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 3.0, node.GetRank())
	assert.False(t, h.Contains("A"))
}

func TestMinHeapPreallocateAndClear(t *testing.T) {
	h := NewdAryHeap[int](4)
	h.Preallocate(8)
	for i := 0; i < 8; i++ {
		h.Insert(i, float64(8-i))
	}
	h.Clear()
	assert.True(t, h.IsEmpty())

	h.Insert(1, 1)
	node, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, node.GetItem())
}
