package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter([]int{5, 2, 8, 2, 9}, func(n int) bool { return n > 2 })
	assert.Equal(t, []int{5, 8, 9}, got)
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(n int) int { return n * n })
	assert.Equal(t, []int{1, 4, 9}, got)
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "bb", "ccc"}, func(s string) bool { return len(s) == 2 })
	assert.True(t, ok)
	assert.Equal(t, "bb", v)

	_, ok = First([]string{"a"}, func(s string) bool { return len(s) == 2 })
	assert.False(t, ok)
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 1, IndexOf([]int{3, 7, 7}, func(n int) bool { return n == 7 }))
	assert.Equal(t, -1, IndexOf([]int{3}, func(n int) bool { return n == 7 }))
}

type pair struct {
	key  int
	name string
}

func TestSortByIsStable(t *testing.T) {
	s := []pair{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}}
	SortBy(s, func(a, b pair) bool { return a.key < b.key })
	// equal keys keep their original relative order
	assert.Equal(t, []pair{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}, s)
}
