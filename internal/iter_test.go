package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	assert := assert.New(t)

	m := map[int]string{9: "i", 2: "b", 5: "e", 0: "z"}

	assert.Equal([]int{0, 2, 5, 9}, slices.Collect(SortedKeys(m)))
	assert.Empty(slices.Collect(SortedKeys(map[int]bool{})))
}

func TestSortedAll(t *testing.T) {
	assert := assert.New(t)

	m := map[string]int{"c": 3, "a": 1, "b": 2}

	var keys []string
	var values []int
	for k, v := range SortedAll(m) {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal([]string{"a", "b", "c"}, keys)
	assert.Equal([]int{1, 2, 3}, values)

	// Early stop
	count := 0
	for range SortedAll(m) {
		count++
		break
	}
	assert.Equal(1, count)
}
