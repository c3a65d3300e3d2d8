package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSorted(t *testing.T) {
	assert := assert.New(t)

	var keys []string
	var values []int
	for key, value := range Sorted(map[string]int{"loop": 3, "done": 7, "a": 0}) {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal([]string{"a", "done", "loop"}, keys)
	assert.Equal([]int{0, 7, 3}, values)

	// Early exit
	keys = nil
	for key := range Sorted(map[string]int{"b": 1, "a": 2, "c": 3}) {
		keys = append(keys, key)
		if key == "b" {
			break
		}
	}
	assert.Equal([]string{"a", "b"}, keys)

	count := 0
	for range Sorted(map[int]bool{}) {
		count++
	}
	assert.Equal(0, count)
}
