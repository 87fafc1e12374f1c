package emptyx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/will181/eventable/emptyx"
)

func TestNil(t *testing.T) {
	assert.True(t, emptyx.Nil(nil))

	var ptr *int
	assert.True(t, emptyx.Nil(ptr))

	var m map[string]int
	assert.True(t, emptyx.Nil(m))

	var fn func()
	assert.True(t, emptyx.Nil(fn))

	value := 5
	assert.False(t, emptyx.Nil(&value))
	assert.False(t, emptyx.Nil(0))
	assert.False(t, emptyx.Nil(""))
	assert.False(t, emptyx.Nil(struct{}{}))
}

func TestEmpty(t *testing.T) {
	assert.True(t, emptyx.Empty(nil))
	assert.True(t, emptyx.Empty(""))
	assert.True(t, emptyx.Empty(0))
	assert.True(t, emptyx.Empty([]int{}))
	assert.True(t, emptyx.Empty(map[string]int{}))
	assert.True(t, emptyx.Empty(struct{ A int }{}))

	assert.False(t, emptyx.Empty("x"))
	assert.False(t, emptyx.Empty(1))
	assert.False(t, emptyx.Empty([]int{0}))
	assert.False(t, emptyx.Empty(struct{ A int }{A: 1}))
}

func TestTypedHelpers(t *testing.T) {
	assert.True(t, emptyx.Slice[int](nil))
	assert.False(t, emptyx.Slice([]int{1}))

	assert.True(t, emptyx.Map[string, int](nil))
	assert.False(t, emptyx.Map(map[string]int{"a": 1}))

	assert.True(t, emptyx.String(""))
	assert.False(t, emptyx.String("a"))

	assert.True(t, emptyx.Pointer[int](nil))
	v := 1
	assert.False(t, emptyx.Pointer(&v))
}
