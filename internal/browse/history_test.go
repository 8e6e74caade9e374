package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryPushPop(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, 0, h.Len())

	_, ok := h.Pop()
	assert.False(t, ok)

	h.Push("/a")
	h.Push("/a/b")
	assert.Equal(t, 2, h.Len())

	last, ok := h.Pop()
	assert.True(t, ok)
	assert.Equal(t, "/a/b", last)

	last, ok = h.Pop()
	assert.True(t, ok)
	assert.Equal(t, "/a", last)
	assert.Equal(t, 0, h.Len())

	_, ok = h.Pop()
	assert.False(t, ok)
}
