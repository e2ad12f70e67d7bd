package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOQueue(t *testing.T) {
	t.Run("order", func(t *testing.T) {
		q := &FIFOQueue{}
		q.Enqueue(3)
		q.Enqueue(1)
		q.Enqueue(2)
		require.Equal(t, 3, q.Len())

		for _, want := range []int{3, 1, 2} {
			c, ok := q.Dequeue()
			require.True(t, ok)
			assert.Equal(t, want, c)
		}
		_, ok := q.Dequeue()
		assert.False(t, ok)
	})

	t.Run("zeroValue", func(t *testing.T) {
		var q FIFOQueue
		_, ok := q.Dequeue()
		assert.False(t, ok)
		assert.Equal(t, 0, q.Len())
	})
}

func TestQueueFunc(t *testing.T) {
	var got []int
	q := QueueFunc(func(c int) { got = append(got, c) })
	q.Enqueue(4)
	q.Enqueue(7)
	assert.Equal(t, []int{4, 7}, got)
}
