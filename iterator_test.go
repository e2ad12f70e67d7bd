package partition

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	t.Run("walkClass", func(t *testing.T) {
		p := newFilled(4)
		var got []int
		for it := NewIterator(p, 0); !it.Done(); it.Next() {
			got = append(got, it.Value())
		}
		// Add pushes onto the head, so enumeration is reverse insertion order.
		assert.Equal(t, []int{3, 2, 1, 0}, got)
	})

	t.Run("emptyClass", func(t *testing.T) {
		p := New(3)
		p.AddClass()
		assert.True(t, NewIterator(p, 0).Done())
	})

	t.Run("resetReflectsMutation", func(t *testing.T) {
		p := New(3)
		p.AllocateClasses(2)
		p.Add(0, 0)
		p.Add(1, 0)
		p.Add(2, 1)

		it := NewIterator(p, 1)
		require.False(t, it.Done())
		assert.Equal(t, 2, it.Value())

		p.Move(0, 1)
		it.Reset()
		var got []int
		for ; !it.Done(); it.Next() {
			got = append(got, it.Value())
		}
		slices.Sort(got)
		assert.Equal(t, []int{0, 2}, got)
	})

	t.Run("restartable", func(t *testing.T) {
		p := newFilled(3)
		it := NewIterator(p, 0)
		first := it.Value()
		for !it.Done() {
			it.Next()
		}
		it.Reset()
		assert.Equal(t, first, it.Value())
	})
}

func TestElements(t *testing.T) {
	t.Run("matchesIterator", func(t *testing.T) {
		p := newFilled(5)
		p.SplitOn(1)
		p.SplitOn(3)
		p.FinalizeSplit(nil)

		for c := 0; c < p.NumClasses(); c++ {
			var ranged []int
			for e := range p.Elements(c) {
				ranged = append(ranged, e)
			}
			var walked []int
			for it := NewIterator(p, c); !it.Done(); it.Next() {
				walked = append(walked, it.Value())
			}
			assert.Equal(t, walked, ranged, "class %d", c)
		}
	})

	t.Run("earlyBreak", func(t *testing.T) {
		p := newFilled(4)
		count := 0
		for range p.Elements(0) {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})
}
