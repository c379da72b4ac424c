package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIter(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 3; i++ {
		l.PushBack(i)
	}

	it := l.Iter()
	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	// The cursor is one-shot: once exhausted it stays exhausted.
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestIterEmpty(t *testing.T) {
	l := New[int]()
	_, ok := l.Iter().Next()
	assert.False(t, ok)
}

func TestIterMut(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 4; i++ {
		l.PushBack(i)
	}

	it := l.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p *= 10
	}
	assert.Equal(t, []int{10, 20, 30, 40}, l.ToSlice())
	checkInvariants(t, l)
}

func TestIterInvalidatedByMutation(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)

	it := l.Iter()
	_, ok := it.Next()
	require.True(t, ok)

	l.PushBack(3)
	assert.PanicsWithValue(t, "list: list modified during iteration", func() {
		it.Next()
	})

	l.PushFront(0)
	mut := l.IterMut()
	_, ok = l.PopBack()
	require.True(t, ok)
	assert.PanicsWithValue(t, "list: list modified during iteration", func() {
		mut.Next()
	})
}

func TestIterInvalidatedByClear(t *testing.T) {
	l := New[int]()
	l.PushBack(1)

	it := l.Iter()
	l.Clear()
	assert.Panics(t, func() { it.Next() })
}

func TestContains(t *testing.T) {
	l := New[string]()
	l.PushBack("one")
	l.PushBack("two")
	l.PushBack("three")

	assert.True(t, Contains(l, "one"))
	assert.True(t, Contains(l, "three"))
	assert.False(t, Contains(l, "four"))

	v, _ := l.PopAt(0)
	require.Equal(t, "one", v)
	assert.False(t, Contains(l, "one"))

	empty := New[string]()
	assert.False(t, Contains(empty, "one"))
}
