package immut

import (
	"encoding/json"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectArrayHeuristic(t *testing.T) {
	empty := CollectArray(slices.Values([]int{}))
	require.True(t, empty.IsEmpty())
	require.Equal(t, 0, empty.Len())
	require.True(t, ArrayEqual(empty, Array[int]{}))

	one := CollectArray(slices.Values([]int{7}))
	require.Equal(t, 1, one.Len())
	require.True(t, ArrayEqual(one, ArrayOf(7)))

	many := CollectArray(slices.Values([]int{1, 2, 3}))
	require.Equal(t, 3, many.Len())
	require.True(t, ArrayEqualSlice(many, []int{1, 2, 3}))
}

func TestArrayRepresentationIndependentEquality(t *testing.T) {
	static := StaticArray([]int{1, 2, 3})
	collected := CollectArray(slices.Values([]int{1, 2, 3}))
	require.True(t, ArrayEqual(static, collected))
	require.True(t, ArrayEqual(collected, static))
	require.False(t, ArrayEqual(static, NewArray(1, 2)))
	require.False(t, ArrayEqual(static, NewArray(1, 2, 4)))

	single := ArrayOf(5)
	require.True(t, ArrayEqual(single, NewArray(5)))
	require.True(t, ArrayEqualSlice(single, []int{5}))
}

func TestArrayGet(t *testing.T) {
	a := NewArray("a", "b", "c")

	v, ok := a.Get(1)
	require.True(t, ok)
	require.Equal(t, "b", v)

	_, ok = a.Get(3)
	require.False(t, ok)
	_, ok = a.Get(-1)
	require.False(t, ok)

	inline := ArrayOf("x")
	v, ok = inline.Get(0)
	require.True(t, ok)
	require.Equal(t, "x", v)
	_, ok = inline.Get(1)
	require.False(t, ok)
}

func TestArrayCloneIsolation(t *testing.T) {
	a := NewArray(1, 2, 3)
	b := a.Clone()

	view := a.MakeMut()
	view[0] = 99

	require.True(t, ArrayEqualSlice(a, []int{99, 2, 3}))
	require.True(t, ArrayEqualSlice(b, []int{1, 2, 3}))

	// a abandoned the shared buffer when it copied, so b is now the
	// sole holder and can mutate in place.
	bview, ok := b.TryMut()
	require.True(t, ok)
	bview[2] = 30
	require.True(t, ArrayEqualSlice(b, []int{1, 2, 30}))
	require.True(t, ArrayEqualSlice(a, []int{99, 2, 3}))
}

func TestArrayCOWExclusivity(t *testing.T) {
	a := NewArray(1, 2, 3)
	b := a.Clone()

	_, ok := a.TryMut()
	require.False(t, ok)

	b.Release()

	view, ok := a.TryMut()
	require.True(t, ok)
	view[0] = 42
	require.True(t, ArrayEqualSlice(a, []int{42, 2, 3}))
}

func TestArrayTryMutModes(t *testing.T) {
	static := StaticArray([]int{1, 2, 3})
	_, ok := static.TryMut()
	require.False(t, ok)

	inline := ArrayOf(9)
	view, ok := inline.TryMut()
	require.True(t, ok)
	view[0] = 10
	require.True(t, ArrayEqualSlice(inline, []int{10}))
}

func TestArrayMakeMutLeavesStaticStorageAlone(t *testing.T) {
	backing := []int{1, 2, 3}
	a := StaticArray(backing)

	a.MakeMut()[0] = 9

	require.Equal(t, []int{1, 2, 3}, backing)
	require.True(t, ArrayEqualSlice(a, []int{9, 2, 3}))
}

func TestArrayInsert(t *testing.T) {
	a := NewArray(1, 2, 6)
	a.InsertSlice(2, []int{3, 4, 5})
	require.True(t, ArrayEqualSlice(a, []int{1, 2, 3, 4, 5, 6}))

	b := NewArray(2, 3)
	b.Insert(0, 1)
	require.True(t, ArrayEqualSlice(b, []int{1, 2, 3}))
	b.Insert(3, 4)
	require.True(t, ArrayEqualSlice(b, []int{1, 2, 3, 4}))

	var c Array[int]
	c.Insert(0, 5)
	require.True(t, ArrayEqualSlice(c, []int{5}))
}

func TestArrayRemove(t *testing.T) {
	a := NewArray(1, 2, 10, 20, 3)
	a.RemoveRange(2, 4)
	require.True(t, ArrayEqualSlice(a, []int{1, 2, 3}))

	removed := a.Remove(1)
	require.Equal(t, 2, removed)
	require.True(t, ArrayEqualSlice(a, []int{1, 3}))

	a.RemoveRange(0, 0)
	require.True(t, ArrayEqualSlice(a, []int{1, 3}))
}

func TestArrayPushExtend(t *testing.T) {
	var a Array[int]
	a.Push(1)
	a.Push(2)
	a.Extend(NewArray(3, 4))
	require.True(t, ArrayEqualSlice(a, []int{1, 2, 3, 4}))
}

func TestArrayEditOutOfRangePanics(t *testing.T) {
	a := NewArray(1, 2, 3)

	require.Panics(t, func() { a.Insert(4, 9) })
	require.Panics(t, func() { a.Insert(-1, 9) })
	require.Panics(t, func() { a.Remove(3) })
	require.Panics(t, func() { a.Remove(-1) })
	require.Panics(t, func() { a.RemoveRange(1, 4) })
	require.Panics(t, func() { a.RemoveRange(2, 1) })
}

func TestArrayDoubleEndedIter(t *testing.T) {
	a := NewArray(1, 2, 3, 4, 5, 6)
	it := a.Iter()

	pull := func(back bool) int {
		var v int
		var ok bool
		if back {
			v, ok = it.NextBack()
		} else {
			v, ok = it.Next()
		}
		require.True(t, ok)
		return v
	}

	require.Equal(t, 1, pull(false))
	require.Equal(t, 6, pull(true))
	require.Equal(t, 5, pull(true))
	require.Equal(t, 2, pull(false))
	require.Equal(t, 3, pull(false))
	require.Equal(t, 4, pull(false))

	_, ok := it.Next()
	require.False(t, ok)
	_, ok = it.NextBack()
	require.False(t, ok)

	// A fresh iterator restarts from both extremes.
	it2 := a.Iter()
	require.Equal(t, 6, it2.Remaining())
	v, ok := it2.Next()
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestArraySeqForms(t *testing.T) {
	a := NewArray("x", "y", "z")

	var idx []int
	var got []string
	for i, v := range a.All() {
		idx = append(idx, i)
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2}, idx)
	require.Equal(t, []string{"x", "y", "z"}, got)

	got = got[:0]
	for v := range a.Values() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []string{"x", "y"}, got)
}

func TestArrayOfArrays(t *testing.T) {
	a1 := CollectArray(slices.Values([]int{1, 2, 3}))
	a2 := CollectArray(slices.Values([]int{4, 5, 6}))
	aoa := NewArray(a1, a2)

	b1 := StaticArray([]int{1, 2, 3})
	b2 := NewArray(4, 5, 6)
	bob := NewArray(b1, b2)

	require.True(t, ArrayEqualFunc(aoa, bob, ArrayEqual[int]))
}

func TestArrayStringElementsCompareByContent(t *testing.T) {
	a := NewArray(Str("foo"), Str("bar"))
	b := NewArray(StringFromBytes([]byte("foo")), StringFromBytes([]byte("bar")))
	require.True(t, ArrayEqual(a, b))
}

func TestArrayRender(t *testing.T) {
	require.Equal(t, "[1, 2, 3]", NewArray(1, 2, 3).String())
	require.Equal(t, "[]", Array[int]{}.String())
}

func TestArrayJSON(t *testing.T) {
	a := NewArray(1, 2, 3)
	data, err := json.Marshal(a)
	require.NoError(t, err)
	require.JSONEq(t, `[1,2,3]`, string(data))

	// The storage mode never shows in the serialized form.
	static := StaticArray([]int{1, 2, 3})
	sdata, err := json.Marshal(static)
	require.NoError(t, err)
	require.Equal(t, string(data), string(sdata))

	var back Array[int]
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, ArrayEqual(a, back))

	var empty Array[int]
	edata, err := json.Marshal(empty)
	require.NoError(t, err)
	require.Equal(t, `[]`, string(edata))
}

func TestArrayConcurrentClones(t *testing.T) {
	a := NewArray(1, 2, 3)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				c := a.Clone()
				if c.Len() != 3 {
					t.Error("unexpected length")
					return
				}
				c.Release()
			}
		}()
	}
	wg.Wait()

	// Every clone was released, so this handle is exclusive again.
	_, ok := a.TryMut()
	require.True(t, ok)
}

func TestArrayReleaseResets(t *testing.T) {
	a := NewArray(1, 2, 3)
	a.Release()
	require.True(t, a.IsEmpty())

	// Releasing twice is harmless.
	a.Release()
	require.True(t, a.IsEmpty())
}
