// SPDX-License-Identifier: MIT

// Package ordvec_test contains unit tests for OrdVec construction, lookup,
// insertion, removal and iteration.
package ordvec_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flatcoll/ordvec"
)

type user struct {
	ID   int
	Name string
}

func userID(u user) int { return u.ID }

func keysOf[T any, K cmp.Ordered](v *ordvec.OrdVec[T, K]) []K {
	return slices.Collect(v.Keys())
}

// requireSorted asserts the non-decreasing key invariant.
func requireSorted(t *testing.T, v *ordvec.OrdVec[user, int]) {
	t.Helper()
	ks := keysOf(v)
	require.True(t, slices.IsSorted(ks), "keys not sorted: %v", ks)
}

// TestRoundTrip inserts keys 5,1,3 and expects ordered iteration and lookups.
func TestRoundTrip(t *testing.T) {
	v := ordvec.New(userID)
	for _, id := range []int{5, 1, 3} {
		require.NoError(t, v.Insert(user{ID: id}))
	}
	require.Equal(t, []int{1, 3, 5}, keysOf(v))
	require.Equal(t, 3, v.Len())
	require.False(t, v.IsEmpty())

	u, ok := v.Find(3)
	require.True(t, ok)
	require.Equal(t, 3, u.ID)

	_, ok = v.Find(9)
	require.False(t, ok)
	require.False(t, v.Contains(9))
	require.True(t, v.Contains(1))
}

// TestRemoveByKey removes key 3, then fails to remove it a second time.
func TestRemoveByKey(t *testing.T) {
	v := ordvec.New(userID)
	for _, id := range []int{5, 1, 3} {
		require.NoError(t, v.Insert(user{ID: id, Name: "u"}))
	}

	got, ok := v.RemoveByKey(3)
	require.True(t, ok)
	require.Equal(t, user{ID: 3, Name: "u"}, got)
	require.Equal(t, []int{1, 5}, keysOf(v))

	before := v.Clone()
	got, ok = v.RemoveByKey(3)
	require.False(t, ok)
	require.Zero(t, got)
	require.True(t, ordvec.Equal(before, v))
}

// TestFind_Idempotent ensures repeated lookups agree.
func TestFind_Idempotent(t *testing.T) {
	v, err := ordvec.FromUnsorted([]user{{4, "d"}, {2, "b"}, {2, "bb"}, {7, "g"}}, userID)
	require.NoError(t, err)

	first, ok1 := v.Find(2)
	for i := 0; i < 5; i++ {
		again, ok := v.Find(2)
		require.Equal(t, ok1, ok)
		require.Equal(t, first, again)
	}
	require.Equal(t, "b", first.Name)
}

// TestInsert_TieBreak places a new duplicate before existing equal keys,
// and Find returns that first match.
func TestInsert_TieBreak(t *testing.T) {
	v := ordvec.New(userID)
	require.NoError(t, v.Insert(user{1, "old"}))
	require.NoError(t, v.Insert(user{0, "zero"}))
	require.NoError(t, v.Insert(user{2, "two"}))
	require.NoError(t, v.Insert(user{1, "new"}))

	want := []user{{0, "zero"}, {1, "new"}, {1, "old"}, {2, "two"}}
	if diff := gocmp.Diff(want, v.Items()); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}

	u, ok := v.Find(1)
	require.True(t, ok)
	require.Equal(t, "new", u.Name)

	i, ok := v.Index(1)
	require.True(t, ok)
	require.Equal(t, 1, i)
}

// TestFromUnsorted_Stable keeps input order among equal keys and leaves the
// caller's slice untouched.
func TestFromUnsorted_Stable(t *testing.T) {
	in := []user{{3, "c"}, {1, "a1"}, {2, "b"}, {1, "a2"}, {1, "a3"}}
	snapshot := slices.Clone(in)

	v, err := ordvec.FromUnsorted(in, userID)
	require.NoError(t, err)
	require.Equal(t, snapshot, in)

	want := []user{{1, "a1"}, {1, "a2"}, {1, "a3"}, {2, "b"}, {3, "c"}}
	require.Equal(t, want, v.Items())
}

// TestFindRange_TiesAndAbsent covers the span API.
func TestFindRange_TiesAndAbsent(t *testing.T) {
	v, err := ordvec.FromUnsorted([]user{{1, "a"}, {5, "x"}, {5, "y"}, {5, "z"}, {9, "q"}}, userID)
	require.NoError(t, err)

	lo, hi := v.FindRange(5)
	require.Equal(t, 1, lo)
	require.Equal(t, 4, hi)
	require.Equal(t, 3, v.CountKey(5))

	ties := v.Ties(5)
	require.Equal(t, []user{{5, "x"}, {5, "y"}, {5, "z"}}, ties)
	require.Equal(t, len(ties), cap(ties))

	lo, hi = v.FindRange(6)
	require.Equal(t, 4, lo)
	require.Equal(t, lo, hi)
	require.Empty(t, v.Ties(6))

	lo, hi = v.FindRange(100)
	require.Equal(t, 5, lo)
	require.Equal(t, 5, hi)
}

// TestRemoveNthAndAll removes within a tie run.
func TestRemoveNthAndAll(t *testing.T) {
	v, err := ordvec.FromUnsorted([]user{{5, "x"}, {5, "y"}, {5, "z"}, {7, "w"}}, userID)
	require.NoError(t, err)

	got, ok := v.RemoveNth(5, 1)
	require.True(t, ok)
	require.Equal(t, "y", got.Name)
	require.Equal(t, []user{{5, "x"}, {5, "z"}, {7, "w"}}, v.Items())

	_, ok = v.RemoveNth(5, 2)
	require.False(t, ok)
	_, ok = v.RemoveNth(5, -1)
	require.False(t, ok)
	_, ok = v.RemoveNth(6, 0)
	require.False(t, ok)
	require.Equal(t, 3, v.Len())

	require.Equal(t, 2, v.RemoveAll(5))
	require.Equal(t, 0, v.RemoveAll(5))
	require.Equal(t, []int{7}, keysOf(v))
}

// TestSortedness_RandomOps runs a deterministic random mix of inserts and
// removals and checks the invariant after every call.
func TestSortedness_RandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	v := ordvec.New(userID, ordvec.WithCapacity(16))
	counts := map[int]int{}

	for step := 0; step < 2000; step++ {
		k := rng.Intn(50)
		if rng.Intn(3) == 0 {
			_, ok := v.RemoveByKey(k)
			require.Equal(t, counts[k] > 0, ok)
			if ok {
				counts[k]--
			}
		} else {
			require.NoError(t, v.Insert(user{ID: k}))
			counts[k]++
		}
		requireSorted(t, v)
	}

	total := 0
	for k, n := range counts {
		require.Equal(t, n, v.CountKey(k), "key %d", k)
		total += n
	}
	require.Equal(t, total, v.Len())
}

// TestUniqueKeys rejects duplicates without mutation.
func TestUniqueKeys(t *testing.T) {
	v := ordvec.New(userID, ordvec.WithUniqueKeys())
	require.True(t, v.Unique())
	require.NoError(t, v.Insert(user{2, "b"}))
	require.NoError(t, v.Insert(user{1, "a"}))

	err := v.Insert(user{2, "dup"})
	require.ErrorIs(t, err, ordvec.ErrDuplicateKey)
	require.Equal(t, []user{{1, "a"}, {2, "b"}}, v.Items())

	// The append fast path must not bypass the check either.
	require.NoError(t, v.Insert(user{3, "c"}))
	require.ErrorIs(t, v.Insert(user{3, "c2"}), ordvec.ErrDuplicateKey)

	bad, err := ordvec.FromUnsorted([]user{{1, "a"}, {1, "b"}}, userID, ordvec.WithUniqueKeys())
	require.ErrorIs(t, err, ordvec.ErrDuplicateKey)
	require.Nil(t, bad)
}

// TestPtr mutates a non-key field in place.
func TestPtr(t *testing.T) {
	v, err := ordvec.FromUnsorted([]user{{1, "a"}, {2, "b"}}, userID)
	require.NoError(t, err)

	p, ok := v.Ptr(2)
	require.True(t, ok)
	p.Name = "bee"
	u, _ := v.Find(2)
	require.Equal(t, "bee", u.Name)

	p, ok = v.Ptr(3)
	require.False(t, ok)
	require.Nil(t, p)
}

// TestIteration is restartable, supports early stop and reverse order.
func TestIteration(t *testing.T) {
	v, err := ordvec.FromUnsorted([]user{{3, "c"}, {1, "a"}, {2, "b"}}, userID)
	require.NoError(t, err)

	first := slices.Collect(v.Values())
	second := slices.Collect(v.Values())
	require.Equal(t, first, second)
	require.Equal(t, []user{{1, "a"}, {2, "b"}, {3, "c"}}, first)

	var pos []int
	for i := range v.All() {
		pos = append(pos, i)
		if i == 1 {
			break
		}
	}
	require.Equal(t, []int{0, 1}, pos)

	var names []string
	for _, u := range v.Backward() {
		names = append(names, u.Name)
	}
	require.Equal(t, []string{"c", "b", "a"}, names)
}

// TestAtAndRemoveAt cover positional access.
func TestAtAndRemoveAt(t *testing.T) {
	v, err := ordvec.FromUnsorted([]user{{3, "c"}, {1, "a"}}, userID)
	require.NoError(t, err)

	u, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 3, u.ID)

	_, err = v.At(2)
	require.ErrorIs(t, err, ordvec.ErrIndexOutOfBounds)
	_, err = v.RemoveAt(-1)
	require.ErrorIs(t, err, ordvec.ErrIndexOutOfBounds)

	u, err = v.RemoveAt(0)
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.Equal(t, []int{3}, keysOf(v))
}

// TestMinMaxClear covers the end accessors and Clear.
func TestMinMaxClear(t *testing.T) {
	v := ordvec.New(userID)
	_, ok := v.Min()
	require.False(t, ok)
	_, ok = v.Max()
	require.False(t, ok)

	for _, id := range []int{4, 8, 1} {
		require.NoError(t, v.Insert(user{ID: id}))
	}
	lo, _ := v.Min()
	hi, _ := v.Max()
	require.Equal(t, 1, lo.ID)
	require.Equal(t, 8, hi.ID)

	v.Clear()
	require.True(t, v.IsEmpty())
	require.Empty(t, v.Items())
}

// TestItems_Capped ensures append on the view cannot write into the OrdVec.
func TestItems_Capped(t *testing.T) {
	v := ordvec.New(userID, ordvec.WithCapacity(8))
	require.NoError(t, v.Insert(user{ID: 1}))

	view := v.Items()
	require.Equal(t, len(view), cap(view))
	_ = append(view, user{ID: 0})
	require.NoError(t, v.Insert(user{ID: 2}))
	require.Equal(t, []int{1, 2}, keysOf(v))
}

// TestCloneEqualString covers copying, comparison and formatting.
func TestCloneEqualString(t *testing.T) {
	v, err := ordvec.FromUnsorted([]int{5, 1, 3}, func(i int) int { return i })
	require.NoError(t, err)
	require.Equal(t, "OrdVec[1 3 5]", v.String())

	c := v.Clone()
	require.True(t, ordvec.Equal(v, c))
	require.NoError(t, c.Insert(4))
	require.False(t, ordvec.Equal(v, c))
	require.Equal(t, 3, v.Len())

	require.False(t, ordvec.Equal(v, nil))
	require.True(t, ordvec.Equal[int, int](nil, nil))
}

// TestNew_Panics covers programmer errors.
func TestNew_Panics(t *testing.T) {
	require.PanicsWithValue(t, "ordvec: key function must not be nil", func() {
		ordvec.New[user, int](nil)
	})
	require.PanicsWithValue(t, "ordvec: WithCapacity: capacity must be non-negative", func() {
		ordvec.WithCapacity(-1)
	})
}
