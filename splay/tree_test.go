package splay

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// inorderKeys collects the key sequence of an in-order traversal using
// only the exported traversal surface, the way an external range scan
// would.
func inorderKeys[V any](t *Tree[int, V]) []int {
	var keys []int
	var rec func(n *Node[int, V])
	rec = func(n *Node[int, V]) {
		if n == nil {
			return
		}
		rec(n.Left())
		keys = append(keys, n.Key())
		rec(n.Right())
	}
	rec(t.Root())
	return keys
}

// complete16 builds the classic 15-key layout: even keys 2..30 inserted
// leaves first, then parents, then the upper levels, finishing with 16
// at the root.
func complete16() *Tree[int, string] {
	t := New[int, string]()
	for _, k := range []int{2, 6, 10, 14, 18, 22, 26, 30, 4, 12, 20, 28, 8, 24, 16} {
		t.Insert(k, fmt.Sprintf("v%d", k))
	}
	return t
}

func TestInsertFindRoundTrip(t *testing.T) {
	tree := New[int, string]()
	keys := []int{41, 7, 19, 3, 88, 64, 12, 55}
	for _, k := range keys {
		tree.Insert(k, fmt.Sprintf("v%d", k))
	}
	require.Equal(t, len(keys), tree.Len())

	for _, k := range keys {
		r := tree.Find(k)
		require.True(t, r.Found, "key %d", k)
		require.Equal(t, k, r.Key)
		require.Equal(t, fmt.Sprintf("v%d", k), r.Value)
		// The found record is splayed to the root.
		require.Equal(t, k, tree.Root().Key())
	}
	require.NoError(t, tree.HealthCheck())
}

func TestFindAbsentSplaysNearestProbe(t *testing.T) {
	tree := complete16()

	r := tree.Find(16)
	require.True(t, r.Found)
	require.Equal(t, 16, tree.Root().Key())

	// 17 is absent; the failed search must leave one of its in-order
	// neighbors on the search path at the root.
	r = tree.Find(17)
	require.False(t, r.Found)
	require.Contains(t, []int{16, 18}, tree.Root().Key())
	require.NoError(t, tree.HealthCheck())
}

func TestFindOnEmptyTree(t *testing.T) {
	tree := New[int, string]()
	r := tree.Find(1)
	require.False(t, r.Found)
	require.Nil(t, tree.Root())
	require.Zero(t, tree.Len())
}

func TestAscendingBuildStaysHealthy(t *testing.T) {
	// Monotone insertion is the splay tree's favorable worst case: the
	// tree degenerates to a chain but each insert is O(1).
	tree := New[int, int]()
	for k := 1; k <= 1000; k++ {
		tree.Insert(k, k*k)
	}
	require.Equal(t, 1000, tree.Len())

	r := tree.Find(500)
	require.True(t, r.Found)
	require.Equal(t, 500, r.Key)
	require.Equal(t, 500*500, r.Value)
	require.NoError(t, tree.HealthCheck())

	// The probe schedule the original chain demo used.
	for _, k := range []int{1, 2, 4, 8, 12, 24, 40, 56} {
		r := tree.Find(k)
		require.True(t, r.Found, "key %d", k)
		require.Equal(t, k, tree.Root().Key())
	}
	require.NoError(t, tree.HealthCheck())
}

func TestUpdate(t *testing.T) {
	tree := New[int, string]()
	tree.Insert(10, "old")
	tree.Insert(20, "twenty")

	require.True(t, tree.Update(10, "new"))
	require.Equal(t, "new", tree.Find(10).Value)
	require.Equal(t, 2, tree.Len())

	// Absent key: failure, but the tree still splayed toward the probe.
	require.False(t, tree.Update(15, "nope"))
	require.Equal(t, 2, tree.Len())
	require.NoError(t, tree.HealthCheck())
}

func TestUpdateWithDuplicatesHitsExactlyOne(t *testing.T) {
	tree := New[int, string]()
	tree.Insert(5, "a")
	tree.Insert(5, "b")

	// Which of the two records is overwritten is unspecified; exactly
	// one of them must be.
	require.True(t, tree.Update(5, "new"))
	var values []string
	tree.Walk(func(n *Node[int, string], _ int) bool {
		values = append(values, n.Value())
		return true
	})
	sort.Strings(values)
	require.Len(t, values, 2)
	require.Contains(t, values, "new")
	require.NotEqual(t, []string{"new", "new"}, values)
}

func TestEraseRemovesExactlyOneInstance(t *testing.T) {
	tree := New[int, string]()
	tree.Insert(5, "v1")
	tree.Insert(5, "v2")
	require.Equal(t, 2, tree.Len())

	v, ok := tree.Erase(5)
	require.True(t, ok)
	require.Contains(t, []string{"v1", "v2"}, v)
	require.Equal(t, 1, tree.Len())
	require.True(t, tree.Find(5).Found)

	v2, ok := tree.Erase(5)
	require.True(t, ok)
	require.NotEqual(t, v, v2)
	require.Zero(t, tree.Len())

	_, ok = tree.Erase(5)
	require.False(t, ok)
	require.NoError(t, tree.HealthCheck())
}

func TestEraseAbsentKeyIsNoOp(t *testing.T) {
	tree := complete16()
	_, ok := tree.Erase(17)
	require.False(t, ok)
	require.Equal(t, 15, tree.Len())
	require.NoError(t, tree.HealthCheck())
}

func TestEraseRootWithoutRightSubtree(t *testing.T) {
	tree := New[int, string]()
	tree.Insert(10, "ten")
	tree.Insert(5, "five")

	// Erasing the maximum: the found root has no right subtree, so the
	// left child takes over directly.
	v, ok := tree.Erase(10)
	require.True(t, ok)
	require.Equal(t, "ten", v)
	require.Equal(t, 1, tree.Len())
	require.Equal(t, 5, tree.Root().Key())
	require.NoError(t, tree.HealthCheck())
}

func TestMinMax(t *testing.T) {
	tree := New[int, string]()
	require.False(t, tree.Min().Found)
	require.False(t, tree.Max().Found)

	for _, k := range []int{14, 3, 27, 9, 41, 3} {
		tree.Insert(k, fmt.Sprintf("v%d", k))
	}

	r := tree.Min()
	require.True(t, r.Found)
	require.Equal(t, 3, r.Key)
	require.Equal(t, 3, tree.Root().Key())

	r = tree.Max()
	require.True(t, r.Found)
	require.Equal(t, 41, r.Key)
	require.Equal(t, 41, tree.Root().Key())

	keys := inorderKeys(tree)
	require.Equal(t, 3, keys[0])
	require.Equal(t, 41, keys[len(keys)-1])
	require.True(t, sort.IntsAreSorted(keys))
	require.NoError(t, tree.HealthCheck())
}

func TestDrainViaMax(t *testing.T) {
	// The original interpreter tears a tree down by repeated max+erase;
	// keep that path honest.
	tree := complete16()
	prev := 1 << 30
	for r := tree.Max(); r.Found; r = tree.Max() {
		require.Less(t, r.Key, prev)
		prev = r.Key
		_, ok := tree.Erase(r.Key)
		require.True(t, ok)
	}
	require.Zero(t, tree.Len())
	require.Nil(t, tree.Root())
}

func TestClear(t *testing.T) {
	tree := complete16()
	tree.Clear()
	require.Zero(t, tree.Len())
	require.Nil(t, tree.Root())
	require.NoError(t, tree.HealthCheck())

	// Usable after clearing.
	tree.Insert(1, "one")
	require.Equal(t, 1, tree.Len())
}

func TestRandomChurnKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := New[int, int]()
	var mirror []int // multiset of live keys

	removeOne := func(k int) {
		for i, m := range mirror {
			if m == k {
				mirror = append(mirror[:i], mirror[i+1:]...)
				return
			}
		}
	}

	for i := 0; i < 5000; i++ {
		switch op := rng.Float64(); {
		case op < 0.5 || len(mirror) == 0:
			k := rng.Intn(300)
			tree.Insert(k, i)
			mirror = append(mirror, k)
		case op < 0.8:
			k := mirror[rng.Intn(len(mirror))]
			_, ok := tree.Erase(k)
			require.True(t, ok, "erase of a live key must succeed")
			removeOne(k)
		default:
			k := rng.Intn(300)
			want := false
			for _, m := range mirror {
				if m == k {
					want = true
					break
				}
			}
			require.Equal(t, want, tree.Find(k).Found, "find(%d) at op %d", k, i)
		}

		require.Equal(t, len(mirror), tree.Len())
		if i%250 == 0 {
			require.NoError(t, tree.HealthCheck(), "op %d", i)
			keys := inorderKeys(tree)
			sorted := append([]int(nil), mirror...)
			sort.Ints(sorted)
			require.Equal(t, sorted, keys, "op %d", i)
		}
	}
	require.NoError(t, tree.HealthCheck())
}

func BenchmarkInsertAscending(b *testing.B) {
	tree := New[int, int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tree.Insert(i, i)
	}
}

func BenchmarkFindSkewed(b *testing.B) {
	tree := New[int, int]()
	for i := 0; i < 1<<14; i++ {
		tree.Insert(i, i)
	}
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Repeated access to a small working set is the access pattern
		// splay trees reward.
		tree.Find(rng.Intn(64))
	}
}
