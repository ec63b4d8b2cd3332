package bst_test

import (
	"testing"

	"github.com/hveem/digraph/bst"
	"github.com/stretchr/testify/require"
)

func TestTree_Insert(t *testing.T) {
	t.Parallel()

	tree := bst.New[int]()
	require.True(t, tree.Empty())
	require.Equal(t, 0, tree.Size())

	tree.Insert(5)
	tree.Insert(3)
	tree.Insert(8)
	require.False(t, tree.Empty())
	require.Equal(t, 3, tree.Size())

	// duplicates are ignored
	tree.Insert(3)
	require.Equal(t, 3, tree.Size())
}

func TestTree_Contains(t *testing.T) {
	t.Parallel()

	tree := bst.New[int]()
	require.False(t, tree.Contains(5))

	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(v)
	}
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		require.True(t, tree.Contains(v))
	}
	require.False(t, tree.Contains(2))
	require.False(t, tree.Contains(6))
}

func TestTree_MinMax(t *testing.T) {
	t.Parallel()

	tree := bst.New[string]()
	_, ok := tree.Min()
	require.False(t, ok)
	_, ok = tree.Max()
	require.False(t, ok)

	for _, v := range []string{"mango", "apple", "pear", "banana"} {
		tree.Insert(v)
	}
	min, ok := tree.Min()
	require.True(t, ok)
	require.Equal(t, "apple", min)
	max, ok := tree.Max()
	require.True(t, ok)
	require.Equal(t, "pear", max)
}

func TestTree_InOrder(t *testing.T) {
	t.Parallel()

	tree := bst.New[int]()
	require.Equal(t, []int{}, tree.InOrder())

	// values come back sorted no matter the insertion order
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		tree.Insert(v)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, tree.InOrder())

	// a degenerate chain still works
	chain := bst.New[int]()
	for i := 1; i <= 10; i++ {
		chain.Insert(i)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, chain.InOrder())
}
