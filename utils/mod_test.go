package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "First match wins")
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex(nil, 3))
	require.True(t, Contains([]int{4, 5}, 5))
	require.False(t, Contains([]int{}, 5))
}
