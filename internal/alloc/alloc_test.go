package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPow2(t *testing.T) {
	tests := []struct {
		n, floor, expected int
	}{
		{0, 32, 32},
		{1, 32, 32},
		{31, 32, 32},
		{32, 32, 32},
		{33, 32, 64},
		{100, 32, 128},
		{128, 32, 128},
		{5, 1, 8},
		{8, 1, 8},
		{3, 0, 4},
		{0, 0, 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, NextPow2(tt.n, tt.floor),
			"NextPow2(%d, %d)", tt.n, tt.floor)
	}
}

func TestHeapAlloc(t *testing.T) {
	b, err := Heap{}.Alloc(64)
	require.NoError(t, err)
	require.Len(t, b, 64)

	_, err = Heap{}.Alloc(-1)
	require.Error(t, err)
}

func TestHeapSlotsAlloc(t *testing.T) {
	s, err := HeapSlots[string]{}.Alloc(8)
	require.NoError(t, err)
	require.Len(t, s, 8)

	_, err = HeapSlots[string]{}.Alloc(-1)
	require.Error(t, err)
}
