package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		total      int
		maxVisible int
		want       []int
	}{
		{"first page of many", 1, 17, 5, []int{1, 2, 3, 4, 5}},
		{"head boundary", 3, 17, 5, []int{1, 2, 3, 4, 5}},
		{"centered", 9, 17, 5, []int{7, 8, 9, 10, 11}},
		{"tail boundary", 15, 17, 5, []int{13, 14, 15, 16, 17}},
		{"last page of many", 17, 17, 5, []int{13, 14, 15, 16, 17}},
		{"just past head", 4, 17, 5, []int{2, 3, 4, 5, 6}},
		{"everything fits", 2, 3, 5, []int{1, 2, 3}},
		{"single page", 1, 1, 5, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PageWindow(tt.current, tt.total, tt.maxVisible))
		})
	}
}

func TestPageWindowDegenerateInput(t *testing.T) {
	require.Nil(t, PageWindow(1, 0, 5))

	// out-of-range current pages are clamped instead of producing
	// windows that point past the listing
	require.Equal(t, []int{13, 14, 15, 16, 17}, PageWindow(40, 17, 5))
	require.Equal(t, []int{1, 2, 3, 4, 5}, PageWindow(-2, 17, 5))

	// non-positive budget falls back to the default of 5
	require.Equal(t, []int{1, 2, 3, 4, 5}, PageWindow(1, 17, 0))
}
