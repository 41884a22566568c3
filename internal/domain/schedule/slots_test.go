package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		end    int
		stride int
		want   []int
	}{
		{
			name:  "full workday at default stride",
			start: 9 * 60, end: 18 * 60, stride: 30,
			want: []int{
				540, 570, 600, 630, 660, 690, 720, 750, 780,
				810, 840, 870, 900, 930, 960, 990, 1020, 1050,
			},
		},
		{
			name:  "last start may run past end",
			start: 9 * 60, end: 10*60 + 15, stride: 30,
			want: []int{540, 570, 600},
		},
		{
			name:  "hour long service",
			start: 9 * 60, end: 12 * 60, stride: 60,
			want: []int{540, 600, 660},
		},
		{
			name:  "empty window",
			start: 10 * 60, end: 10 * 60, stride: 30,
			want: nil,
		},
		{
			name:  "inverted window",
			start: 18 * 60, end: 9 * 60, stride: 30,
			want: nil,
		},
		{
			name:  "zero stride",
			start: 9 * 60, end: 18 * 60, stride: 0,
			want: nil,
		},
		{
			name:  "negative stride",
			start: 9 * 60, end: 18 * 60, stride: -15,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlots(tt.start, tt.end, tt.stride))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		want                           bool
	}{
		{"identical intervals", 600, 630, 600, 630, true},
		{"partial overlap right", 600, 660, 630, 690, true},
		{"partial overlap left", 630, 690, 600, 660, true},
		{"containment", 600, 720, 630, 660, true},
		{"back to back is not a conflict", 600, 630, 630, 660, false},
		{"back to back reversed", 630, 660, 600, 630, false},
		{"disjoint", 540, 570, 600, 630, false},
		{"one minute overlap", 600, 631, 630, 660, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// the predicate is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
