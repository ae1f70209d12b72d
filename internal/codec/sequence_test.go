package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSequencesClosesRings(t *testing.T) {
	p, err := Parse(polygonWithHole())
	require.NoError(t, err)

	seqs := BuildSequences(p)
	require.Len(t, seqs, 2)

	assert.Equal(t, []Coordinate{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}, seqs[0])
	assert.Equal(t, []Coordinate{
		{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 2},
	}, seqs[1])

	// The shared coordinate array is left alone.
	assert.Len(t, p.Coordinates, 7)
	assert.Equal(t, Coordinate{X: 2, Y: 2}, p.Coordinates[4])
}

func TestBuildSequencesPartitions(t *testing.T) {
	p := &Payload{
		Coordinates: []Coordinate{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}},
		Figures: []Figure{
			{Attribute: FigureStroke, PointOffset: 0},
			{Attribute: FigureStroke, PointOffset: 2},
			{Attribute: FigureStroke, PointOffset: 2},
			{Attribute: FigureStroke, PointOffset: 3},
		},
	}

	seqs := BuildSequences(p)

	assert.Equal(t, [][]Coordinate{
		{{X: 0}, {X: 1}},
		{},
		{{X: 2}},
		{{X: 3}, {X: 4}},
	}, seqs)
}

func TestCloseRing(t *testing.T) {
	tests := []struct {
		name   string
		coords []Coordinate
		want   []Coordinate
	}{
		{
			name:   "open",
			coords: []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
			want:   []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}},
		},
		{
			name:   "closed",
			coords: []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}},
			want:   []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}},
		},
		{
			name:   "closed in plan, different z",
			coords: []Coordinate{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 5}},
			want:   []Coordinate{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 5}},
		},
		{
			name:   "empty",
			coords: []Coordinate{},
			want:   []Coordinate{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := closeRing(tt.coords)
			assert.Equal(t, tt.want, got)
			// Closing twice changes nothing.
			assert.Equal(t, got, closeRing(got))
		})
	}
}

func TestBuildSequencesStrokeNotClosed(t *testing.T) {
	p := &Payload{
		Coordinates: []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		Figures:     []Figure{{Attribute: FigureStroke, PointOffset: 0}},
	}

	seqs := BuildSequences(p)
	assert.Len(t, seqs[0], 3)
}
