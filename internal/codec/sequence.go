package codec

// BuildSequences partitions the coordinate array into one sequence per figure.
//
// Figure i owns coordinates [Figures[i].PointOffset, Figures[i+1].PointOffset),
// the last figure runs to the end of the array. The wire format omits the
// closing point of rings, so ring figures (interior or exterior) whose first
// and last positions differ get a copy of the first coordinate appended.
// Sequences that are already closed are returned unchanged.
func BuildSequences(p *Payload) [][]Coordinate {
	sequences := make([][]Coordinate, len(p.Figures))
	for i, f := range p.Figures {
		start, end := p.figurePointRange(i)
		seq := p.Coordinates[start:end]
		if f.Attribute.closesRing() {
			seq = closeRing(seq)
		}
		sequences[i] = seq
	}
	return sequences
}

// closeRing returns coords with its first coordinate repeated at the end when
// needed. It never writes into the backing array of coords.
func closeRing(coords []Coordinate) []Coordinate {
	if len(coords) == 0 {
		return coords
	}
	first, last := coords[0], coords[len(coords)-1]
	if first.equals2D(last) {
		return coords
	}
	closed := make([]Coordinate, len(coords)+1)
	copy(closed, coords)
	closed[len(coords)] = first
	return closed
}
