package engine

// lineTile is one output cell of a merged line together with the indices of
// the input values it was built from (one index, or two for a merge).
type lineTile struct {
	Value   int
	Sources []int
}

// Merged reports whether the tile is the product of a merge.
func (t lineTile) Merged() bool {
	return len(t.Sources) == 2
}

// mergeLineTracked merges a compacted line toward index 0.
// Each input value takes part in at most one merge and a merged tile is never
// merged again in the same pass.
func mergeLineTracked(values []int) (tiles []lineTile, score int) {
	tiles = make([]lineTile, 0, len(values))

	for i := 0; i < len(values); {
		if i+1 < len(values) && values[i] == values[i+1] {
			merged := values[i] * 2
			tiles = append(tiles, lineTile{Value: merged, Sources: []int{i, i + 1}})
			score += merged
			i += 2
			continue
		}

		tiles = append(tiles, lineTile{Value: values[i], Sources: []int{i}})
		i++
	}

	return tiles, score
}

// MergeLineTowardStart merges the non-zero values of one row or column, read
// in the direction of travel, toward index 0. Equal neighbours are combined
// greedily from the start of the line: [2,2,2] becomes [4,2] and [2,2,2,2]
// becomes [4,4]. Returns the merged values and the sum of all merge results.
func MergeLineTowardStart(values []int) ([]int, int) {
	tiles, score := mergeLineTracked(values)

	out := make([]int, len(tiles))
	for i, t := range tiles {
		out[i] = t.Value
	}
	return out, score
}
