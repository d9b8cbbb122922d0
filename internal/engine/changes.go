package engine

// ChangeKind classifies how a cell differs between two grids.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
	ChangeValue   ChangeKind = "changed"
)

// CellChange is one entry of a per-cell diff.
type CellChange struct {
	Pos  Pos        `json:"pos"`
	Kind ChangeKind `json:"kind"`
	From int        `json:"from"`
	To   int        `json:"to"`
}

// Diff lists the cells that differ between before and after, row-major.
// Unchanged cells are omitted. A size mismatch is treated as every cell of
// after being added.
func Diff(before, after Grid) []CellChange {
	if before.size != after.size {
		before = NewGrid(after.size)
	}

	var changes []CellChange
	for i, to := range after.cells {
		from := before.cells[i]
		if from == to {
			continue
		}

		kind := ChangeValue
		switch {
		case from == 0:
			kind = ChangeAdded
		case to == 0:
			kind = ChangeRemoved
		}

		changes = append(changes, CellChange{
			Pos:  Pos{Row: i / after.size, Col: i % after.size},
			Kind: kind,
			From: from,
			To:   to,
		})
	}
	return changes
}
