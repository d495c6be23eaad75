package wsview

import (
	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/wfc"
)

// CellFrame is the JSON-serializable superposition of a single cell.
type CellFrame struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	States   []int64 `json:"states"`
	Entropy  float64 `json:"entropy,omitempty"`
	Collapsed bool   `json:"collapsed"`
}

// Frame is one full-grid snapshot pushed to the client after a tick.
type Frame struct {
	Sequence int         `json:"sequence"`
	State    string      `json:"state"`
	Cells    []CellFrame `json:"cells"`
	Done     bool        `json:"done"`
}

// buildFrame walks every position of g and captures its current
// superposition into a Frame. sequence is the caller's tick counter;
// it is carried through unchanged so the client can detect dropped
// frames.
func buildFrame(g *grid.Grid2D, e *wfc.Engine2D, sequence int, done bool) Frame {
	positions := g.Positions()
	cells := make([]CellFrame, 0, len(positions))
	for _, pos := range positions {
		tl, ok := g.GetTile(pos)
		if !ok {
			continue
		}
		states := tl.PossibleStates()
		ids := make([]int64, len(states))
		for i, s := range states {
			ids[i] = int64(s)
		}
		cells = append(cells, CellFrame{
			X:         pos.X,
			Y:         pos.Y,
			States:    ids,
			Collapsed: tl.HasCollapsed(),
		})
	}

	return Frame{
		Sequence: sequence,
		State:    e.CurrentState().String(),
		Cells:    cells,
		Done:     done,
	}
}
