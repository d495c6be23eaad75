// Package wfc implements the observe-propagate loop proper: collapsing
// the lowest-entropy cell, breadth-first re-checking its neighbours, and
// repeating until the grid is fully collapsed, a contradiction is raised,
// or an iteration budget runs out.
//
// What: Engine2D (and its 1-D counterpart Engine1D) wrap a *grid.Grid2D
// and expose Collapse/Propagate/Tick/Run, plus an explicit State value a
// caller can inspect mid-run — useful for a live view that wants to show
// "observing" vs "recovering from a contradiction" rather than just a
// final result.
//
// Why: the algorithm itself lives one layer down, inside
// grid.Grid2D.Propagate, because grid construction needs the exact same
// breadth-first re-check to seed boundary states (see grid's doc
// comment); this package only adds the piece grid construction doesn't
// need — picking which cell to collapse next, and the run loop that
// retries through a Backtracker on contradiction.
//
// Complexity: Tick is O(log n) to find the next cell plus whatever
// Propagate costs to settle the resulting wavefront; Run is bounded by
// maxIterations steps in total, where every Tick and every backtracker
// invocation counts as one step.
package wfc
