// Package dataset models named, timestamped collections of 2-D vector-field samples.
//
// A DataItem is a sample position (x, y) with a field vector E. Datasets come in
// exactly two variants:
//
//   - PointList: a sparse, insertion-ordered list of items with unique positions.
//   - Grid: a dense Ox × Oy array of field vectors on a regular lattice with spacing
//     (dx, dy) and its origin at (0, 0).
//
// Both satisfy the Dataset interface, which is sealed: no other implementations exist.
//
// # Position equality
//
// Two positions are the same when the single-precision vector of their
// coordinate deltas has zero length:
//
//	dx := float32(a.X - b.X)
//	dy := float32(a.Y - b.Y)
//	same := Vector2{dx, dy}.Length() == 0
//
// This is a precision-reduced equality, not an epsilon comparison. Deltas below
// the float32 range flush to zero, and the squared components of tiny deltas
// underflow, so positions that differ only far beyond float32 resolution count
// as equal. Persisted files written by other tools rely on exactly this rule.
//
// # Basic Usage
//
//	field := func(x, y float64) dataset.Vector2 {
//	    return dataset.Vector2{X: float32(x), Y: float32(y)}
//	}
//
//	list := dataset.NewPointList("Raptor", time.Now())
//	list.AddDefaults(4, field)
//	fmt.Print(list.Render("%g"))
//
//	grid, err := dataset.NewGrid("Pigeon", time.Now(), 2, 2, 0.1, 0.1, field)
//	if err != nil {
//	    return err
//	}
//	flat := grid.ToPointList()
//
// # Thread Safety
//
// Datasets are not safe for concurrent mutation. Add scans then appends, so
// concurrent inserts must be serialized by the caller.
package dataset
