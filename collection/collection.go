// Package collection groups uniquely named datasets and answers aggregate
// queries over all of their items.
//
// Queries flatten the collection: every dataset in insertion order, then every
// item in that dataset's iteration order. The flattened sequence is materialized
// once per query.
//
// A Collection is not safe for concurrent use.
package collection

import (
	"iter"
	"math"
	"strings"
	"time"

	"github.com/arloliu/vecfield/dataset"
	"github.com/arloliu/vecfield/internal/collision"
)

// Collection is an insertion-ordered set of datasets with unique names.
// Datasets cannot be removed.
type Collection struct {
	datasets []dataset.Dataset
	names    *collision.Tracker
}

// New creates an empty Collection.
func New() *Collection {
	return &Collection{
		datasets: make([]dataset.Dataset, 0),
		names:    collision.NewTracker(),
	}
}

// Add appends ds. It returns false, leaving the collection unchanged, when ds
// is nil (including a nil *PointList or *Grid) or a dataset with the same name
// is already present.
func (c *Collection) Add(ds dataset.Dataset) bool {
	if isNil(ds) {
		return false
	}
	if err := c.names.Track(ds.Name()); err != nil {
		return false
	}

	c.datasets = append(c.datasets, ds)

	return true
}

// Contains reports whether a dataset named name is present.
func (c *Collection) Contains(name string) bool {
	return c.names.Contains(name)
}

// Len returns the number of datasets.
func (c *Collection) Len() int {
	return len(c.datasets)
}

// At returns the i-th dataset in insertion order. It panics if i is out of range.
func (c *Collection) At(i int) dataset.Dataset {
	return c.datasets[i]
}

// All yields the datasets with their insertion index.
func (c *Collection) All() iter.Seq2[int, dataset.Dataset] {
	return func(yield func(int, dataset.Dataset) bool) {
		for i, ds := range c.datasets {
			if !yield(i, ds) {
				return
			}
		}
	}
}

// Items yields the flattened items of every dataset.
func (c *Collection) Items() iter.Seq[dataset.DataItem] {
	return func(yield func(dataset.DataItem) bool) {
		for _, ds := range c.datasets {
			for item := range ds.Items() {
				if !yield(item) {
					return
				}
			}
		}
	}
}

func (c *Collection) flatten() []dataset.DataItem {
	items := make([]dataset.DataItem, 0)
	for item := range c.Items() {
		items = append(items, item)
	}

	return items
}

// MaxDistanceItem returns the item farthest from the origin by x²+y².
//
// When several items share the maximal value, the last one in flattened order
// wins. Items whose x²+y² is NaN are skipped. Returns false if no item is left.
func (c *Collection) MaxDistanceItem() (dataset.DataItem, bool) {
	var best dataset.DataItem
	found := false
	for _, item := range c.flatten() {
		r := item.SquaredRadius()
		if math.IsNaN(r) {
			continue
		}
		if !found || r >= best.SquaredRadius() {
			best = item
			found = true
		}
	}

	return best, found
}

// DuplicateXCoordinates returns the distinct x-values that occur in two or more
// items across all datasets, in order of first occurrence.
//
// Returns false if the collection is empty or no x-value repeats.
func (c *Collection) DuplicateXCoordinates() ([]float64, bool) {
	if len(c.datasets) == 0 {
		return nil, false
	}

	items := c.flatten()
	counts := make(map[float64]int, len(items))
	for _, item := range items {
		counts[item.X]++
	}

	dups := make([]float64, 0)
	for _, item := range items {
		if counts[item.X] > 1 {
			dups = append(dups, item.X)
			counts[item.X] = 0 // emit once
		}
	}
	if len(dups) == 0 {
		return nil, false
	}

	return dups, true
}

// EarliestDatasets returns every dataset whose timestamp equals the earliest
// timestamp in the collection, in insertion order. The returned slice holds the
// stored datasets themselves, not copies.
//
// Returns false if the collection is empty.
func (c *Collection) EarliestDatasets() ([]dataset.Dataset, bool) {
	if len(c.datasets) == 0 {
		return nil, false
	}

	earliest := c.datasets[0].Timestamp()
	for _, ds := range c.datasets[1:] {
		if ds.Timestamp().Before(earliest) {
			earliest = ds.Timestamp()
		}
	}

	result := make([]dataset.Dataset, 0, 1)
	for _, ds := range c.datasets {
		if ds.Timestamp().Equal(earliest) {
			result = append(result, ds)
		}
	}

	return result, true
}

// EarliestTimestamp returns the earliest dataset timestamp, or false if empty.
func (c *Collection) EarliestTimestamp() (time.Time, bool) {
	ds, ok := c.EarliestDatasets()
	if !ok {
		return time.Time{}, false
	}

	return ds[0].Timestamp(), true
}

// Render concatenates each dataset's Render(verb), each followed by a newline.
func (c *Collection) Render(verb string) string {
	var sb strings.Builder
	for _, ds := range c.datasets {
		sb.WriteString(ds.Render(verb))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String concatenates each dataset's summary line and ends with a newline.
func (c *Collection) String() string {
	var sb strings.Builder
	for _, ds := range c.datasets {
		sb.WriteString(ds.String())
	}
	sb.WriteByte('\n')

	return sb.String()
}

func isNil(ds dataset.Dataset) bool {
	switch v := ds.(type) {
	case nil:
		return true
	case *dataset.PointList:
		return v == nil
	case *dataset.Grid:
		return v == nil
	default:
		return false
	}
}
