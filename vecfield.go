// Package vecfield stores and queries 2-D vector fields sampled at points in the plane.
//
// A field is kept in one of two dataset variants:
//
//   - PointList: a sparse, deduplicated sequence of samples at arbitrary positions
//   - Grid: a dense, regular Ox × Oy lattice of samples with spacing (dx, dy)
//
// Both share a name and a timestamp, report their largest pairwise distance, and
// render as text. A Collection holds datasets with unique names and answers
// aggregate queries across all of them.
//
// # Core Features
//
//   - Reduced-precision (float32) position equality for deduplication
//   - Hash-based dataset name lookup (64-bit xxHash64) with collision fallback
//   - Binary point list format compatible with .NET BinaryWriter files
//   - Line-oriented grid text format
//   - Atomic file saves with optional compression (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Building datasets:
//
//	import "github.com/arloliu/vecfield"
//
//	field := func(x, y float64) dataset.Vector2 {
//	    return dataset.Vector2{X: float32(x), Y: float32(y)}
//	}
//
//	grid, _ := vecfield.NewGrid("Pigeon", time.Now(), 10, 10, 0.1, 0.1, field)
//
//	list := vecfield.NewPointList("Raptor", time.Now())
//	list.AddDefaults(5, field)
//
// Querying a collection:
//
//	c := vecfield.NewCollection()
//	c.Add(grid)
//	c.Add(list)
//	item, ok := c.MaxDistanceItem()
//
// Persisting:
//
//	err := vecfield.SaveGrid("pigeon.grid", grid, persist.WithCompression(format.CompressionZstd))
//	g, err := vecfield.LoadGrid("pigeon.grid", persist.WithCompression(format.CompressionZstd))
//
// # Package Structure
//
// This package provides top-level wrappers around the dataset, collection and
// persist packages for the common cases. Use those packages directly for the
// full API, and package encoding for in-memory serialization.
package vecfield

import (
	"time"

	"github.com/arloliu/vecfield/collection"
	"github.com/arloliu/vecfield/dataset"
	"github.com/arloliu/vecfield/internal/hash"
	"github.com/arloliu/vecfield/persist"
)

// NewPointList creates an empty point list.
func NewPointList(name string, ts time.Time) *dataset.PointList {
	return dataset.NewPointList(name, ts)
}

// NewGrid creates an ox × oy grid with spacing (dx, dy) whose cell (i, j)
// holds fn(i*dx, j*dy).
//
// Returns an error if a dimension is negative or fn is nil.
//
// Example:
//
//	g, err := vecfield.NewGrid("Cuco", time.Now(), 2, 2, 0.1, 0.1, field)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewGrid(name string, ts time.Time, ox, oy int, dx, dy float64, fn dataset.FieldFunc) (*dataset.Grid, error) {
	return dataset.NewGrid(name, ts, ox, oy, dx, dy, fn)
}

// NewEmptyGrid creates a 0 × 0 grid.
func NewEmptyGrid(name string, ts time.Time) *dataset.Grid {
	return dataset.NewEmptyGrid(name, ts)
}

// NewCollection creates an empty dataset collection.
func NewCollection() *collection.Collection {
	return collection.New()
}

// SavePointList writes p to path in the binary point list format.
//
// Available options:
//   - persist.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - persist.WithPointListLayout(format.PointListLayoutLegacy|PointListLayoutV2)
//   - persist.WithLogger(logger)
//   - persist.WithRequireExisting()
func SavePointList(path string, p *dataset.PointList, opts ...persist.Option) error {
	return persist.SavePointList(path, p, opts...)
}

// LoadPointList reads a point list file. Options must match those used to save it.
func LoadPointList(path string, opts ...persist.Option) (*dataset.PointList, error) {
	return persist.LoadPointList(path, opts...)
}

// SaveGrid writes g to path in the grid text format.
func SaveGrid(path string, g *dataset.Grid, opts ...persist.Option) error {
	return persist.SaveGrid(path, g, opts...)
}

// LoadGrid reads a grid file. The compression option must match the one used to save it.
func LoadGrid(path string, opts ...persist.Option) (*dataset.Grid, error) {
	return persist.LoadGrid(path, opts...)
}

// NameID returns the 64-bit xxHash64 of a dataset name, as used by Collection lookups.
func NameID(name string) uint64 {
	return hash.NameID(name)
}
