package dataset

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/arloliu/vecfield/errs"
	"github.com/arloliu/vecfield/format"
)

// Grid is a dense Ox × Oy array of field vectors on a regular lattice.
//
// Cell (i, j) sits at (i*dx, j*dy); positions are derived, never stored.
// Cells are kept row-major: cell (i, j) is cells[i*oy+j].
type Grid struct {
	header
	ox, oy int
	dx, dy float64
	cells  []Vector2
}

// NewEmptyGrid creates a 0×0 grid with zero spacing.
func NewEmptyGrid(name string, ts time.Time) *Grid {
	return &Grid{
		header: header{name: name, ts: ts},
		cells:  make([]Vector2, 0),
	}
}

// NewGrid creates an ox × oy grid with spacing (dx, dy), filling cell (i, j)
// with fn(i*dx, j*dy). fn is called once per cell and not retained.
//
// Returns errs.ErrInvalidDimensions for a negative dimension and
// errs.ErrNilFieldFunc for a nil fn.
func NewGrid(name string, ts time.Time, ox, oy int, dx, dy float64, fn FieldFunc) (*Grid, error) {
	if ox < 0 || oy < 0 {
		return nil, fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, ox, oy)
	}
	if fn == nil {
		return nil, errs.ErrNilFieldFunc
	}

	g := &Grid{
		header: header{name: name, ts: ts},
		ox:     ox,
		oy:     oy,
		dx:     dx,
		dy:     dy,
		cells:  make([]Vector2, ox*oy),
	}
	for i := range ox {
		for j := range oy {
			g.cells[i*oy+j] = fn(float64(i)*dx, float64(j)*dy)
		}
	}

	return g, nil
}

// RestoreGrid rebuilds a grid from row-major cells, as read back by a decoder.
//
// Returns errs.ErrInvalidDimensions for a negative dimension and
// errs.ErrCellCountMismatch when len(cells) != ox*oy. cells is copied.
func RestoreGrid(name string, ts time.Time, ox, oy int, dx, dy float64, cells []Vector2) (*Grid, error) {
	if ox < 0 || oy < 0 {
		return nil, fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, ox, oy)
	}
	if len(cells) != ox*oy {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", errs.ErrCellCountMismatch, len(cells), ox, oy)
	}

	return &Grid{
		header: header{name: name, ts: ts},
		ox:     ox,
		oy:     oy,
		dx:     dx,
		dy:     dy,
		cells:  append(make([]Vector2, 0, len(cells)), cells...),
	}, nil
}

func (g *Grid) sealed() {}

// Variant returns format.VariantGrid.
func (g *Grid) Variant() format.Variant {
	return format.VariantGrid
}

// Ox returns the number of cells along x.
func (g *Grid) Ox() int { return g.ox }

// Oy returns the number of cells along y.
func (g *Grid) Oy() int { return g.oy }

// Dx returns the spacing along x.
func (g *Grid) Dx() float64 { return g.dx }

// Dy returns the spacing along y.
func (g *Grid) Dy() float64 { return g.dy }

// Count returns Ox*Oy.
func (g *Grid) Count() int {
	return g.ox * g.oy
}

// At returns the vector of cell (i, j).
func (g *Grid) At(i, j int) (Vector2, error) {
	if i < 0 || i >= g.ox || j < 0 || j >= g.oy {
		return Vector2{}, fmt.Errorf("%w: (%d,%d) in %dx%d", errs.ErrCellOutOfRange, i, j, g.ox, g.oy)
	}

	return g.cells[i*g.oy+j], nil
}

// Cells returns the row-major cell vectors. The slice must not be modified.
func (g *Grid) Cells() []Vector2 {
	return g.cells
}

// Position returns the lattice position of cell (i, j).
func (g *Grid) Position(i, j int) (float64, float64) {
	return float64(i) * g.dx, float64(j) * g.dy
}

// MaxDistance returns the single-precision distance from the origin to the
// farthest corner ((Ox-1)*dx, (Oy-1)*dy), or 0 when either dimension is 0.
func (g *Grid) MaxDistance() float64 {
	if g.ox == 0 || g.oy == 0 {
		return 0
	}

	return reducedDistance(float64(g.ox-1)*g.dx, float64(g.oy-1)*g.dy)
}

// ToPointList flattens the grid row-major into a PointList with the same name
// and timestamp. Every cell goes through PointList.Add, so degenerate spacing
// (dx or dy equal to zero) silently drops cells that collapse onto one position.
func (g *Grid) ToPointList() *PointList {
	p := NewPointList(g.name, g.ts)
	for i := range g.ox {
		for j := range g.oy {
			x, y := g.Position(i, j)
			p.Add(NewDataItem(x, y, g.cells[i*g.oy+j]))
		}
	}

	return p
}

// Items yields the items of ToPointList, so colliding cells appear once.
func (g *Grid) Items() iter.Seq[DataItem] {
	return func(yield func(DataItem) bool) {
		for item := range g.ToPointList().Items() {
			if !yield(item) {
				return
			}
		}
	}
}

// String returns "Grid,name,timestamp,Ox,Oy,dx,dy\n".
func (g *Grid) String() string {
	return fmt.Sprintf("%s,%s,%s,%d,%d,%v,%v\n",
		g.Variant(), g.name, formatTimestamp(g.ts), g.ox, g.oy, g.dx, g.dy)
}

// Render returns the summary line followed by one line per cell in row-major order.
func (g *Grid) Render(verb string) string {
	verb = renderVerb(verb)

	var sb strings.Builder
	sb.WriteString(g.String())
	for i := range g.ox {
		for j := range g.oy {
			x, y := g.Position(i, j)
			writeItemLine(&sb, verb, x, y, g.cells[i*g.oy+j])
		}
	}

	return sb.String()
}
