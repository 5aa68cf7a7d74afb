package dataset

import (
	"fmt"
	"math"
	"strings"
)

// Vector2 is a single-precision 2-D vector.
type Vector2 struct {
	X float32
	Y float32
}

// Length returns the Euclidean norm computed in single precision.
func (v Vector2) Length() float32 {
	// explicit conversions round each product, preventing fused multiply-add
	sq := float32(v.X*v.X) + float32(v.Y*v.Y)

	return float32(math.Sqrt(float64(sq)))
}

// FieldFunc samples a field vector at a position.
type FieldFunc func(x, y float64) Vector2

// DataItem is one sample: a position and its field vector.
type DataItem struct {
	X float64
	Y float64
	E Vector2
}

// NewDataItem creates a DataItem.
func NewDataItem(x, y float64, e Vector2) DataItem {
	return DataItem{X: x, Y: y, E: e}
}

// Norm returns |E|.
func (d DataItem) Norm() float32 {
	return d.E.Length()
}

// SquaredRadius returns x²+y², the squared distance of the position from the origin.
func (d DataItem) SquaredRadius() float64 {
	return d.X*d.X + d.Y*d.Y
}

// SamePosition reports whether d and other are at the same position under the
// precision-reduced equality described in the package documentation.
func (d DataItem) SamePosition(other DataItem) bool {
	return reducedDistance(d.X-other.X, d.Y-other.Y) == 0
}

// String returns "x,y,Ex,Ey,|E|".
func (d DataItem) String() string {
	return fmt.Sprintf("%v,%v,%v,%v,%v", d.X, d.Y, d.E.X, d.E.Y, d.Norm())
}

// Format renders the item as one report line using verb for every number, e.g. "%.3f".
func (d DataItem) Format(verb string) string {
	var sb strings.Builder
	writeItemLine(&sb, verb, d.X, d.Y, d.E)

	return sb.String()
}

func writeItemLine(sb *strings.Builder, verb string, x, y float64, e Vector2) {
	sb.WriteString(" x=")
	fmt.Fprintf(sb, verb, x)
	sb.WriteString(" y=")
	fmt.Fprintf(sb, verb, y)
	sb.WriteString(" Ex=")
	fmt.Fprintf(sb, verb, e.X)
	sb.WriteString(" Ey=")
	fmt.Fprintf(sb, verb, e.Y)
	sb.WriteString(" |E|=")
	fmt.Fprintf(sb, verb, e.Length())
	sb.WriteByte('\n')
}

// reducedDistance casts both deltas to float32 and returns the single-precision length.
func reducedDistance(dx, dy float64) float64 {
	return float64(Vector2{X: float32(dx), Y: float32(dy)}.Length())
}
