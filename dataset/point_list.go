package dataset

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/arloliu/vecfield/format"
)

// DefaultStep is the x increment unit used by AddDefaults.
const DefaultStep = 0.1

// PointList is an insertion-ordered list of DataItems with unique positions.
//
// Uniqueness is enforced on insert by Add and never re-checked.
type PointList struct {
	header
	items []DataItem
}

// NewPointList creates an empty PointList.
func NewPointList(name string, ts time.Time) *PointList {
	return &PointList{
		header: header{name: name, ts: ts},
		items:  make([]DataItem, 0),
	}
}

func (p *PointList) sealed() {}

// Variant returns format.VariantPointList.
func (p *PointList) Variant() format.Variant {
	return format.VariantPointList
}

// Count returns the number of items.
func (p *PointList) Count() int {
	return len(p.items)
}

// Add appends item unless an existing item is at the same position.
//
// Returns false, leaving the list unchanged, when the position is taken.
// The scan is O(n), so n sequential inserts cost O(n²).
func (p *PointList) Add(item DataItem) bool {
	for _, existing := range p.items {
		if existing.SamePosition(item) {
			return false
		}
	}

	p.items = append(p.items, item)

	return true
}

// AddDefaults generates count items along the curve y = x²/3 and returns how
// many were accepted.
//
// x starts at Count()*DefaultStep and, for i = 1..count, advances by i*DefaultStep
// before each sample. fn supplies the field vector at every generated position.
// A nil fn or a non-positive count adds nothing.
func (p *PointList) AddDefaults(count int, fn FieldFunc) int {
	if fn == nil || count <= 0 {
		return 0
	}

	accepted := 0
	x := float64(p.Count()) * DefaultStep
	for i := 1; i <= count; i++ {
		x += float64(i) * DefaultStep
		y := x * x / 3
		if p.Add(NewDataItem(x, y, fn(x, y))) {
			accepted++
		}
	}

	return accepted
}

// MaxDistance returns the largest distance between any two items, using the
// single-precision distance of the coordinate deltas. Lists with fewer than
// two items return 0.
func (p *PointList) MaxDistance() float64 {
	maxDist := 0.0
	for i := range p.items {
		for j := i + 1; j < len(p.items); j++ {
			d := reducedDistance(p.items[i].X-p.items[j].X, p.items[i].Y-p.items[j].Y)
			if d > maxDist {
				maxDist = d
			}
		}
	}

	return maxDist
}

// Items returns the items in insertion order.
func (p *PointList) Items() iter.Seq[DataItem] {
	return slices.Values(p.items)
}

// Slice returns a copy of the items.
func (p *PointList) Slice() []DataItem {
	return slices.Clone(p.items)
}

// At returns the i-th item. It panics if i is out of range.
func (p *PointList) At(i int) DataItem {
	return p.items[i]
}

// String returns "PointList,name,timestamp,count,maxDistance\n".
func (p *PointList) String() string {
	return fmt.Sprintf("%s,%s,%s,%d,%v\n",
		p.Variant(), p.name, formatTimestamp(p.ts), p.Count(), p.MaxDistance())
}

// Render returns the summary line followed by one line per item.
func (p *PointList) Render(verb string) string {
	verb = renderVerb(verb)

	var sb strings.Builder
	sb.WriteString(p.String())
	for _, item := range p.items {
		writeItemLine(&sb, verb, item.X, item.Y, item.E)
	}

	return sb.String()
}
