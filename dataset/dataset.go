package dataset

import (
	"iter"
	"time"

	"github.com/arloliu/vecfield/format"
)

// DefaultRenderVerb is the fmt verb used when Render is given an empty verb.
const DefaultRenderVerb = "%v"

// Dataset is the capability set shared by PointList and Grid.
//
// The interface is sealed; PointList and Grid are its only implementations.
type Dataset interface {
	// Name returns the name given at construction.
	Name() string
	// Timestamp returns the timestamp given at construction.
	Timestamp() time.Time
	// Count returns the number of stored samples.
	Count() int
	// MaxDistance returns the variant-specific farthest distance.
	MaxDistance() float64
	// Items returns a restartable sequence of the dataset's items.
	Items() iter.Seq[DataItem]
	// Render returns a multi-line report using verb for every number.
	Render(verb string) string
	// String returns a one-line summary.
	String() string
	// Variant identifies the storage representation.
	Variant() format.Variant

	sealed()
}

var (
	_ Dataset = (*PointList)(nil)
	_ Dataset = (*Grid)(nil)
)

// header holds the identity fields common to both variants.
type header struct {
	name string
	ts   time.Time
}

func (h header) Name() string {
	return h.name
}

func (h header) Timestamp() time.Time {
	return h.ts
}

// formatTimestamp is the timestamp rendering used by reports.
func formatTimestamp(ts time.Time) string {
	return ts.Format(time.DateTime)
}

func renderVerb(verb string) string {
	if verb == "" {
		return DefaultRenderVerb
	}

	return verb
}
