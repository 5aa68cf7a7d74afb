package dataset

import (
	"math"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/arloliu/vecfield/format"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

func identityField(x, y float64) Vector2 {
	return Vector2{X: float32(x), Y: float32(y)}
}

func TestNewPointList(t *testing.T) {
	p := NewPointList("Raptor", epoch)

	require.Equal(t, "Raptor", p.Name())
	require.Equal(t, epoch, p.Timestamp())
	require.Equal(t, 0, p.Count())
	require.Equal(t, format.VariantPointList, p.Variant())
	require.Zero(t, p.MaxDistance())
	require.Empty(t, slices.Collect(p.Items()))
}

func TestPointList_Add_Dedup(t *testing.T) {
	p := NewPointList("dedup", epoch)

	require.True(t, p.Add(NewDataItem(0, 0, Vector2{X: 1})))
	require.True(t, p.Add(NewDataItem(1, 0, Vector2{X: 2})))
	require.False(t, p.Add(NewDataItem(0, 0, Vector2{X: 3})), "same position must be rejected")
	require.False(t, p.Add(NewDataItem(1e-50, 0, Vector2{})), "reduced-precision equal must be rejected")

	require.Equal(t, 2, p.Count())
	// rejected insert leaves the first item untouched
	require.Equal(t, float32(1), p.At(0).E.X)
}

func TestPointList_Add_NoDuplicatePositions(t *testing.T) {
	p := NewPointList("many", epoch)

	positions := []float64{0, 1, 2, 1, 0, 3, 2, 4}
	added := 0
	for _, x := range positions {
		existed := slices.ContainsFunc(p.Slice(), func(d DataItem) bool { return d.X == x })
		ok := p.Add(NewDataItem(x, x*2, Vector2{}))
		require.Equal(t, !existed, ok, "x=%v", x)
		if ok {
			added++
		}
	}

	require.Equal(t, 5, added)
	items := p.Slice()
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			require.False(t, items[i].SamePosition(items[j]))
		}
	}
}

func TestPointList_MaxDistance(t *testing.T) {
	p := NewPointList("triangle", epoch)
	p.Add(NewDataItem(0, 0, Vector2{}))
	require.Zero(t, p.MaxDistance(), "single item")

	p.Add(NewDataItem(3, 0, Vector2{}))
	require.Equal(t, 3.0, p.MaxDistance())

	p.Add(NewDataItem(0, 4, Vector2{}))
	require.Equal(t, 5.0, p.MaxDistance())
}

func TestPointList_AddDefaults(t *testing.T) {
	p := NewPointList("defaults", epoch)

	n := p.AddDefaults(4, identityField)
	require.Equal(t, 4, n)
	require.Equal(t, 4, p.Count())

	// x accumulates i*step: 0.1, 0.3, 0.6, 1.0
	wantX := []float64{0.1, 0.3, 0.6, 1.0}
	for i, item := range p.Slice() {
		require.InDelta(t, wantX[i], item.X, 1e-12)
		require.InDelta(t, item.X*item.X/3, item.Y, 1e-12)
		require.Equal(t, float32(item.X), item.E.X)
		require.Equal(t, float32(item.Y), item.E.Y)
	}

	// A second batch starts at Count()*step = 0.4
	n = p.AddDefaults(1, identityField)
	require.Equal(t, 1, n)
	require.InDelta(t, 0.5, p.At(4).X, 1e-12)
}

func TestPointList_AddDefaults_Collision(t *testing.T) {
	p := NewPointList("collide", epoch)

	// Reproduce the first generated position for a list holding two items.
	x := float64(2) * DefaultStep
	x += float64(1) * DefaultStep
	require.True(t, p.Add(NewDataItem(x, x*x/3, Vector2{})))
	require.True(t, p.Add(NewDataItem(100, 100, Vector2{})))

	n := p.AddDefaults(2, identityField)
	require.Equal(t, 1, n, "the sample at the taken position is dropped")
	require.Equal(t, 3, p.Count())
}

func TestPointList_AddDefaults_Invalid(t *testing.T) {
	p := NewPointList("invalid", epoch)

	require.Zero(t, p.AddDefaults(3, nil))
	require.Zero(t, p.AddDefaults(0, identityField))
	require.Zero(t, p.AddDefaults(-2, identityField))
	require.Zero(t, p.Count())
}

func TestPointList_Items_Restartable(t *testing.T) {
	p := NewPointList("iter", epoch)
	p.AddDefaults(3, identityField)

	first := slices.Collect(p.Items())
	second := slices.Collect(p.Items())
	require.Equal(t, first, second)
	require.Len(t, first, 3)

	// Slice is a copy
	s := p.Slice()
	s[0].X = math.Inf(1)
	require.NotEqual(t, s[0].X, p.At(0).X)
}

func TestPointList_Render(t *testing.T) {
	p := NewPointList("Raptor", epoch)
	p.Add(NewDataItem(0, 0, Vector2{X: 3, Y: 4}))
	p.Add(NewDataItem(3, 4, Vector2{X: 0, Y: 1}))

	out := p.Render("%g")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "PointList,Raptor,0001-01-01 00:00:00,2,5", lines[0])
	require.Equal(t, " x=0 y=0 Ex=3 Ey=4 |E|=5", lines[1])
	require.Equal(t, " x=3 y=4 Ex=0 Ey=1 |E|=1", lines[2])

	require.Equal(t, out, p.Render(""), "empty verb falls back to %v")
}
