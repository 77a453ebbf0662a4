package geo

import (
	"math"

	"github.com/lintang-b-s/skiproute/pkg"
	"github.com/lintang-b-s/skiproute/pkg/util"
)

// Grid describes the bounded square [0,Edge]x[0,Edge] the traveler moves
// on, together with the travel speed. All travel-time bounds are derived
// from these two values alone.
type Grid struct {
	edge          int
	speed         float64
	minAxisOffset int
}

func NewGrid(edge int, speed float64, minAxisOffset int) Grid {
	return Grid{
		edge:          edge,
		speed:         speed,
		minAxisOffset: minAxisOffset,
	}
}

func DefaultGrid() Grid {
	return NewGrid(pkg.DEFAULT_EDGE, pkg.DEFAULT_SPEED, pkg.DEFAULT_MIN_AXIS_OFFSET)
}

func (g Grid) GetEdge() int {
	return g.edge
}

func (g Grid) GetSpeed() float64 {
	return g.speed
}

func (g Grid) GetMinAxisOffset() int {
	return g.minAxisOffset
}

func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x <= g.edge && y >= 0 && y <= g.edge
}

// TravelTime is the time to cover the offset (dx, dy) at grid speed.
func (g Grid) TravelTime(dx, dy int) float64 {
	time := math.Sqrt(float64(dx*dx+dy*dy)) / g.speed
	if pkg.DEBUG {
		util.AssertPanic(util.Abs(dx) <= g.edge && util.Abs(dy) <= g.edge, "travel offset outside grid")
		util.AssertPanic(!math.IsNaN(time), "travel time is NaN")
		util.AssertPanic(time >= 0 && time <= g.TimeMaxGlobal(), "travel time outside theoretical bounds")
	}
	return time
}

// AxisOffsetMin is the smallest per-axis offset any in-grid point can
// have to coordinate x, clamped to minAxisOffset. The clamp (default 1)
// keeps the derived lower bound strictly informative; it assumes
// checkpoint positions are distinct. Set minAxisOffset to 0 for the
// unclamped theoretical bound.
func (g Grid) AxisOffsetMin(x int) int {
	return util.MaxInt(g.minAxisOffset, util.MinInt(g.edge-x, x))
}

// AxisOffsetMax is the largest per-axis offset any in-grid point can
// have to coordinate x.
func (g Grid) AxisOffsetMax(x int) int {
	return util.MaxInt(g.edge-x, x)
}

// TimeMin bounds from below the travel time from any in-grid point to
// (x, y), up to the distinct-position assumption of the clamp.
func (g Grid) TimeMin(x, y int) float64 {
	return g.TravelTime(g.AxisOffsetMin(x), g.AxisOffsetMin(y))
}

// TimeMax bounds from above the travel time from any in-grid point to (x, y).
func (g Grid) TimeMax(x, y int) float64 {
	return g.TravelTime(g.AxisOffsetMax(x), g.AxisOffsetMax(y))
}

// TimeMaxGlobal is the theoretical maximum travel time between any two
// in-grid points (the diagonal). Debug assertions check against this,
// not the tighter per-point bounds.
func (g Grid) TimeMaxGlobal() float64 {
	return float64(g.edge) * math.Sqrt2 / g.speed
}

// TimeMinUpperBound is the largest value TimeMin can take over the whole
// grid. Used to stop prune sweeps early.
func (g Grid) TimeMinUpperBound() float64 {
	off := util.MaxInt(g.minAxisOffset, g.edge/2)
	return math.Sqrt(float64(2*off*off)) / g.speed
}
