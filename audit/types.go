package audit

import (
	"errors"
	"math"
)

// ErrEdgeTooLong indicates the post-solve re-check found a tour edge
// exceeding the adjacency bound, catching a router acceptance bug
// before it reaches a mission file.
var ErrEdgeTooLong = errors.New("audit: tour edge exceeds adjacency bound")

// Histogram bins turn angles into three buckets centered at pi/4, pi/2,
// and 3pi/4, each with half-width pi/8.
type Histogram struct {
	QuarterTurns      int // angle in [pi/4 - pi/8, pi/4 + pi/8)
	RightAngleTurns   int // angle in [pi/2 - pi/8, pi/2 + pi/8)
	ThreeQuarterTurns int // angle in [3pi/4 - pi/8, 3pi/4 + pi/8)
}

var (
	binQuarter      = math.Pi / 4
	binRight        = math.Pi / 2
	binThreeQuarter = 3 * math.Pi / 4
	binHalfWidth    = math.Pi / 8
)

func (h *Histogram) add(theta float64) {
	switch {
	case theta >= binQuarter-binHalfWidth && theta < binQuarter+binHalfWidth:
		h.QuarterTurns++
	case theta >= binRight-binHalfWidth && theta < binRight+binHalfWidth:
		h.RightAngleTurns++
	case theta >= binThreeQuarter-binHalfWidth && theta < binThreeQuarter+binHalfWidth:
		h.ThreeQuarterTurns++
	}
}

// Stats is the result of walking one agent's tour.
type Stats struct {
	TotalDistance float64
	TotalTurn     float64
	Histogram     Histogram
}
