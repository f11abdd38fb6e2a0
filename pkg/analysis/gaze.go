package analysis

import "math"

// gazeAccumulator measures eye stability as the displacement of each eye's
// landmark centroid between consecutive frames, averaged over both eyes.
type gazeAccumulator struct {
	hasPrev   bool
	prevLeft  Point
	prevRight Point
	movements []float64
}

func newGazeAccumulator() *gazeAccumulator {
	return &gazeAccumulator{}
}

func centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point{X: sx / n, Y: sy / n}
}

func distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// observe ingests one frame's eye landmarks. Frames without a detection
// contribute no movement sample; the previous centroids are kept so the next
// detected frame is compared against the last known position.
func (a *gazeAccumulator) observe(eyes EyeLandmarks, ok bool) {
	if !ok || !eyes.Detected || len(eyes.Left) == 0 || len(eyes.Right) == 0 {
		return
	}

	left := centroid(eyes.Left)
	right := centroid(eyes.Right)

	if a.hasPrev {
		movement := (distance(left, a.prevLeft) + distance(right, a.prevRight)) / 2
		a.movements = append(a.movements, movement)
	}

	a.prevLeft = left
	a.prevRight = right
	a.hasPrev = true
}

// statistics returns avg, min and max displacement. With fewer than two
// detected frames there is no movement to report and all three are zero.
func (a *gazeAccumulator) statistics() (avg, min, max float64) {
	return GazeStatistics(a.movements)
}
