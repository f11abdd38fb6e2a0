package analysis

import "math"

// Posture buckets. Every observed frame lands in exactly one.
const (
	bucketGoodPose    = "good_pose"
	bucketBadNeck     = "bad_neck"
	bucketBadShoulder = "bad_shoulder"
	bucketBadPose     = "bad_pose"
)

const (
	// shoulderCenterTolerancePx bounds how far the shoulder midpoint may
	// drift from the horizontal frame center.
	shoulderCenterTolerancePx = 10.0
	// neckAngleMinDeg..neckAngleMaxDeg is the acceptable band for the
	// nose-to-shoulder-midpoint angle.
	neckAngleMinDeg = 80.0
	neckAngleMaxDeg = 100.0
)

type postureAccumulator struct {
	counts      map[string]int
	totalFrames int
}

func newPostureAccumulator() *postureAccumulator {
	return &postureAccumulator{
		counts: make(map[string]int),
	}
}

// observe classifies one frame. Missing landmarks count as bad_pose so the
// four buckets always cover every frame.
func (a *postureAccumulator) observe(lm PoseLandmarks, frameWidth, frameHeight int, ok bool) {
	a.totalFrames++
	if !ok || !lm.Detected {
		a.counts[bucketBadPose]++
		return
	}

	midX := (lm.LeftShoulder.X + lm.RightShoulder.X) / 2 * float64(frameWidth)
	midY := (lm.LeftShoulder.Y + lm.RightShoulder.Y) / 2 * float64(frameHeight)
	centered := math.Abs(midX-float64(frameWidth)/2) <= shoulderCenterTolerancePx

	noseX := lm.Nose.X * float64(frameWidth)
	noseY := lm.Nose.Y * float64(frameHeight)
	angle := math.Abs(math.Atan2(midY-noseY, midX-noseX) * 180 / math.Pi)
	neckOk := angle >= neckAngleMinDeg && angle <= neckAngleMaxDeg

	switch {
	case centered && neckOk:
		a.counts[bucketGoodPose]++
	case centered && !neckOk:
		a.counts[bucketBadNeck]++
	case !centered && neckOk:
		a.counts[bucketBadShoulder]++
	default:
		a.counts[bucketBadPose]++
	}
}

// percentages returns the share of each bucket; the values sum to 100 for
// any non-empty recording.
func (a *postureAccumulator) percentages() (goodPose, badNeck, badShoulder, badPose float64) {
	if a.totalFrames == 0 {
		return 0, 0, 0, 0
	}
	total := float64(a.totalFrames)
	goodPose = float64(a.counts[bucketGoodPose]) / total * 100
	badNeck = float64(a.counts[bucketBadNeck]) / total * 100
	badShoulder = float64(a.counts[bucketBadShoulder]) / total * 100
	badPose = float64(a.counts[bucketBadPose]) / total * 100
	return
}
