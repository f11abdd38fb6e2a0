package analysis

import "math"

const (
	scoreFloor   = 10.0
	scoreCeiling = 100.0

	emotionBase = 80.0
	// emotionRawMin/Max span every reachable raw value; the affine map
	// below projects that span onto the reporting scale.
	emotionRawMin = -50.0
	emotionRawMax = 160.0
)

// EmotionScore converts per-category averages into a 10..100 score.
// Calm and positive categories add, negative ones subtract, and both an
// excess of surprise and an overwhelming neutral share are penalized.
func EmotionScore(averages map[string]float64) float64 {
	raw := emotionBase
	raw += math.Min(averages["neutral"], 50) * 0.4
	raw += math.Min(averages["happy"], 30) * 0.3
	raw -= averages["disgust"] * 0.3
	raw -= averages["angry"] * 0.3
	raw -= averages["sad"] * 0.3
	raw -= averages["fear"] * 0.2
	raw -= math.Max(0, averages["surprise"]-5) * 0.1
	raw -= math.Max(0, averages["neutral"]-85) * 0.2

	normalized := scoreFloor + (raw-emotionRawMin)/(emotionRawMax-emotionRawMin)*(scoreCeiling-scoreFloor)
	return clampScore(normalized)
}

// PostureScore starts every candidate at 80 and charges each bad bucket
// proportionally to its share of frames.
func PostureScore(badPosePct, badNeckPct, badShoulderPct float64) float64 {
	score := 80 - (badPosePct*0.30 + badNeckPct*0.20 + badShoulderPct*0.20)
	if score < scoreFloor {
		return scoreFloor
	}
	return score
}

// GazeStatistics reduces a movement series to avg/min/max. Gaze is reported
// as raw displacement statistics rather than folded into a single score.
func GazeStatistics(movements []float64) (avg, min, max float64) {
	if len(movements) == 0 {
		return 0, 0, 0
	}

	min = movements[0]
	max = movements[0]
	var sum float64
	for _, m := range movements {
		sum += m
		if m < min {
			min = m
		}
		if m > max {
			max = m
		}
	}
	return sum / float64(len(movements)), min, max
}

func clampScore(v float64) float64 {
	if v < scoreFloor {
		return scoreFloor
	}
	if v > scoreCeiling {
		return scoreCeiling
	}
	return v
}
