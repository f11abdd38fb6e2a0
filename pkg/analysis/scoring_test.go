package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmotionScoreNeutralHappyProfile(t *testing.T) {
	// neutral 50 and happy 20 with nothing negative:
	// raw = 80 + 50*0.4 + 20*0.3 = 106
	// normalized = 10 + (106+50)/210*90
	averages := map[string]float64{
		"neutral": 50,
		"happy":   20,
	}
	assert.InDelta(t, 76.857, EmotionScore(averages), 0.001)
}

func TestEmotionScoreBounds(t *testing.T) {
	worst := map[string]float64{
		"angry":   100,
		"disgust": 100,
		"sad":     100,
		"fear":    100,
	}
	assert.GreaterOrEqual(t, EmotionScore(worst), 10.0)

	best := map[string]float64{
		"neutral": 50,
		"happy":   30,
	}
	assert.LessOrEqual(t, EmotionScore(best), 100.0)
}

func TestEmotionScoreCapsPositiveContributions(t *testing.T) {
	// neutral beyond 50 adds nothing more, and beyond 85 starts costing
	at50 := EmotionScore(map[string]float64{"neutral": 50})
	at80 := EmotionScore(map[string]float64{"neutral": 80})
	at100 := EmotionScore(map[string]float64{"neutral": 100})
	assert.Equal(t, at50, at80)
	assert.Greater(t, at80, at100)

	happy30 := EmotionScore(map[string]float64{"happy": 30})
	happy90 := EmotionScore(map[string]float64{"happy": 90})
	assert.Equal(t, happy30, happy90)
}

func TestEmotionScoreSurpriseGraceBand(t *testing.T) {
	none := EmotionScore(map[string]float64{})
	mild := EmotionScore(map[string]float64{"surprise": 5})
	strong := EmotionScore(map[string]float64{"surprise": 40})
	assert.Equal(t, none, mild)
	assert.Greater(t, mild, strong)
}

func TestEmotionScoreMonotoneInNegatives(t *testing.T) {
	base := map[string]float64{"neutral": 40}
	calm := EmotionScore(base)

	angry := EmotionScore(map[string]float64{"neutral": 40, "angry": 30})
	assert.Less(t, angry, calm)

	angrier := EmotionScore(map[string]float64{"neutral": 40, "angry": 60})
	assert.Less(t, angrier, angry)
}

func TestPostureScoreNoPenalty(t *testing.T) {
	assert.Equal(t, 80.0, PostureScore(0, 0, 0))
}

func TestPostureScoreFloor(t *testing.T) {
	assert.Equal(t, 10.0, PostureScore(100, 100, 100))
}

func TestPostureScoreWeights(t *testing.T) {
	// 50% bad pose costs 15, 50% bad neck costs 10
	assert.InDelta(t, 65.0, PostureScore(50, 0, 0), 0.001)
	assert.InDelta(t, 70.0, PostureScore(0, 50, 0), 0.001)
	assert.InDelta(t, 70.0, PostureScore(0, 0, 50), 0.001)
}

func TestGazeStatistics(t *testing.T) {
	avg, min, max := GazeStatistics([]float64{1, 2, 3})
	assert.InDelta(t, 2.0, avg, 0.001)
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 3.0, max)
}

func TestGazeStatisticsEmpty(t *testing.T) {
	avg, min, max := GazeStatistics(nil)
	assert.Zero(t, avg)
	assert.Zero(t, min)
	assert.Zero(t, max)
}
