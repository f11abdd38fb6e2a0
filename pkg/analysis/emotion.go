package analysis

// emotionAccumulator keeps running sums of per-frame emotion confidences.
// Frames where classification fails are still counted in the denominator,
// dragging averages toward zero rather than inflating them.
type emotionAccumulator struct {
	sums        map[string]float64
	totalFrames int
}

func newEmotionAccumulator() *emotionAccumulator {
	return &emotionAccumulator{
		sums: make(map[string]float64),
	}
}

func (a *emotionAccumulator) observe(scores EmotionScores, ok bool) {
	a.totalFrames++
	if !ok {
		return
	}
	for category, value := range scores {
		a.sums[category] += value
	}
}

func (a *emotionAccumulator) averages() map[string]float64 {
	averages := make(map[string]float64, len(a.sums))
	if a.totalFrames == 0 {
		return averages
	}
	for category, sum := range a.sums {
		averages[category] = sum / float64(a.totalFrames)
	}
	return averages
}
