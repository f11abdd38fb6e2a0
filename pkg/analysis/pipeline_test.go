package analysis

import (
	"context"
	"errors"
	"io"
	"testing"

	"mock-interview-be/pkg/capture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	frames int
	served int
	width  int
	height int
}

func (r *fakeReader) ReadFrame() (*capture.Frame, error) {
	if r.served >= r.frames {
		return nil, io.EOF
	}
	r.served++
	return &capture.Frame{
		Data:   make([]byte, r.width*r.height*3),
		Width:  r.width,
		Height: r.height,
	}, nil
}

func (r *fakeReader) Close() error { return nil }

type fakeReaderFactory struct {
	frames  int
	openErr error
}

func (f *fakeReaderFactory) OpenVideo(path string) (FrameReader, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return &fakeReader{frames: f.frames, width: 640, height: 480}, nil
}

type fakeEmotions struct {
	scores EmotionScores
	err    error
}

func (f *fakeEmotions) ClassifyEmotion(ctx context.Context, frame *capture.Frame) (EmotionScores, error) {
	return f.scores, f.err
}

type fakePoses struct {
	landmarks PoseLandmarks
	err       error
}

func (f *fakePoses) EstimatePose(ctx context.Context, frame *capture.Frame) (PoseLandmarks, error) {
	return f.landmarks, f.err
}

type fakeFaces struct {
	eyes []EyeLandmarks
	call int
	err  error
}

func (f *fakeFaces) DetectEyes(ctx context.Context, frame *capture.Frame) (EyeLandmarks, error) {
	if f.err != nil {
		return EyeLandmarks{}, f.err
	}
	if len(f.eyes) == 0 {
		return EyeLandmarks{}, nil
	}
	eyes := f.eyes[f.call%len(f.eyes)]
	f.call++
	return eyes, nil
}

// centeredPose returns landmarks whose shoulder midpoint sits on the frame
// center with the nose straight above it (angle 90 degrees).
func centeredPose() PoseLandmarks {
	return PoseLandmarks{
		Detected:      true,
		Nose:          Point{X: 0.5, Y: 0.3},
		LeftShoulder:  Point{X: 0.4, Y: 0.6},
		RightShoulder: Point{X: 0.6, Y: 0.6},
	}
}

func TestAnalyzeAllGoodPose(t *testing.T) {
	p := NewPipeline(
		&fakeReaderFactory{frames: 10},
		&fakeEmotions{scores: EmotionScores{"neutral": 60, "happy": 10}},
		&fakePoses{landmarks: centeredPose()},
		&fakeFaces{},
	)

	report, err := p.Analyze(context.Background(), "any.mp4")
	require.NoError(t, err)

	assert.Equal(t, 10, report.FrameCount)
	assert.InDelta(t, 100.0, report.Posture.GoodPosePct, 0.001)
	assert.InDelta(t, 80.0, report.Posture.Score, 0.001)
	assert.InDelta(t, 60.0, report.Emotion.Averages["neutral"], 0.001)
}

func TestAnalyzeZeroFrames(t *testing.T) {
	p := NewPipeline(&fakeReaderFactory{frames: 0}, &fakeEmotions{}, &fakePoses{}, &fakeFaces{})

	_, err := p.Analyze(context.Background(), "empty.mp4")
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestAnalyzeOpenErrorPassesThrough(t *testing.T) {
	boom := errors.New("cannot open")
	p := NewPipeline(&fakeReaderFactory{openErr: boom}, &fakeEmotions{}, &fakePoses{}, &fakeFaces{})

	_, err := p.Analyze(context.Background(), "missing.mp4")
	assert.ErrorIs(t, err, boom)
}

func TestAnalyzePosturePercentagesSumTo100(t *testing.T) {
	// Pose estimation fails on every frame, so everything is bad_pose
	p := NewPipeline(
		&fakeReaderFactory{frames: 7},
		&fakeEmotions{err: errors.New("no face")},
		&fakePoses{err: errors.New("no landmarks")},
		&fakeFaces{err: errors.New("no mesh")},
	)

	report, err := p.Analyze(context.Background(), "any.mp4")
	require.NoError(t, err)

	sum := report.Posture.GoodPosePct + report.Posture.BadNeckPct +
		report.Posture.BadShoulderPct + report.Posture.BadPosePct
	assert.InDelta(t, 100.0, sum, 0.001)
	assert.InDelta(t, 100.0, report.Posture.BadPosePct, 0.001)
	assert.InDelta(t, 50.0, report.Posture.Score, 0.001)
}

func TestAnalyzeEmotionFailuresDilute(t *testing.T) {
	// Classification fails on every frame: averages stay empty and the
	// score reduces to the neutral-free baseline.
	p := NewPipeline(
		&fakeReaderFactory{frames: 5},
		&fakeEmotions{err: errors.New("detector down")},
		&fakePoses{landmarks: centeredPose()},
		&fakeFaces{},
	)

	report, err := p.Analyze(context.Background(), "any.mp4")
	require.NoError(t, err)
	assert.Empty(t, report.Emotion.Averages)
	assert.InDelta(t, EmotionScore(map[string]float64{}), report.Emotion.Score, 0.001)
}

func TestAnalyzeGazeMovement(t *testing.T) {
	// Eye centroids shift by 0.1 in x each frame: every consecutive pair
	// contributes movement 0.1.
	eyes := make([]EyeLandmarks, 4)
	for i := range eyes {
		x := 0.3 + float64(i)*0.1
		eyes[i] = EyeLandmarks{
			Detected: true,
			Left:     []Point{{X: x, Y: 0.4}},
			Right:    []Point{{X: x + 0.2, Y: 0.4}},
		}
	}

	p := NewPipeline(
		&fakeReaderFactory{frames: 4},
		&fakeEmotions{},
		&fakePoses{landmarks: centeredPose()},
		&fakeFaces{eyes: eyes},
	)

	report, err := p.Analyze(context.Background(), "any.mp4")
	require.NoError(t, err)

	assert.InDelta(t, 0.1, report.Gaze.AvgMovement, 0.0001)
	assert.InDelta(t, 0.1, report.Gaze.MinMovement, 0.0001)
	assert.InDelta(t, 0.1, report.Gaze.MaxMovement, 0.0001)
}

func TestAnalyzeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(&fakeReaderFactory{frames: 100}, &fakeEmotions{}, &fakePoses{}, &fakeFaces{})
	_, err := p.Analyze(ctx, "any.mp4")
	assert.ErrorIs(t, err, context.Canceled)
}
