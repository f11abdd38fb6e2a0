package analysis

import (
	"context"
	"io"
)

// EmotionReport is the aggregated emotion outcome for one video.
type EmotionReport struct {
	Averages map[string]float64
	Score    float64
}

type PostureReport struct {
	GoodPosePct    float64
	BadNeckPct     float64
	BadShoulderPct float64
	BadPosePct     float64
	Score          float64
}

type GazeReport struct {
	AvgMovement float64
	MinMovement float64
	MaxMovement float64
}

// Report bundles all three metric families for one analyzed video.
type Report struct {
	FrameCount int
	Emotion    EmotionReport
	Posture    PostureReport
	Gaze       GazeReport
}

// Pipeline walks a video frame by frame and feeds each frame to the three
// analyzers. One decode pass serves all metrics.
type Pipeline struct {
	readers  ReaderFactory
	emotions EmotionClassifier
	poses    PoseEstimator
	faces    FaceMeshEstimator
}

func NewPipeline(readers ReaderFactory, emotions EmotionClassifier, poses PoseEstimator, faces FaceMeshEstimator) *Pipeline {
	return &Pipeline{
		readers:  readers,
		emotions: emotions,
		poses:    poses,
		faces:    faces,
	}
}

func (p *Pipeline) Analyze(ctx context.Context, videoPath string) (*Report, error) {
	reader, err := p.readers.OpenVideo(videoPath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	emotionAcc := newEmotionAccumulator()
	postureAcc := newPostureAccumulator()
	gazeAcc := newGazeAccumulator()

	frameCount := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		frame, err := reader.ReadFrame()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		frameCount++

		scores, cerr := p.emotions.ClassifyEmotion(ctx, frame)
		emotionAcc.observe(scores, cerr == nil)

		landmarks, perr := p.poses.EstimatePose(ctx, frame)
		postureAcc.observe(landmarks, frame.Width, frame.Height, perr == nil)

		eyes, ferr := p.faces.DetectEyes(ctx, frame)
		gazeAcc.observe(eyes, ferr == nil)
	}

	if frameCount == 0 {
		return nil, ErrNoFrames
	}

	averages := emotionAcc.averages()
	goodPose, badNeck, badShoulder, badPose := postureAcc.percentages()
	avg, min, max := gazeAcc.statistics()

	return &Report{
		FrameCount: frameCount,
		Emotion: EmotionReport{
			Averages: averages,
			Score:    EmotionScore(averages),
		},
		Posture: PostureReport{
			GoodPosePct:    goodPose,
			BadNeckPct:     badNeck,
			BadShoulderPct: badShoulder,
			BadPosePct:     badPose,
			Score:          PostureScore(badPose, badNeck, badShoulder),
		},
		Gaze: GazeReport{
			AvgMovement: avg,
			MinMovement: min,
			MaxMovement: max,
		},
	}, nil
}
