package mapper

import (
	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/model"

	"gorm.io/datatypes"
)

type MetricMapper struct{}

func NewMetricMapper() *MetricMapper {
	return &MetricMapper{}
}

func (m *MetricMapper) ToEmotionEntity(e *model.EmotionMetric) *entity.EmotionMetric {
	if e == nil {
		return nil
	}
	// JSONMap round-trips numbers as float64, other types are dropped
	averages := make(map[string]float64, len(e.Averages))
	for k, v := range e.Averages {
		if f, ok := v.(float64); ok {
			averages[k] = f
		}
	}
	return &entity.EmotionMetric{
		Id:          e.Id,
		InterviewId: e.InterviewId,
		Averages:    averages,
		Score:       e.Score,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *MetricMapper) ToEmotionModel(e *entity.EmotionMetric) *model.EmotionMetric {
	if e == nil {
		return nil
	}
	averages := make(datatypes.JSONMap, len(e.Averages))
	for k, v := range e.Averages {
		averages[k] = v
	}
	return &model.EmotionMetric{
		Id:          e.Id,
		InterviewId: e.InterviewId,
		Averages:    averages,
		Score:       e.Score,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *MetricMapper) ToPostureEntity(p *model.PostureMetric) *entity.PostureMetric {
	if p == nil {
		return nil
	}
	return &entity.PostureMetric{
		Id:             p.Id,
		InterviewId:    p.InterviewId,
		GoodPosePct:    p.GoodPosePct,
		BadNeckPct:     p.BadNeckPct,
		BadShoulderPct: p.BadShoulderPct,
		BadPosePct:     p.BadPosePct,
		Score:          p.Score,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *MetricMapper) ToPostureModel(p *entity.PostureMetric) *model.PostureMetric {
	if p == nil {
		return nil
	}
	return &model.PostureMetric{
		Id:             p.Id,
		InterviewId:    p.InterviewId,
		GoodPosePct:    p.GoodPosePct,
		BadNeckPct:     p.BadNeckPct,
		BadShoulderPct: p.BadShoulderPct,
		BadPosePct:     p.BadPosePct,
		Score:          p.Score,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *MetricMapper) ToGazeEntity(g *model.GazeMetric) *entity.GazeMetric {
	if g == nil {
		return nil
	}
	return &entity.GazeMetric{
		Id:          g.Id,
		InterviewId: g.InterviewId,
		AvgMovement: g.AvgMovement,
		MinMovement: g.MinMovement,
		MaxMovement: g.MaxMovement,
		CreatedAt:   g.CreatedAt,
	}
}

func (m *MetricMapper) ToGazeModel(g *entity.GazeMetric) *model.GazeMetric {
	if g == nil {
		return nil
	}
	return &model.GazeMetric{
		Id:          g.Id,
		InterviewId: g.InterviewId,
		AvgMovement: g.AvgMovement,
		MinMovement: g.MinMovement,
		MaxMovement: g.MaxMovement,
		CreatedAt:   g.CreatedAt,
	}
}
