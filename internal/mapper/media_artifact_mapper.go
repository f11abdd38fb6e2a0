package mapper

import (
	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/model"
)

type MediaArtifactMapper struct{}

func NewMediaArtifactMapper() *MediaArtifactMapper {
	return &MediaArtifactMapper{}
}

func (m *MediaArtifactMapper) ToEntity(a *model.MediaArtifact) *entity.MediaArtifact {
	if a == nil {
		return nil
	}
	return &entity.MediaArtifact{
		Id:          a.Id,
		InterviewId: a.InterviewId,
		Kind:        entity.ArtifactKind(a.Kind),
		FileName:    a.FileName,
		Width:       a.Width,
		Height:      a.Height,
		FrameRate:   a.FrameRate,
		SampleRate:  a.SampleRate,
		Channels:    a.Channels,
		CreatedAt:   a.CreatedAt,
	}
}

func (m *MediaArtifactMapper) ToModel(a *entity.MediaArtifact) *model.MediaArtifact {
	if a == nil {
		return nil
	}
	return &model.MediaArtifact{
		Id:          a.Id,
		InterviewId: a.InterviewId,
		Kind:        string(a.Kind),
		FileName:    a.FileName,
		Width:       a.Width,
		Height:      a.Height,
		FrameRate:   a.FrameRate,
		SampleRate:  a.SampleRate,
		Channels:    a.Channels,
		CreatedAt:   a.CreatedAt,
	}
}

func (m *MediaArtifactMapper) ToEntities(artifacts []*model.MediaArtifact) []*entity.MediaArtifact {
	entities := make([]*entity.MediaArtifact, len(artifacts))
	for i, a := range artifacts {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
