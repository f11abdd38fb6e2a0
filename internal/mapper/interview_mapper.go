package mapper

import (
	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/model"
)

type InterviewMapper struct{}

func NewInterviewMapper() *InterviewMapper {
	return &InterviewMapper{}
}

func (m *InterviewMapper) ToEntity(i *model.Interview) *entity.Interview {
	if i == nil {
		return nil
	}
	return &entity.Interview{
		Id:           i.Id,
		SubjectId:    i.SubjectId,
		SubmissionId: i.SubmissionId,
		RoundNumber:  i.RoundNumber,
		CreatedAt:    i.CreatedAt,
	}
}

func (m *InterviewMapper) ToModel(i *entity.Interview) *model.Interview {
	if i == nil {
		return nil
	}
	return &model.Interview{
		Id:           i.Id,
		SubjectId:    i.SubjectId,
		SubmissionId: i.SubmissionId,
		RoundNumber:  i.RoundNumber,
		CreatedAt:    i.CreatedAt,
	}
}

func (m *InterviewMapper) ToEntities(interviews []*model.Interview) []*entity.Interview {
	entities := make([]*entity.Interview, len(interviews))
	for i, iv := range interviews {
		entities[i] = m.ToEntity(iv)
	}
	return entities
}
