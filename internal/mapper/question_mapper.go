package mapper

import (
	"mock-interview-be/internal/entity"
	"mock-interview-be/internal/model"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}
	return &entity.Question{
		Id:           q.Id,
		SubmissionId: q.SubmissionId,
		Position:     q.Position,
		Content:      q.Content,
		IsCommon:     q.IsCommon,
		CreatedAt:    q.CreatedAt,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}
	return &model.Question{
		Id:           q.Id,
		SubmissionId: q.SubmissionId,
		Position:     q.Position,
		Content:      q.Content,
		IsCommon:     q.IsCommon,
		CreatedAt:    q.CreatedAt,
	}
}

func (m *QuestionMapper) ToEntities(questions []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, len(questions))
	for i, q := range questions {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
