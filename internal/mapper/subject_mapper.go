package mapper

import (
	"encoding/json"
	"fmt"

	"subject-panel-be/internal/entity"
	"subject-panel-be/internal/model"

	"gorm.io/datatypes"
)

type SubjectMapper struct{}

func NewSubjectMapper() *SubjectMapper {
	return &SubjectMapper{}
}

func (m *SubjectMapper) ToEntity(s *model.Subject) (*entity.Subject, error) {
	if s == nil {
		return nil, nil
	}

	var docs []model.LessonDocument
	if len(s.Lessons) > 0 {
		if err := json.Unmarshal(s.Lessons, &docs); err != nil {
			return nil, fmt.Errorf("failed to decode lessons for subject %s: %w", s.Id, err)
		}
	}

	lessons := make([]entity.Lesson, len(docs))
	for i, doc := range docs {
		lessons[i] = entity.Lesson{
			Id:        doc.Id,
			Title:     doc.Title,
			CreatedAt: doc.CreatedAt,
		}
	}

	return &entity.Subject{
		Id:             s.Id,
		Name:           s.Name,
		NormalizedName: s.NormalizedName,
		Lessons:        lessons,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}, nil
}

func (m *SubjectMapper) ToModel(s *entity.Subject) (*model.Subject, error) {
	if s == nil {
		return nil, nil
	}

	docs := make([]model.LessonDocument, len(s.Lessons))
	for i, lesson := range s.Lessons {
		docs[i] = model.LessonDocument{
			Id:        lesson.Id,
			Title:     lesson.Title,
			CreatedAt: lesson.CreatedAt,
		}
	}

	raw, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lessons for subject %s: %w", s.Id, err)
	}

	return &model.Subject{
		Id:             s.Id,
		Name:           s.Name,
		NormalizedName: s.NormalizedName,
		Lessons:        datatypes.JSON(raw),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}, nil
}

func (m *SubjectMapper) ToEntities(subjects []*model.Subject) ([]*entity.Subject, error) {
	entities := make([]*entity.Subject, len(subjects))
	for i, s := range subjects {
		e, err := m.ToEntity(s)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
