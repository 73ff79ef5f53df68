package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"subject-panel-be/internal/dto"
	"subject-panel-be/internal/entity"
	"subject-panel-be/internal/pkg/logger"
	"subject-panel-be/internal/pkg/serverutils"
	"subject-panel-be/internal/repository/memory"
	"subject-panel-be/internal/repository/specification"
	"subject-panel-be/internal/repository/unitofwork"
	"subject-panel-be/pkg/textnorm"

	"github.com/google/uuid"
)

const (
	ActionSubjectCreated  = "created"
	ActionLessonsAppended = "lessons_appended"
)

type ISubjectService interface {
	GetAll(ctx context.Context) (*dto.ListSubjectsResponse, error)
	Upsert(ctx context.Context, req *dto.UpsertSubjectRequest) (*dto.UpsertSubjectResponse, error)
}

type subjectService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	listCache        *memory.SubjectListCache
	log              logger.ILogger
}

func NewSubjectService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	listCache *memory.SubjectListCache,
	log logger.ILogger,
) ISubjectService {
	return &subjectService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		listCache:        listCache,
		log:              log,
	}
}

func (s *subjectService) GetAll(ctx context.Context) (*dto.ListSubjectsResponse, error) {
	if subjects, ok := s.listCache.Get(); ok {
		return toListResponse(subjects), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	subjects, err := uow.SubjectRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	s.listCache.Set(subjects)
	return toListResponse(subjects), nil
}

// Upsert runs the submit flow: validate, normalize, look up by derived name
// key, then create a new subject or merge lessons into the existing one.
// Resubmitting a subject whose lessons are all already present is a
// successful no-op, not an error.
func (s *subjectService) Upsert(ctx context.Context, req *dto.UpsertSubjectRequest) (*dto.UpsertSubjectResponse, error) {
	name := strings.TrimSpace(req.Name)
	titles := textnorm.Titles(req.Lessons)
	if name == "" || len(titles) == 0 {
		return nil, serverutils.NewInvalidPayloadError("Provide a subject name and at least one valid lesson.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SubjectRepository()

	existing, err := repo.FindOne(ctx, specification.ByNormalizedName{Key: textnorm.Key(name)})
	if err != nil {
		return nil, err
	}

	if existing == nil {
		now := time.Now()
		subject := entity.Subject{
			Id:             uuid.New(),
			Name:           name,
			NormalizedName: textnorm.Key(name),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		for _, title := range titles {
			subject.Lessons = append(subject.Lessons, entity.Lesson{
				Id:        uuid.New(),
				Title:     title,
				CreatedAt: now,
			})
		}

		if err := repo.Create(ctx, &subject); err != nil {
			return nil, err
		}

		s.listCache.Invalidate()
		s.publishActivity(ctx, subject.Id, ActionSubjectCreated, len(subject.Lessons))

		return &dto.UpsertSubjectResponse{
			Subject: toSubjectResponse(&subject),
			IsNew:   true,
		}, nil
	}

	updated, err := repo.AppendLessons(ctx, existing.Id, titles)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// The subject vanished between lookup and append. Anomalous but
		// reachable under concurrent deletion outside this service.
		return nil, serverutils.NewNotFoundError("Subject no longer exists.")
	}

	added := len(updated.Lessons) - len(existing.Lessons)
	if added > 0 {
		s.listCache.Invalidate()
		s.publishActivity(ctx, updated.Id, ActionLessonsAppended, added)
	}

	return &dto.UpsertSubjectResponse{
		Subject: toSubjectResponse(updated),
		IsNew:   false,
	}, nil
}

// publishActivity feeds the audit trail. A bus failure never fails the
// request that triggered it.
func (s *subjectService) publishActivity(ctx context.Context, subjectId uuid.UUID, action string, lessonCount int) {
	msg := dto.SubjectActivityMessage{
		SubjectId:   subjectId,
		Action:      action,
		LessonCount: lessonCount,
	}
	payload, err := json.Marshal(msg)
	if err == nil {
		err = s.publisherService.Publish(ctx, payload)
	}
	if err != nil {
		s.log.Warn("subject", "Failed to publish subject activity", map[string]interface{}{
			"subject_id": subjectId.String(),
			"action":     action,
			"error":      err.Error(),
		})
	}
}

func toSubjectResponse(subject *entity.Subject) *dto.SubjectResponse {
	lessons := make([]dto.LessonResponse, len(subject.Lessons))
	for i, lesson := range subject.Lessons {
		lessons[i] = dto.LessonResponse{
			Id:        lesson.Id,
			Title:     lesson.Title,
			CreatedAt: lesson.CreatedAt,
		}
	}

	return &dto.SubjectResponse{
		Id:        subject.Id,
		Name:      subject.Name,
		Lessons:   lessons,
		CreatedAt: subject.CreatedAt,
		UpdatedAt: subject.UpdatedAt,
	}
}

func toListResponse(subjects []*entity.Subject) *dto.ListSubjectsResponse {
	result := make([]*dto.SubjectResponse, len(subjects))
	for i, subject := range subjects {
		result[i] = toSubjectResponse(subject)
	}
	return &dto.ListSubjectsResponse{Subjects: result}
}
