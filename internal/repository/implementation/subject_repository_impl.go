package implementation

import (
	"context"
	"errors"
	"time"

	"subject-panel-be/internal/entity"
	"subject-panel-be/internal/mapper"
	"subject-panel-be/internal/model"
	"subject-panel-be/internal/repository/contract"
	"subject-panel-be/internal/repository/specification"
	"subject-panel-be/pkg/textnorm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubjectMapper
}

func NewSubjectRepository(db *gorm.DB) contract.SubjectRepository {
	return &SubjectRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubjectMapper(),
	}
}

func (r *SubjectRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubjectRepositoryImpl) Create(ctx context.Context, subject *entity.Subject) error {
	m, err := r.mapper.ToModel(subject)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	e, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*subject = *e
	return nil
}

func (r *SubjectRepositoryImpl) AppendLessons(ctx context.Context, id uuid.UUID, titles []string) (*entity.Subject, error) {
	subject, err := r.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, nil
	}

	// All titles already present: no write, updated_at stays untouched.
	if added := subject.MergeLessons(titles, time.Now(), textnorm.Key); added == 0 {
		return subject, nil
	}

	m, err := r.mapper.ToModel(subject)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m)
}

func (r *SubjectRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subject, error) {
	var m model.Subject
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *SubjectRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subject, error) {
	var models []*model.Subject
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *SubjectRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subject{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
