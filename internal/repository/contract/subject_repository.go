package contract

import (
	"context"

	"subject-panel-be/internal/entity"
	"subject-panel-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubjectRepository interface {
	// Create inserts the subject with its embedded lessons. The caller is
	// responsible for having checked that the normalized name is unused;
	// the store does not re-check.
	Create(ctx context.Context, subject *entity.Subject) error

	// AppendLessons filters titles against the subject's current lessons
	// (by normalized title), appends the survivors with fresh ids, and
	// persists only when at least one lesson was added. Titles must already
	// be normalized. Returns (nil, nil) when the subject does not exist.
	AppendLessons(ctx context.Context, id uuid.UUID, titles []string) (*entity.Subject, error)

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subject, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subject, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
