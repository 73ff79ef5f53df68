package unitofwork

import (
	"context"

	"subject-panel-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SubjectRepository() contract.SubjectRepository
}
