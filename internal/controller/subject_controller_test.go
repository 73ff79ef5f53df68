package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"subject-panel-be/internal/dto"
	"subject-panel-be/internal/entity"
	"subject-panel-be/internal/pkg/serverutils"
	"subject-panel-be/internal/repository/contract"
	"subject-panel-be/internal/repository/memory"
	"subject-panel-be/internal/repository/specification"
	"subject-panel-be/internal/repository/unitofwork"
	"subject-panel-be/internal/service"
	"subject-panel-be/pkg/textnorm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	subjects []*entity.Subject
}

func (r *stubRepository) Create(ctx context.Context, subject *entity.Subject) error {
	clone := *subject
	r.subjects = append(r.subjects, &clone)
	return nil
}

func (r *stubRepository) AppendLessons(ctx context.Context, id uuid.UUID, titles []string) (*entity.Subject, error) {
	for _, subject := range r.subjects {
		if subject.Id == id {
			subject.MergeLessons(titles, time.Now(), textnorm.Key)
			clone := *subject
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subject, error) {
	for _, subject := range r.subjects {
		ok := true
		for _, spec := range specs {
			if s, isKey := spec.(specification.ByNormalizedName); isKey && subject.NormalizedName != s.Key {
				ok = false
			}
		}
		if ok {
			clone := *subject
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subject, error) {
	result := make([]*entity.Subject, 0, len(r.subjects))
	for i := len(r.subjects) - 1; i >= 0; i-- {
		clone := *r.subjects[i]
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.subjects)), nil
}

type stubUnitOfWork struct {
	repo contract.SubjectRepository
}

func (u *stubUnitOfWork) Begin(ctx context.Context) error               { return nil }
func (u *stubUnitOfWork) Commit() error                                 { return nil }
func (u *stubUnitOfWork) Rollback() error                               { return nil }
func (u *stubUnitOfWork) SubjectRepository() contract.SubjectRepository { return u.repo }

type stubFactory struct {
	repo contract.SubjectRepository
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &stubUnitOfWork{repo: f.repo}
}

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, payload []byte) error { return nil }

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestApp() *fiber.App {
	repo := &stubRepository{}
	svc := service.NewSubjectService(
		&stubFactory{repo: repo},
		nopPublisher{},
		memory.NewSubjectListCache(time.Minute),
		nopLogger{},
	)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nopLogger{}))
	NewSubjectController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func postSubjects(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/subjects", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeUpsert(t *testing.T, resp *http.Response) dto.UpsertSubjectResponse {
	t.Helper()
	var res dto.UpsertSubjectResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestPostSubjectsCreateThenMerge(t *testing.T) {
	app := newTestApp()

	resp := postSubjects(t, app, `{"name":"Math","lessons":["Algebra"]}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decodeUpsert(t, resp)
	assert.True(t, created.IsNew)
	require.Len(t, created.Subject.Lessons, 1)

	resp = postSubjects(t, app, `{"name":"math","lessons":["Algebra","Geometry"]}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	merged := decodeUpsert(t, resp)
	assert.False(t, merged.IsNew)
	assert.Equal(t, created.Subject.Id, merged.Subject.Id)
	require.Len(t, merged.Subject.Lessons, 2)
	assert.Equal(t, "Algebra", merged.Subject.Lessons[0].Title)
	assert.Equal(t, "Geometry", merged.Subject.Lessons[1].Title)
	assert.False(t, merged.Subject.UpdatedAt.Before(created.Subject.UpdatedAt))
}

func TestPostSubjectsValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty name", body: `{"name":"","lessons":["x"]}`},
		{name: "no lessons", body: `{"name":"Math","lessons":[]}`},
		{name: "all lessons blank", body: `{"name":"Math","lessons":["","   "]}`},
		{name: "malformed json", body: `{"name":`},
		{name: "lesson not a string", body: `{"name":"Math","lessons":[42]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			resp := postSubjects(t, app, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var res serverutils.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
			assert.NotEmpty(t, res.Message)
		})
	}
}

func TestGetSubjectsListsNewestFirst(t *testing.T) {
	app := newTestApp()

	postSubjects(t, app, `{"name":"Math","lessons":["Algebra"]}`)
	postSubjects(t, app, `{"name":"History","lessons":["Rome"]}`)

	req := httptest.NewRequest(http.MethodGet, "/api/subjects", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res dto.ListSubjectsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Len(t, res.Subjects, 2)
	assert.Equal(t, "History", res.Subjects[0].Name)
	assert.Equal(t, "Math", res.Subjects[1].Name)
}
