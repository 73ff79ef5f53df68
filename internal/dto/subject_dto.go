package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertSubjectRequest struct {
	Name    string   `json:"name" validate:"required"`
	Lessons []string `json:"lessons"`
}

type LessonResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

type SubjectResponse struct {
	Id        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Lessons   []LessonResponse `json:"lessons"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// UpsertSubjectResponse reports which branch the submission took:
// IsNew is true when a subject was created, false when lessons were merged
// into an existing one (including the all-duplicates no-op).
type UpsertSubjectResponse struct {
	Subject *SubjectResponse `json:"subject"`
	IsNew   bool             `json:"isNew"`
}

type ListSubjectsResponse struct {
	Subjects []*SubjectResponse `json:"subjects"`
}

// SubjectActivityMessage is the payload published on the in-process bus for
// every successful mutation, consumed by the audit log.
type SubjectActivityMessage struct {
	SubjectId   uuid.UUID `json:"subject_id"`
	Action      string    `json:"action"` // "created" | "lessons_appended"
	LessonCount int       `json:"lesson_count"`
}
