package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lesson is created only through a subject create or append and is never
// retitled or deleted afterwards.
type Lesson struct {
	Id        uuid.UUID
	Title     string
	CreatedAt time.Time
}

// Subject owns its lessons. NormalizedName is the derived lookup key;
// Name keeps the casing of the first submission.
type Subject struct {
	Id             uuid.UUID
	Name           string
	NormalizedName string
	Lessons        []Lesson
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MergeLessons appends every title whose normalized form is not already on
// the subject, stamping the survivors with fresh ids and createdAt=now.
// Existing lesson order is never reshuffled; survivors go at the end in
// submission order. UpdatedAt is bumped only when something was added, so an
// all-duplicates merge leaves the subject byte-for-byte unchanged.
// Titles must already be normalized.
func (s *Subject) MergeLessons(titles []string, now time.Time, keyFn func(string) string) int {
	existing := make(map[string]struct{}, len(s.Lessons))
	for _, lesson := range s.Lessons {
		existing[keyFn(lesson.Title)] = struct{}{}
	}

	added := 0
	for _, title := range titles {
		if _, ok := existing[keyFn(title)]; ok {
			continue
		}
		s.Lessons = append(s.Lessons, Lesson{
			Id:        uuid.New(),
			Title:     title,
			CreatedAt: now,
		})
		added++
	}

	if added > 0 {
		s.UpdatedAt = now
	}
	return added
}
