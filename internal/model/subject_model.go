package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Subject rows embed their lessons as a JSON document instead of a separate
// table, so a create is one insert and an append is one row update.
//
// normalized_name carries a plain (non-unique) index: uniqueness is enforced
// by lookup-before-insert in the service, and concurrent first submissions of
// the same name can therefore produce duplicate rows.
type Subject struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name           string         `gorm:"type:varchar(255);not null"`
	NormalizedName string         `gorm:"type:varchar(255);not null;index"`
	Lessons        datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time
}

func (Subject) TableName() string {
	return "subjects"
}

// LessonDocument is the shape of a single lesson inside the embedded JSON
// lessons array.
type LessonDocument struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
