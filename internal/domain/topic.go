package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Topic is a named, ordered collection of questions. The ingestion pipeline
// only ever appends to an existing topic; deletion is a user operation.
type Topic struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;column:user_id;index" json:"user_id"`

	Name string `gorm:"column:name;not null" json:"name"`

	Questions []*Question `gorm:"foreignKey:TopicID;references:ID" json:"questions,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Topic) TableName() string { return "topic" }
