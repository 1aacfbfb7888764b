package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is one multiple-choice record. Options is a jsonb array of up to
// four strings with no two entries equal under case-insensitive comparison.
type Question struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	TopicID uuid.UUID `gorm:"type:uuid;column:topic_id;index" json:"topic_id"`

	No       string `gorm:"column:no" json:"no,omitempty"`
	Question string `gorm:"column:question;type:text;not null" json:"question"`

	Options datatypes.JSON `gorm:"column:options;type:jsonb" json:"options"`

	CorrectAnswer string `gorm:"column:correct_answer;not null" json:"correct_answer"`
	Explanation   string `gorm:"column:explanation;type:text" json:"explanation,omitempty"`

	// Topic holds the resolved topic name at import time. TopicID is the
	// persisted grouping; the name travels with the record so re-assignment
	// is a plain field update.
	Topic string `gorm:"column:topic;index" json:"topic"`

	// PageNo is the source page the question was scanned from. Preserved
	// verbatim through every transformation once set.
	PageNo string `gorm:"column:page_no" json:"page_no,omitempty"`

	SortIndex int `gorm:"column:sort_index;not null;default:0" json:"sort_index"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Question) TableName() string { return "question" }

// OptionList decodes the jsonb options column. A nil or malformed column
// decodes to an empty slice, never an error.
func (q *Question) OptionList() []string {
	if q == nil || len(q.Options) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(q.Options, &out); err != nil {
		return []string{}
	}
	return out
}

func (q *Question) SetOptionList(opts []string) {
	if opts == nil {
		opts = []string{}
	}
	raw, _ := json.Marshal(opts)
	q.Options = datatypes.JSON(raw)
}
