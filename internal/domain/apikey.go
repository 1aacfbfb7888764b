package domain

import (
	"time"

	"github.com/google/uuid"
)

// APIKeySet stores the per-user LLM provider keys. Opaque to the ingestion
// pipeline; only the explanation and scan collaborators read it.
type APIKeySet struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`

	OpenAIKey  string `gorm:"column:openai_key" json:"openai_key,omitempty"`
	GeminiKey  string `gorm:"column:gemini_key" json:"gemini_key,omitempty"`
	AIProvider string `gorm:"column:ai_provider;not null;default:'openai'" json:"ai_provider"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (APIKeySet) TableName() string { return "api_key_set" }
