package db

import (
	"gorm.io/gorm"

	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
)

// Service is what the app wiring needs from either backend.
type Service interface {
	DB() *gorm.DB
	AutoMigrateAll() error
}

// Open connects to Postgres and degrades to the local sqlite file when the
// remote store is unavailable. Record-level semantics are last write wins on
// either backend.
func Open(log *logger.Logger) (Service, error) {
	pg, err := NewPostgresService(log)
	if err == nil {
		return pg, nil
	}
	log.Warn("postgres unavailable, falling back to sqlite", "error", err)
	return NewSQLiteService(log)
}
