package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/quizbank/quizbank-backend/internal/domain"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
	"github.com/quizbank/quizbank-backend/internal/utils"
)

// SQLiteService is the local single-file backend used when no Postgres is
// reachable, so the study tool still works offline.
type SQLiteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLiteService(log *logger.Logger) (*SQLiteService, error) {
	serviceLog := log.With("service", "SQLiteService")

	path := utils.GetEnv("SQLITE_PATH", "quizbank.db", log)

	serviceLog.Info("opening sqlite database", "path", path)
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}
	return &SQLiteService{db: gdb, log: serviceLog}, nil
}

func (s *SQLiteService) DB() *gorm.DB { return s.db }

func (s *SQLiteService) AutoMigrateAll() error {
	s.log.Info("auto migrating sqlite tables")
	return s.db.AutoMigrate(
		&domain.Topic{},
		&domain.Question{},
		&domain.APIKeySet{},
	)
}
