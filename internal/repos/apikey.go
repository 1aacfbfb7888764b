package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quizbank/quizbank-backend/internal/domain"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
)

type APIKeyRepo interface {
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.APIKeySet, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *domain.APIKeySet) error
}

type apiKeyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAPIKeyRepo(db *gorm.DB, baseLog *logger.Logger) APIKeyRepo {
	return &apiKeyRepo{db: db, log: baseLog.With("repo", "APIKeyRepo")}
}

func (r *apiKeyRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*domain.APIKeySet, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil {
		return nil, nil
	}
	var out []*domain.APIKeySet
	if err := t.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *apiKeyRepo) Upsert(ctx context.Context, tx *gorm.DB, row *domain.APIKeySet) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.UserID == uuid.Nil {
		return nil
	}
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(row).Error
}
