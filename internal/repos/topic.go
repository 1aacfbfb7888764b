package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/quizbank/quizbank-backend/internal/domain"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
)

type TopicRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*domain.Topic) ([]*domain.Topic, error)

	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Topic, error)
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*domain.Topic, error)

	Rename(ctx context.Context, tx *gorm.DB, id uuid.UUID, name string) error

	// AppendQuestions merges an import batch into an existing topic. New
	// questions go after the current tail; nothing already stored is
	// touched or deduplicated against.
	AppendQuestions(ctx context.Context, tx *gorm.DB, topicID uuid.UUID, questions []*domain.Question) error

	UpdateQuestion(ctx context.Context, tx *gorm.DB, row *domain.Question) error
	DeleteQuestionsByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error

	SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type topicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicRepo(db *gorm.DB, baseLog *logger.Logger) TopicRepo {
	return &topicRepo{db: db, log: baseLog.With("repo", "TopicRepo")}
}

func (r *topicRepo) Create(ctx context.Context, tx *gorm.DB, rows []*domain.Topic) ([]*domain.Topic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*domain.Topic{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *topicRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*domain.Topic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*domain.Topic
	if err := t.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_index ASC")
		}).
		Where("id = ?", id).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *topicRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*domain.Topic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Topic
	if err := t.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_index ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *topicRepo) Rename(ctx context.Context, tx *gorm.DB, id uuid.UUID, name string) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil || name == "" {
		return nil
	}
	return t.WithContext(ctx).
		Model(&domain.Topic{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *topicRepo) AppendQuestions(ctx context.Context, tx *gorm.DB, topicID uuid.UUID, questions []*domain.Question) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if topicID == uuid.Nil || len(questions) == 0 {
		return nil
	}

	var tail int64
	if err := t.WithContext(ctx).
		Model(&domain.Question{}).
		Where("topic_id = ?", topicID).
		Count(&tail).Error; err != nil {
		return err
	}

	for i, q := range questions {
		q.TopicID = topicID
		q.SortIndex = int(tail) + i
	}
	return t.WithContext(ctx).Create(&questions).Error
}

func (r *topicRepo) UpdateQuestion(ctx context.Context, tx *gorm.DB, row *domain.Question) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *topicRepo) DeleteQuestionsByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("id IN ?", ids).Delete(&domain.Question{}).Error
}

func (r *topicRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	if err := t.WithContext(ctx).Where("topic_id IN ?", ids).Delete(&domain.Question{}).Error; err != nil {
		return err
	}
	return t.WithContext(ctx).Where("id IN ?", ids).Delete(&domain.Topic{}).Error
}

func (r *topicRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	if err := t.WithContext(ctx).Unscoped().Where("topic_id IN ?", ids).Delete(&domain.Question{}).Error; err != nil {
		return err
	}
	return t.WithContext(ctx).Unscoped().Where("id IN ?", ids).Delete(&domain.Topic{}).Error
}
