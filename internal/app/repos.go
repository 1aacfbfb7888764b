package app

import (
	"gorm.io/gorm"

	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
	"github.com/quizbank/quizbank-backend/internal/repos"
)

type Repos struct {
	Topics  repos.TopicRepo
	APIKeys repos.APIKeyRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Topics:  repos.NewTopicRepo(db, log),
		APIKeys: repos.NewAPIKeyRepo(db, log),
	}
}
