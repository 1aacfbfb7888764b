package app

import (
	"gorm.io/gorm"

	httpH "github.com/quizbank/quizbank-backend/internal/http/handlers"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Topic    *httpH.TopicHandler
	Import   *httpH.ImportHandler
	Scan     *httpH.ScanHandler
	APIKey   *httpH.APIKeyHandler
	Practice *httpH.PracticeHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, reposet Repos, serviceset Services) Handlers {
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Topic:    httpH.NewTopicHandler(log, db, reposet.Topics),
		Import:   httpH.NewImportHandler(log, serviceset.Importer),
		Scan:     httpH.NewScanHandler(log, serviceset.Scanner),
		APIKey:   httpH.NewAPIKeyHandler(log, db, reposet.APIKeys),
		Practice: httpH.NewPracticeHandler(log, serviceset.Explain),
	}
}
