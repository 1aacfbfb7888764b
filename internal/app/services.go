package app

import (
	"gorm.io/gorm"

	"github.com/quizbank/quizbank-backend/internal/clients/openai"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
	"github.com/quizbank/quizbank-backend/internal/services"
)

type Services struct {
	Importer services.ImportService
	Scanner  services.ScanService
	Explain  services.ExplainService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	ai, err := openai.NewClient(log)
	if err != nil {
		return Services{}, err
	}

	importer := services.NewImportService(db, log, reposet.Topics, cfg.Import)
	return Services{
		Importer: importer,
		Scanner:  services.NewScanService(log, ai, reposet.APIKeys, importer),
		Explain:  services.NewExplainService(log, ai, reposet.APIKeys, reposet.Topics),
	}, nil
}
