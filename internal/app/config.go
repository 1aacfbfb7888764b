package app

import (
	"github.com/quizbank/quizbank-backend/internal/ingest"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
	"github.com/quizbank/quizbank-backend/internal/utils"
)

type Config struct {
	ListenAddr string
	Import     ingest.ImportOptions
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		ListenAddr: utils.GetEnv("LISTEN_ADDR", ":8080", log),
		Import: ingest.ImportOptions{
			StrictAnswers: utils.GetEnvAsInt("IMPORT_STRICT_ANSWERS", 0, log) != 0,
		},
	}
}
