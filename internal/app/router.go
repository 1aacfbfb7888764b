package app

import (
	qhttp "github.com/quizbank/quizbank-backend/internal/http"
)

func wireRouter(handlerset Handlers) *qhttp.Server {
	return qhttp.NewServer(qhttp.RouterConfig{
		HealthHandler:   handlerset.Health,
		TopicHandler:    handlerset.Topic,
		ImportHandler:   handlerset.Import,
		ScanHandler:     handlerset.Scan,
		APIKeyHandler:   handlerset.APIKey,
		PracticeHandler: handlerset.Practice,
	})
}
