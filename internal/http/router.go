package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/quizbank/quizbank-backend/internal/http/handlers"
	httpMW "github.com/quizbank/quizbank-backend/internal/http/middleware"
)

type RouterConfig struct {
	HealthHandler   *httpH.HealthHandler
	TopicHandler    *httpH.TopicHandler
	ImportHandler   *httpH.ImportHandler
	ScanHandler     *httpH.ScanHandler
	APIKeyHandler   *httpH.APIKeyHandler
	PracticeHandler *httpH.PracticeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	api.Use(httpMW.RequireUser())
	{
		if cfg.TopicHandler != nil {
			api.GET("/topics", cfg.TopicHandler.ListTopics)
			api.POST("/topics", cfg.TopicHandler.CreateTopic)
			api.PATCH("/topics/:id", cfg.TopicHandler.RenameTopic)
			api.DELETE("/topics/:id", cfg.TopicHandler.DeleteTopic)
			api.PATCH("/questions/:id", cfg.TopicHandler.UpdateQuestion)
			api.DELETE("/questions/:id", cfg.TopicHandler.DeleteQuestion)
		}
		if cfg.ImportHandler != nil {
			api.POST("/import", cfg.ImportHandler.Import)
		}
		if cfg.ScanHandler != nil {
			api.POST("/scan", cfg.ScanHandler.ScanPage)
		}
		if cfg.APIKeyHandler != nil {
			api.GET("/api-keys", cfg.APIKeyHandler.GetKeys)
			api.PUT("/api-keys", cfg.APIKeyHandler.SaveKeys)
		}
		if cfg.PracticeHandler != nil {
			api.POST("/practice/check", cfg.PracticeHandler.CheckAnswer)
			api.POST("/questions/:id/explain", cfg.PracticeHandler.Explain)
		}
	}

	return r
}
