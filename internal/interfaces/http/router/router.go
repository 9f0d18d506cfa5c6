package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ticketera/backend/internal/infrastructure/config"
	"github.com/ticketera/backend/internal/infrastructure/logger"
	"github.com/ticketera/backend/internal/interfaces/http/handler"
	"github.com/ticketera/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// New builds the gin engine with all middleware and routes registered
func New(cfg *config.Config, log *zap.Logger, tickets *handler.TicketHandler) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	r := gin.New()
	r.Use(
		logger.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		group := v1.Group("/tickets")
		{
			group.POST("/print", tickets.Print)
			group.GET("", tickets.ListQueued)
			group.GET("/printers", tickets.ListPrinters)
			group.GET("/formats/:family", tickets.Formats)
			group.GET("/:id", tickets.Get)
			group.PUT("/:id/printed", tickets.MarkPrinted)
		}
	}

	return r
}
