package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"villastay/internal/infra/config"
	"villastay/internal/infra/obs"
)

type SessionHTTP interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	Select(c *gin.Context)
	Duration(c *gin.Context)
	Mode(c *gin.Context)
	Clear(c *gin.Context)
	Confirm(c *gin.Context)
	Grid(c *gin.Context)
}

type VillaHTTP interface {
	Calendar(c *gin.Context)
}

type Handlers struct {
	Session SessionHTTP
	Villa   VillaHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Idempotency-Key"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Session != nil {
		api.POST("/villas/:id/sessions", h.Session.Create)
		api.GET("/sessions/:id", h.Session.Get)
		api.POST("/sessions/:id/select", h.Session.Select)
		api.POST("/sessions/:id/duration", h.Session.Duration)
		api.POST("/sessions/:id/mode", h.Session.Mode)
		api.POST("/sessions/:id/clear", h.Session.Clear)
		api.POST("/sessions/:id/confirm", h.Session.Confirm)
		api.GET("/sessions/:id/grid", h.Session.Grid)
	}
	if h.Villa != nil {
		api.GET("/villas/:id/calendar", h.Villa.Calendar)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
