// Package httpapi exposes the sync trigger endpoints.
package httpapi

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"listing_sync/internal/domain"
)

// EntitySyncer runs one sync stage in process.
type EntitySyncer interface {
	Sync(ctx context.Context) (*domain.SyncResult, error)
}

// MigrationChecker reports whether the linkage column exists.
type MigrationChecker interface {
	Check(ctx context.Context) (*domain.MigrationReport, error)
}

type Config struct {
	// BaseURL is used by the full sync to reach the stage endpoints.
	BaseURL      string
	SyncSecret   string
	StageTimeout time.Duration
}

type Handler struct {
	agents     EntitySyncer
	properties EntitySyncer
	migrator   MigrationChecker
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHandler(agents, properties EntitySyncer, migrator MigrationChecker, cfg Config, logger *slog.Logger) *Handler {
	return &Handler{
		agents:     agents,
		properties: properties,
		migrator:   migrator,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.StageTimeout},
		logger:     logger.With("component", "httpapi"),
	}
}

// Router builds the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sync := r.Group("/sync")
	{
		sync.GET("/agents", describe(agentsDescription))
		sync.GET("/properties", describe(propertiesDescription))
		sync.GET("/full", describe(fullDescription))

		protected := sync.Group("", RequireSecret(h.cfg.SyncSecret))
		protected.POST("/agents", h.SyncAgents)
		protected.POST("/properties", h.SyncProperties)
		protected.POST("/full", h.SyncFull)
		protected.POST("/migrate", h.Migrate)
	}

	return r
}

// RequireSecret rejects requests whose bearer token does not match secret.
// An empty secret leaves the routes open.
func RequireSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
			})
			return
		}

		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
