package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"listing_sync/internal/domain"
	"listing_sync/internal/service"
)

type description struct {
	Endpoint    string `json:"endpoint"`
	Method      string `json:"method"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Auth        string `json:"auth"`
	Source      string `json:"source"`
	Target      string `json:"target"`
}

var (
	agentsDescription = description{
		Endpoint:    "/sync/agents",
		Method:      http.MethodPost,
		Description: "Syncs agents from Airtable into the agents table. Matches by airtable_id, then by email.",
		Status:      "ready",
		Auth:        "Authorization: Bearer <SYNC_SECRET_TOKEN> when a secret is configured",
		Source:      "Airtable agents table",
		Target:      "agents",
	}
	propertiesDescription = description{
		Endpoint:    "/sync/properties",
		Method:      http.MethodPost,
		Description: "Syncs properties from Airtable into the properties table. Matches by airtable_id.",
		Status:      "ready",
		Auth:        "Authorization: Bearer <SYNC_SECRET_TOKEN> when a secret is configured",
		Source:      "Airtable properties table",
		Target:      "properties",
	}
	fullDescription = description{
		Endpoint:    "/sync/full",
		Method:      http.MethodPost,
		Description: "Runs the agents sync, then the properties sync. Stops if the agents sync fails.",
		Status:      "ready",
		Auth:        "Authorization: Bearer <SYNC_SECRET_TOKEN> when a secret is configured",
		Source:      "Airtable",
		Target:      "agents, properties",
	}
)

func describe(d description) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, d)
	}
}

// SyncAgents handles POST /sync/agents.
func (h *Handler) SyncAgents(c *gin.Context) {
	h.runStage(c, domain.EntityAgents, h.agents)
}

// SyncProperties handles POST /sync/properties.
func (h *Handler) SyncProperties(c *gin.Context) {
	h.runStage(c, domain.EntityProperties, h.properties)
}

func (h *Handler) runStage(c *gin.Context, entity string, syncer EntitySyncer) {
	result, err := syncer.Sync(c.Request.Context())
	report := service.StageReportFor(entity, result, err)
	if !report.Success {
		h.logger.Error("stage failed", "entity", entity, "error", err)
		c.JSON(http.StatusInternalServerError, report)
		return
	}

	c.JSON(http.StatusOK, report)
}

// SyncFull handles POST /sync/full. The stages are reached over HTTP with
// the caller's bearer token.
func (h *Handler) SyncFull(c *gin.Context) {
	client := NewStageClient(h.cfg.BaseURL, bearerToken(c.GetHeader("Authorization")), h.httpClient)
	full := service.NewFullSync(client, h.logger)

	result, err := full.Run(c.Request.Context())
	if err != nil {
		var stageErr *service.StageError
		if errors.As(err, &stageErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to sync " + stageErr.Stage,
				"details": stageErr.Report,
			})
			return
		}

		h.logger.Error("full sync failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Full sync completed",
		"results": result,
	})
}

// Migrate handles POST /sync/migrate. A missing column is a normal answer,
// not a server error.
func (h *Handler) Migrate(c *gin.Context) {
	report, err := h.migrator.Check(c.Request.Context())
	if err != nil {
		h.logger.Error("migration check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}
