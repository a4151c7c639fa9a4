package service

import (
	"context"
	"fmt"
	"log/slog"

	"listing_sync/internal/domain"
)

const (
	agentsTable   = "agents"
	linkageColumn = "airtable_id"

	addLinkageColumnSQL = "ALTER TABLE agents ADD COLUMN IF NOT EXISTS airtable_id TEXT UNIQUE;"
)

// Migrator checks that agents.airtable_id exists. It never runs DDL: when
// the column is missing it hands back the statement for an operator.
type Migrator struct {
	schema SchemaInspector
	logger *slog.Logger
}

func NewMigrator(schema SchemaInspector, logger *slog.Logger) *Migrator {
	return &Migrator{
		schema: schema,
		logger: logger.With("component", "migrator"),
	}
}

func (m *Migrator) Check(ctx context.Context) (*domain.MigrationReport, error) {
	exists, err := m.schema.HasColumn(ctx, agentsTable, linkageColumn)
	if err != nil {
		return nil, fmt.Errorf("inspect %s.%s: %w", agentsTable, linkageColumn, err)
	}

	if exists {
		m.logger.Info("linkage column present", "table", agentsTable, "column", linkageColumn)
		return &domain.MigrationReport{
			Success:        true,
			AlreadyApplied: true,
			Message:        "Migration already applied: agents.airtable_id exists",
		}, nil
	}

	m.logger.Warn("linkage column missing, manual migration required", "table", agentsTable, "column", linkageColumn)

	return &domain.MigrationReport{
		Success: false,
		Message: "agents.airtable_id is missing. Run the SQL below manually, then call this endpoint again.",
		SQL:     addLinkageColumnSQL,
		Instructions: []string{
			"Open the SQL editor of the database project.",
			"Run: " + addLinkageColumnSQL,
			"Confirm the column exists on the agents table.",
			"Run POST /sync/migrate again to verify, then POST /sync/agents.",
		},
	}, nil
}
