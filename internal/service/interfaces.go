package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"listing_sync/internal/domain"
)

type AgentSource interface {
	FetchAgents(ctx context.Context) ([]domain.ExternalAgent, error)
}

type PropertySource interface {
	FetchProperties(ctx context.Context) ([]domain.ExternalProperty, error)
}

// AgentStore lookups return found=false, not an error, when no row matches.
type AgentStore interface {
	FindIDByAirtableID(ctx context.Context, airtableID string) (id string, found bool, err error)
	FindIDByEmail(ctx context.Context, email string) (id string, found bool, err error)
	Insert(ctx context.Context, agent *domain.Agent) error
	Update(ctx context.Context, agent *domain.Agent) error
}

type PropertyStore interface {
	FindIDByAirtableID(ctx context.Context, airtableID string) (id string, found bool, err error)
	Insert(ctx context.Context, property *domain.Property) error
	Update(ctx context.Context, property *domain.Property) error
}

type SchemaInspector interface {
	HasColumn(ctx context.Context, table, column string) (bool, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.RecordEvent) error
	Close() error
}

// StageRunner runs a single sync stage and returns its report. A report with
// Success=false is a stage failure; a non-nil error means the stage could
// not be invoked at all.
type StageRunner interface {
	SyncAgents(ctx context.Context) (*domain.StageReport, error)
	SyncProperties(ctx context.Context) (*domain.StageReport, error)
}
