package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"listing_sync/internal/domain"
	"listing_sync/internal/mapper"
)

// AgentSync copies the Airtable Agents table into the agents table.
type AgentSync struct {
	source AgentSource
	agents AgentStore
	reconciler
}

func NewAgentSync(
	source AgentSource,
	agents AgentStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *AgentSync {
	return &AgentSync{
		source: source,
		agents: agents,
		reconciler: reconciler{
			txManager: txManager,
			publisher: publisher,
			logger:    logger.With("entity", domain.EntityAgents),
		},
	}
}

// Sync fetches every agent and upserts them one at a time in source order.
// Only a failed fetch returns an error; per-record failures are reported in
// the result.
func (s *AgentSync) Sync(ctx context.Context) (*domain.SyncResult, error) {
	startTime := time.Now()
	s.logger.Info("starting sync")

	external, err := s.source.FetchAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch agents: %w", err)
	}

	s.logger.Info("fetched agents from source", "count", len(external))

	result := domain.NewSyncResult(domain.EntityAgents, len(external))

	for _, ext := range external {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("agents sync interrupted after %d of %d: %w", len(result.Details), len(external), err)
		}

		agent := mapper.MapAgent(ext)
		s.apply(ctx, result, ext.ID, agent.DisplayName(),
			func(ctx context.Context) (bool, error) {
				return s.upsert(ctx, &agent)
			},
			func() domain.RecordEvent {
				return domain.RecordEvent{
					Entity:     domain.EntityAgents,
					ID:         agent.ID,
					AirtableID: ext.ID,
					Slug:       agent.Slug,
				}
			},
		)
	}

	result.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"total", result.Total,
		"created", result.Created,
		"updated", result.Updated,
		"errors", result.Errors,
		"published", result.Published,
		"duration", result.Duration,
	)

	return result, nil
}

// upsert matches on airtable_id first and falls back to email for agents
// created before the linkage column existed.
func (s *AgentSync) upsert(ctx context.Context, agent *domain.Agent) (bool, error) {
	id, found, err := s.agents.FindIDByAirtableID(ctx, *agent.AirtableID)
	if err != nil {
		return false, fmt.Errorf("lookup by airtable_id: %w", err)
	}

	if !found && agent.Email != nil {
		id, found, err = s.agents.FindIDByEmail(ctx, *agent.Email)
		if err != nil {
			return false, fmt.Errorf("lookup by email: %w", err)
		}
	}

	if found {
		agent.ID = id
		if err := s.agents.Update(ctx, agent); err != nil {
			return false, fmt.Errorf("update agent: %w", err)
		}
		return false, nil
	}

	agent.ID = newID()
	if err := s.agents.Insert(ctx, agent); err != nil {
		return false, fmt.Errorf("insert agent: %w", err)
	}
	return true, nil
}
