package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"listing_sync/internal/domain"
	"listing_sync/internal/mapper"
)

// PropertySync copies the Airtable Properties table into the properties table.
type PropertySync struct {
	source     PropertySource
	properties PropertyStore
	reconciler
}

func NewPropertySync(
	source PropertySource,
	properties PropertyStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *PropertySync {
	return &PropertySync{
		source:     source,
		properties: properties,
		reconciler: reconciler{
			txManager: txManager,
			publisher: publisher,
			logger:    logger.With("entity", domain.EntityProperties),
		},
	}
}

func (s *PropertySync) Sync(ctx context.Context) (*domain.SyncResult, error) {
	startTime := time.Now()
	s.logger.Info("starting sync")

	external, err := s.source.FetchProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch properties: %w", err)
	}

	s.logger.Info("fetched properties from source", "count", len(external))

	agentIDs, err := s.agentIDMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("build agent id map: %w", err)
	}

	result := domain.NewSyncResult(domain.EntityProperties, len(external))

	for _, ext := range external {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("properties sync interrupted after %d of %d: %w", len(result.Details), len(external), err)
		}

		property := mapper.MapProperty(ext, agentIDs)
		s.apply(ctx, result, ext.ID, property.Title,
			func(ctx context.Context) (bool, error) {
				return s.upsert(ctx, &property)
			},
			func() domain.RecordEvent {
				return domain.RecordEvent{
					Entity:     domain.EntityProperties,
					ID:         property.ID,
					AirtableID: ext.ID,
					Slug:       property.Slug,
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

// agentIDMap should map Airtable agent IDs to internal agent IDs. It is
// intentionally empty for now, so every property is stored without an agent.
// TODO: load airtable_id -> id pairs from the agents table once the
// linkage strategy for pre-existing agents is confirmed, then re-sync
// properties.
func (s *PropertySync) agentIDMap(_ context.Context) (map[string]string, error) {
	return map[string]string{}, nil
}

func (s *PropertySync) upsert(ctx context.Context, property *domain.Property) (bool, error) {
	id, found, err := s.properties.FindIDByAirtableID(ctx, *property.AirtableID)
	if err != nil {
		return false, fmt.Errorf("lookup by airtable_id: %w", err)
	}

	if found {
		property.ID = id
		if err := s.properties.Update(ctx, property); err != nil {
			return false, fmt.Errorf("update property: %w", err)
		}
		return false, nil
	}

	property.ID = newID()
	if err := s.properties.Insert(ctx, property); err != nil {
		return false, fmt.Errorf("insert property: %w", err)
	}
	return true, nil
}
