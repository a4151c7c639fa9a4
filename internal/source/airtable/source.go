package airtable

import (
	"context"
	"log/slog"

	"listing_sync/internal/domain"
)

// TableConfig names an Airtable table and optional list filters.
type TableConfig struct {
	Name          string
	View          string
	FilterFormula string
	MaxRecords    int
}

func (t TableConfig) listOptions() ListOptions {
	return ListOptions{
		View:          t.View,
		FilterFormula: t.FilterFormula,
		MaxRecords:    t.MaxRecords,
	}
}

// Source reads agents and properties from one Airtable base.
type Source struct {
	client     *Client
	agents     TableConfig
	properties TableConfig
	logger     *slog.Logger
}

func NewSource(client *Client, agents, properties TableConfig, logger *slog.Logger) *Source {
	return &Source{
		client:     client,
		agents:     agents,
		properties: properties,
		logger:     logger.With("source", "airtable"),
	}
}

// FetchAgents fetches and decodes every agent record.
func (s *Source) FetchAgents(ctx context.Context) ([]domain.ExternalAgent, error) {
	records, err := s.client.ListRecords(ctx, s.agents.Name, s.agents.listOptions())
	if err != nil {
		return nil, err
	}

	agents := make([]domain.ExternalAgent, 0, len(records))
	for _, r := range records {
		agents = append(agents, DecodeAgent(r))
	}

	s.logger.Info("fetched agents", "table", s.agents.Name, "count", len(agents))
	return agents, nil
}

// FetchProperties fetches and decodes every property record.
func (s *Source) FetchProperties(ctx context.Context) ([]domain.ExternalProperty, error) {
	records, err := s.client.ListRecords(ctx, s.properties.Name, s.properties.listOptions())
	if err != nil {
		return nil, err
	}

	properties := make([]domain.ExternalProperty, 0, len(records))
	for _, r := range records {
		properties = append(properties, DecodeProperty(r))
	}

	s.logger.Info("fetched properties", "table", s.properties.Name, "count", len(properties))
	return properties, nil
}
