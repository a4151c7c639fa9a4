package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"listing_sync/internal/domain"
)

// StageError is returned when a stage reports success=false.
type StageError struct {
	Stage  string
	Report *domain.StageReport
}

func (e *StageError) Error() string {
	if e.Report != nil && e.Report.Error != "" {
		return fmt.Sprintf("failed to sync %s: %s", e.Stage, e.Report.Error)
	}
	return "failed to sync " + e.Stage
}

// FullSync runs the agents stage, then the properties stage. Properties may
// reference agents, so a failed agents stage stops the run.
type FullSync struct {
	stages StageRunner
	logger *slog.Logger
}

func NewFullSync(stages StageRunner, logger *slog.Logger) *FullSync {
	return &FullSync{
		stages: stages,
		logger: logger.With("component", "full_sync"),
	}
}

func (f *FullSync) Run(ctx context.Context) (*domain.FullSyncResult, error) {
	startTime := time.Now()
	f.logger.Info("starting full sync")

	agents, err := f.stages.SyncAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("run agents stage: %w", err)
	}
	if !agents.Success {
		f.logger.Error("agents stage failed, skipping properties", "error", agents.Error)
		return nil, &StageError{Stage: domain.EntityAgents, Report: agents}
	}

	properties, err := f.stages.SyncProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("run properties stage: %w", err)
	}
	if !properties.Success {
		f.logger.Error("properties stage failed", "error", properties.Error)
		return nil, &StageError{Stage: domain.EntityProperties, Report: properties}
	}

	f.logger.Info("full sync completed", "duration", time.Since(startTime))

	return &domain.FullSyncResult{
		Agents:     agents.Results,
		Properties: properties.Results,
	}, nil
}

// LocalStages runs both stages in process.
type LocalStages struct {
	Agents     *AgentSync
	Properties *PropertySync
}

func (l LocalStages) SyncAgents(ctx context.Context) (*domain.StageReport, error) {
	result, err := l.Agents.Sync(ctx)
	return StageReportFor(domain.EntityAgents, result, err), nil
}

func (l LocalStages) SyncProperties(ctx context.Context) (*domain.StageReport, error) {
	result, err := l.Properties.Sync(ctx)
	return StageReportFor(domain.EntityProperties, result, err), nil
}

// StageReportFor wraps the outcome of a stage into the endpoint envelope.
func StageReportFor(entity string, result *domain.SyncResult, err error) *domain.StageReport {
	if err != nil {
		return &domain.StageReport{Success: false, Error: err.Error()}
	}
	return &domain.StageReport{
		Success: true,
		Message: fmt.Sprintf("%s sync completed: %d created, %d updated, %d errors",
			entity, result.Created, result.Updated, result.Errors),
		Results: result,
	}
}
