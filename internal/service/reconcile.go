package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"listing_sync/internal/domain"
)

// reconciler holds what the agent and property stages share: the
// per-record transaction, the change publisher and the outcome bookkeeping.
type reconciler struct {
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

// upsertFunc looks the record up and writes it. It reports whether a new
// row was inserted.
type upsertFunc func(ctx context.Context) (created bool, err error)

// apply runs one record inside its own transaction and records the
// outcome. It never returns an error: failures end up in result.
func (r *reconciler) apply(ctx context.Context, result *domain.SyncResult, externalID, name string, upsert upsertFunc, event func() domain.RecordEvent) {
	var created bool
	err := r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		created, err = upsert(txCtx)
		return err
	})
	if err != nil {
		r.logger.Warn("record failed",
			"external_id", externalID,
			"name", name,
			"error", err,
		)
		result.Record(externalID, name, domain.ActionError, err)
		return
	}

	action := domain.ActionUpdated
	if created {
		action = domain.ActionCreated
	}
	result.Record(externalID, name, action, nil)

	r.logger.Debug("record synced", "external_id", externalID, "action", action)

	if r.publisher == nil {
		return
	}
	ev := event()
	ev.Action = action
	ev.Timestamp = time.Now().UTC()
	if err := r.publisher.Publish(ctx, ev); err != nil {
		r.logger.Warn("publish failed", "external_id", externalID, "error", err)
		return
	}
	result.Published++
}

func newID() string {
	return uuid.NewString()
}
