package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lernio/lernio/ent"
	"github.com/lernio/lernio/ent/outboxentry"
)

// outboxRepo implements OutboxRepo using the ent client.
type outboxRepo struct {
	client *ent.Client
}

func (r *outboxRepo) Enqueue(ctx context.Context, entry *OutboxEntry) error {
	_, err := r.client.OutboxEntry.Create().
		SetSessionID(entry.SessionID).
		SetUserID(entry.UserID).
		SetUnitID(entry.UnitID).
		SetPayload(entry.Payload).
		SetNextAttemptAt(entry.NextAttemptAt).
		Save(ctx)
	if err != nil {
		// The session_id column is unique; a duplicate enqueue of the
		// same finalized session is not an error.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("enqueue outbox entry: %w", err)
	}
	return nil
}

func (r *outboxRepo) Due(ctx context.Context, now time.Time, limit int) ([]*OutboxEntry, error) {
	q := r.client.OutboxEntry.Query().
		Where(outboxentry.NextAttemptAtLTE(now)).
		Order(ent.Asc(outboxentry.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due outbox entries: %w", err)
	}

	entries := make([]*OutboxEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &OutboxEntry{
			ID:            row.ID,
			SessionID:     row.SessionID,
			UserID:        row.UserID,
			UnitID:        row.UnitID,
			Payload:       row.Payload,
			Attempts:      row.Attempts,
			NextAttemptAt: row.NextAttemptAt,
			CreatedAt:     row.CreatedAt,
		})
	}
	return entries, nil
}

func (r *outboxRepo) RecordFailure(ctx context.Context, id int, nextAttemptAt time.Time) error {
	err := r.client.OutboxEntry.UpdateOneID(id).
		AddAttempts(1).
		SetNextAttemptAt(nextAttemptAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record outbox failure: %w", err)
	}
	return nil
}

func (r *outboxRepo) Ack(ctx context.Context, id int) error {
	err := r.client.OutboxEntry.DeleteOneID(id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("ack outbox entry: %w", err)
	}
	return nil
}

func (r *outboxRepo) Pending(ctx context.Context) (int, error) {
	count, err := r.client.OutboxEntry.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count outbox entries: %w", err)
	}
	return count, nil
}
