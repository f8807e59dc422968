// Package outbox drains finalized sessions to the backend when
// connectivity allows. It owns the upload queue exclusively: the
// progress engine never reads it, and nothing here touches the
// content cache or the session read paths.
package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/lernio/lernio/internal/store"
)

const (
	// DefaultBaseDelay is the wait after the first failed attempt;
	// it doubles per attempt up to DefaultMaxDelay.
	DefaultBaseDelay = 30 * time.Second
	DefaultMaxDelay  = time.Hour
)

// Uploader delivers one queued entry to the backend.
type Uploader interface {
	Upload(ctx context.Context, entry *store.OutboxEntry) error
}

// Result summarizes one drain pass.
type Result struct {
	Uploaded int
	Failed   int
	Pending  int
}

// Drainer walks due entries oldest-first and uploads them, deleting
// acknowledged entries and rescheduling failures with backoff.
type Drainer struct {
	repo      store.OutboxRepo
	uploader  Uploader
	baseDelay time.Duration
	maxDelay  time.Duration
	now       func() time.Time
}

// NewDrainer creates a Drainer with default backoff settings.
func NewDrainer(repo store.OutboxRepo, uploader Uploader) *Drainer {
	return &Drainer{
		repo:      repo,
		uploader:  uploader,
		baseDelay: DefaultBaseDelay,
		maxDelay:  DefaultMaxDelay,
		now:       time.Now,
	}
}

// Drain uploads every due entry once. A failed entry is rescheduled
// and doesn't stop the pass; the first storage error does.
func (d *Drainer) Drain(ctx context.Context) (Result, error) {
	var res Result

	entries, err := d.repo.Due(ctx, d.now(), 0)
	if err != nil {
		return res, fmt.Errorf("load due entries: %w", err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if err := d.uploader.Upload(ctx, entry); err != nil {
			res.Failed++
			next := d.now().Add(d.backoff(entry.Attempts + 1))
			if err := d.repo.RecordFailure(ctx, entry.ID, next); err != nil {
				return res, fmt.Errorf("reschedule entry %d: %w", entry.ID, err)
			}
			continue
		}

		if err := d.repo.Ack(ctx, entry.ID); err != nil {
			return res, fmt.Errorf("ack entry %d: %w", entry.ID, err)
		}
		res.Uploaded++
	}

	res.Pending, err = d.repo.Pending(ctx)
	if err != nil {
		return res, fmt.Errorf("count pending: %w", err)
	}
	return res, nil
}

// backoff returns the delay before the given attempt number.
func (d *Drainer) backoff(attempt int) time.Duration {
	delay := d.baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= d.maxDelay {
			return d.maxDelay
		}
	}
	return delay
}
