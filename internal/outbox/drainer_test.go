package outbox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lernio/lernio/internal/store"
)

type fakeOutboxRepo struct {
	entries map[int]*store.OutboxEntry
	nextID  int
}

func newFakeOutboxRepo() *fakeOutboxRepo {
	return &fakeOutboxRepo{entries: make(map[int]*store.OutboxEntry), nextID: 1}
}

func (f *fakeOutboxRepo) add(sessionID string, nextAttemptAt time.Time) *store.OutboxEntry {
	e := &store.OutboxEntry{
		ID:            f.nextID,
		SessionID:     sessionID,
		Payload:       map[string]any{"session_id": sessionID},
		NextAttemptAt: nextAttemptAt,
		CreatedAt:     time.Now(),
	}
	f.entries[e.ID] = e
	f.nextID++
	return e
}

func (f *fakeOutboxRepo) Enqueue(_ context.Context, _ *store.OutboxEntry) error { return nil }

func (f *fakeOutboxRepo) Due(_ context.Context, now time.Time, _ int) ([]*store.OutboxEntry, error) {
	var due []*store.OutboxEntry
	for _, e := range f.entries {
		if !e.NextAttemptAt.After(now) {
			due = append(due, e)
		}
	}
	return due, nil
}

func (f *fakeOutboxRepo) RecordFailure(_ context.Context, id int, next time.Time) error {
	e, ok := f.entries[id]
	if !ok {
		return errors.New("no such entry")
	}
	e.Attempts++
	e.NextAttemptAt = next
	return nil
}

func (f *fakeOutboxRepo) Ack(_ context.Context, id int) error {
	delete(f.entries, id)
	return nil
}

func (f *fakeOutboxRepo) Pending(_ context.Context) (int, error) {
	return len(f.entries), nil
}

type scriptedUploader struct {
	fail     map[string]bool
	uploaded []string
}

func (u *scriptedUploader) Upload(_ context.Context, entry *store.OutboxEntry) error {
	if u.fail[entry.SessionID] {
		return errors.New("offline")
	}
	u.uploaded = append(u.uploaded, entry.SessionID)
	return nil
}

func TestDrainUploadsAndAcks(t *testing.T) {
	repo := newFakeOutboxRepo()
	past := time.Now().Add(-time.Minute)
	repo.add("s1", past)
	repo.add("s2", past)

	up := &scriptedUploader{}
	d := NewDrainer(repo, up)

	res, err := d.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Uploaded)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, 0, res.Pending)
	assert.Len(t, up.uploaded, 2)
}

func TestDrainReschedulesFailures(t *testing.T) {
	repo := newFakeOutboxRepo()
	past := time.Now().Add(-time.Minute)
	ok := repo.add("s-ok", past)
	bad := repo.add("s-bad", past)

	up := &scriptedUploader{fail: map[string]bool{"s-bad": true}}
	d := NewDrainer(repo, up)

	res, err := d.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Uploaded)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.Pending)

	// The failed entry stays queued with bumped attempts and a future
	// retry time; the uploaded one is gone.
	require.Contains(t, repo.entries, bad.ID)
	assert.NotContains(t, repo.entries, ok.ID)
	assert.Equal(t, 1, repo.entries[bad.ID].Attempts)
	assert.True(t, repo.entries[bad.ID].NextAttemptAt.After(time.Now()))
}

func TestDrainSkipsEntriesNotYetDue(t *testing.T) {
	repo := newFakeOutboxRepo()
	repo.add("s-later", time.Now().Add(time.Hour))

	up := &scriptedUploader{}
	d := NewDrainer(repo, up)

	res, err := d.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Uploaded)
	assert.Equal(t, 1, res.Pending)
	assert.Empty(t, up.uploaded)
}

func TestBackoffDoublesUpToCap(t *testing.T) {
	d := NewDrainer(newFakeOutboxRepo(), &scriptedUploader{})

	assert.Equal(t, DefaultBaseDelay, d.backoff(1))
	assert.Equal(t, 2*DefaultBaseDelay, d.backoff(2))
	assert.Equal(t, 4*DefaultBaseDelay, d.backoff(3))
	assert.Equal(t, DefaultMaxDelay, d.backoff(20))
}

func TestHTTPUploader(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	up := NewHTTPUploader(srv.URL)
	err := up.Upload(context.Background(), &store.OutboxEntry{
		SessionID: "s1",
		Payload:   map[string]any{"session_id": "s1"},
	})
	require.NoError(t, err)
	assert.Contains(t, gotBody, `"session_id":"s1"`)
}

func TestHTTPUploaderRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	up := NewHTTPUploader(srv.URL)
	err := up.Upload(context.Background(), &store.OutboxEntry{SessionID: "s1", Payload: map[string]any{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
