package outbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lernio/lernio/internal/store"
)

// HTTPUploader posts queued sessions to the backend sync endpoint.
type HTTPUploader struct {
	endpoint string
	client   *http.Client
}

// NewHTTPUploader creates an uploader posting to endpoint.
func NewHTTPUploader(endpoint string) *HTTPUploader {
	return &HTTPUploader{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload posts the entry payload as JSON. Any non-2xx response counts
// as a failed attempt; the drainer handles rescheduling.
func (u *HTTPUploader) Upload(ctx context.Context, entry *store.OutboxEntry) error {
	body, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("post session %s: %w", entry.SessionID, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post session %s: unexpected status %d", entry.SessionID, resp.StatusCode)
	}
	return nil
}
