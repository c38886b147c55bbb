package terminals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"attendance-manager/core/attendance"

	"github.com/avast/retry-go/v4"
)

// HTTPSource fetches punch events from a terminal's HTTP collector endpoint:
// GET <baseURL>/punches?date=YYYY-MM-DD returning a JSON array of
// {employeeCode, date, timestamp} objects.
type HTTPSource struct {
	id       string
	baseURL  string
	client   *http.Client
	attempts uint
}

// NewHTTPSource creates a source for one terminal endpoint.
func NewHTTPSource(id, baseURL string, timeout time.Duration, attempts uint) *HTTPSource {
	if attempts == 0 {
		attempts = 1
	}
	return &HTTPSource{
		id:       id,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		attempts: attempts,
	}
}

// ID returns the terminal id.
func (s *HTTPSource) ID() string {
	return s.id
}

// Fetch retrieves the terminal's punch batch for a date, retrying transient
// failures. The last error is returned when all attempts fail.
func (s *HTTPSource) Fetch(ctx context.Context, date string) ([]attendance.PunchEvent, error) {
	endpoint := fmt.Sprintf("%s/punches?date=%s", s.baseURL, url.QueryEscape(date))

	var events []attendance.PunchEvent
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return err
			}

			resp, err := s.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				// Drain so the connection can be reused across attempts.
				_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
				return fmt.Errorf("terminal %s returned status %d", s.id, resp.StatusCode)
			}

			events = events[:0]
			if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
				return fmt.Errorf("terminal %s returned malformed payload: %w", s.id, err)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch punches from %s: %w", s.id, err)
	}

	return events, nil
}
