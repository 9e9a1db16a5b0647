// Package remote downloads word lists over HTTP.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/logger"
)

const (
	// DefaultAttempts is how often a failing download is tried.
	DefaultAttempts = 3

	// DefaultRetryInterval paces attempts.
	DefaultRetryInterval = time.Second

	// DefaultTimeout bounds one attempt.
	DefaultTimeout = 30 * time.Second
)

// StatusError is returned for a non-200 response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// Fetcher downloads a word list to a local file.
type Fetcher struct {
	client   *http.Client
	limiter  *rate.Limiter
	attempts int
}

// NewFetcher creates a fetcher. A nil client gets DefaultTimeout, a
// non-positive interval or attempt count gets the default.
func NewFetcher(client *http.Client, retryInterval time.Duration, attempts int) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if retryInterval <= 0 {
		retryInterval = DefaultRetryInterval
	}
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	return &Fetcher{
		client:   client,
		limiter:  rate.NewLimiter(rate.Every(retryInterval), 1),
		attempts: attempts,
	}
}

// Fetch downloads url into dest and returns the number of bytes written.
// dest is replaced atomically; a failed download leaves it untouched.
// Server errors and transport failures are retried, other statuses are not.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) (int64, error) {
	var lastErr error
	for attempt := 1; attempt <= f.attempts; attempt++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return 0, err
		}

		n, err := f.fetchOnce(ctx, url, dest)
		if err == nil {
			logger.Info("Downloaded %d bytes from %s", n, url)
			return n, nil
		}
		lastErr = err
		if !retryable(err) || ctx.Err() != nil {
			break
		}
		logger.Warn("Download attempt %d/%d failed: %v", attempt, f.attempts, err)
	}
	return 0, fmt.Errorf("fetching %s: %w", url, lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &StatusError{Code: resp.StatusCode}
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}
	tmp, err := os.CreateTemp(dir, ".wordlist-*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	n, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return 0, err
	}
	return n, nil
}

func retryable(err error) bool {
	var status *StatusError
	if errors.As(err, &status) {
		return status.Code >= 500 || status.Code == http.StatusTooManyRequests
	}
	return true
}
