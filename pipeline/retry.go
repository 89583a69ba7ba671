package pipeline

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = 500 * time.Millisecond
)

// transcribe runs OCR with retry to ride out transient engine failures. The
// last error is returned unwrapped so its code survives into the PageRecord.
func (r *Runner) transcribe(ctx context.Context, image []byte) (string, error) {
	attempts := r.RetryAttempts
	if attempts == 0 {
		attempts = defaultRetryAttempts
	}
	delay := r.RetryDelay
	if delay == 0 {
		delay = defaultRetryDelay
	}

	var text string
	err := retry.Do(
		func() error {
			t, err := r.Transcriber.Transcribe(ctx, image, r.Config.Languages)
			if err != nil {
				return err
			}
			text = t
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", err
	}
	return text, nil
}
