package reasoning

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	retryAttempts     = 3
	retryInitialDelay = 2 * time.Second
	retryMaxDelay     = 30 * time.Second
)

type attemptFunc func() (status int, body []byte, err error)

// doWithRetry repeats the attempt on transport errors, 429 and 5xx, doubling the delay.
func doWithRetry(ctx context.Context, attempts int, delay time.Duration, fn attemptFunc) (int, []byte, error) {
	if attempts <= 0 {
		attempts = 1
	}

	var (
		status int
		body   []byte
		err    error
	)
	for i := 0; i < attempts; i++ {
		status, body, err = fn()
		if err == nil && status < http.StatusBadRequest {
			return status, body, nil
		}
		if err == nil {
			err = fmt.Errorf("unexpected status %d", status)
		}
		if !retryable(status) || i == attempts-1 {
			return status, body, err
		}
		if sleepErr := SleepWithContext(ctx, delay); sleepErr != nil {
			return status, body, sleepErr
		}
		if delay < retryMaxDelay {
			delay *= 2
		}
	}

	return status, body, err
}

func retryable(status int) bool {
	return status == 0 || status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// SleepWithContext waits for d or until ctx is done.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
