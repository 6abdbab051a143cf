// Package retry implements the bounded fixed-delay retry policy shared by
// the catalog client and the downloader.
package retry

import (
	"context"
	"errors"
	"time"
)

// Policy bounds retries of a failing operation. Attempts counts retries after
// the initial call, so an operation runs at most Attempts+1 times.
type Policy struct {
	Attempts int
	Delay    time.Duration
}

type permanentError struct {
	err error
}

func (p permanentError) Error() string { return p.err.Error() }
func (p permanentError) Unwrap() error { return p.err }

// Permanent marks err as non-transient; Do surfaces it immediately without
// further attempts. Protocol and parse failures use this, network and status
// failures do not.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanentError{err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var p permanentError
	return errors.As(err, &p)
}

// Do runs op, retrying transient failures up to the policy budget with a
// fixed delay between attempts. Context cancellation stops the loop between
// attempts and is returned as-is.
func Do(ctx context.Context, policy Policy, op func() error) error {
	var err error
	for attempt := 0; attempt <= policy.Attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(policy.Delay):
			}
		}
		err = op()
		if err == nil {
			return nil
		}
		if IsPermanent(err) {
			return err
		}
	}
	return err
}
