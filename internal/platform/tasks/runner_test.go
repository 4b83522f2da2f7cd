package tasks

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunner_SubmitRunsTask(t *testing.T) {
	r := NewRunner(slog.Default(), time.Second, time.Millisecond)

	var ran atomic.Bool
	r.Submit("test", func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})
	r.Wait()

	assert.True(t, ran.Load())
}

func TestRunner_RetriesOnceOnFailure(t *testing.T) {
	r := NewRunner(slog.Default(), time.Second, time.Millisecond)

	var attempts atomic.Int32
	r.Submit("flaky", func(ctx context.Context) error {
		if attempts.Add(1) == 1 {
			return errors.New("transient")
		}
		return nil
	})
	r.Wait()

	assert.Equal(t, int32(2), attempts.Load())
}

func TestRunner_GivesUpAfterRetry(t *testing.T) {
	r := NewRunner(slog.Default(), time.Second, time.Millisecond)

	var attempts atomic.Int32
	r.Submit("broken", func(ctx context.Context) error {
		attempts.Add(1)
		return errors.New("permanent")
	})
	r.Wait()

	assert.Equal(t, int32(2), attempts.Load())
}
