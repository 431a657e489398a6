// Copyright 2024 Huawei Technologies Co., Ltd. All Rights Reserved.

package limiter

import (
	"context"
	"errors"
	"fmt"

	. "github.com/doubletao318/OpenStack-Driver/logging"
)

const defaultBufferSize = 10

type SemaphoreN struct {
	id     string
	tokens chan struct{}
}

// Creates a default semaphore, use options to customize it.
func newSemaphoreN(id string) *SemaphoreN {
	return &SemaphoreN{
		id:     id,
		tokens: make(chan struct{}, defaultBufferSize),
	}
}

func (s *SemaphoreN) Wait(ctx context.Context) error {
	select {
	case s.tokens <- struct{}{}:
		return nil
	case <-ctx.Done():
		return errors.New("context has been cancelled")
	}
}

// Release should always be called after Wait, otherwise it may lead to deadlock.
func (s *SemaphoreN) Release(ctx context.Context) {
	select {
	case <-s.tokens:
		return
	default:
		// Just to be on the safe side if release is called before wait.
		Logc(ctx).WithField("ID", s.id).Warn("Release() was called before Wait().")
		return
	}
}

func WithSemaphoreNSize(ctx context.Context, bufferSize int) LimiterOption {
	return func(lim Limiter) error {
		s, ok := lim.(*SemaphoreN)
		if !ok {
			return fmt.Errorf("wrong limiter type passed: %T, WithSemaphoreNSize option is intended for SemaphoreN", lim)
		}
		s.tokens = make(chan struct{}, bufferSize)
		Logc(ctx).WithField("ID", s.id).Debug("WithSemaphoreNSize LimiterOption was successfully applied.")
		return nil
	}
}
