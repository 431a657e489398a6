// Copyright 2024 Huawei Technologies Co., Ltd. All Rights Reserved.

// Package limiter provides concurrency limiters used to cap the number of
// in-flight requests against the storage array.
package limiter

import (
	"context"
	"fmt"
)

type LimiterType int

const (
	TypeSemaphoreN LimiterType = iota
)

type Limiter interface {
	Wait(ctx context.Context) error
	Release(ctx context.Context)
}

type LimiterOption func(lim Limiter) error

// New creates a limiter of the requested type and applies any options.
func New(ctx context.Context, id string, limiterType LimiterType, options ...LimiterOption) (Limiter, error) {
	var lim Limiter

	switch limiterType {
	case TypeSemaphoreN:
		lim = newSemaphoreN(id)
	default:
		return nil, fmt.Errorf("unknown limiter type: %v", limiterType)
	}

	for _, option := range options {
		if err := option(lim); err != nil {
			return nil, err
		}
	}

	return lim, nil
}
