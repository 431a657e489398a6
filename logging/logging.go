// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

// Package logging provides request-scoped structured logging for the driver
// and its tools. Every operation carries a context seeded with a request ID
// and source so that log lines from one workflow can be correlated.
package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	TextFormat = "text"
	JSONFormat = "json"

	MaxLogEntryLength = 64000

	ContextKeyRequestID     ContextKey = "requestID"
	ContextKeyRequestSource ContextKey = "requestSource"

	ContextSourceCLI      = "CLI"
	ContextSourceInternal = "Internal"
	ContextSourcePeriodic = "Periodic"
)

// ContextKey is used for context.Context values. The value requires a key
// that is not a primitive type.
type ContextKey string

type LogFields = log.Fields

// Logc returns a log entry annotated with the request ID and source held in
// the supplied context.
func Logc(ctx context.Context) *log.Entry {
	return log.WithFields(log.Fields{
		"requestID":     ctx.Value(ContextKeyRequestID),
		"requestSource": ctx.Value(ContextKeyRequestSource),
	})
}

// GenerateRequestContext returns a context with a request ID and source set,
// reusing any values already present and minting a new ID otherwise.
func GenerateRequestContext(ctx context.Context, requestID, requestSource string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	} else {
		if v := ctx.Value(ContextKeyRequestID); v != nil {
			requestID = fmt.Sprint(v)
		}
		if v := ctx.Value(ContextKeyRequestSource); v != nil {
			requestSource = fmt.Sprint(v)
		}
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	if requestSource == "" {
		requestSource = "Unknown"
	}
	ctx = context.WithValue(ctx, ContextKeyRequestID, requestID)
	ctx = context.WithValue(ctx, ContextKeyRequestSource, requestSource)
	return ctx
}

// InitLogLevel configures the logging level. The debug flag takes precedence
// if set, otherwise the logLevel flag (trace, debug, info, warn, error,
// fatal) is used.
func InitLogLevel(debug bool, logLevel string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}
	return nil
}

// InitLogFormat configures the log format, allowing a choice of text or JSON.
func InitLogFormat(logFormat string) error {
	switch logFormat {
	case TextFormat:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case JSONFormat:
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format: %s", logFormat)
	}
	return nil
}

// InitLogOutput redirects all log output to the given writer. Tests use this
// to silence or capture logging.
func InitLogOutput(out io.Writer) {
	log.SetOutput(out)
}
