package utils

import (
	"context"
	"time"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	TimeKey      ContextKey = "start_time"
	PathKey      ContextKey = "path"
	MethodKey    ContextKey = "method"
)

// ContextKeys enumerates every request-scoped key the API attaches, so the
// logger can lift them into structured fields without naming each one.
var ContextKeys = map[ContextKey]struct{}{
	RequestIDKey: {},
	TimeKey:      {},
	PathKey:      {},
	MethodKey:    {},
}

func SetContextValue(ctx context.Context, key ContextKey, value any) context.Context {
	return context.WithValue(ctx, key, value)
}

func GetContextValue(ctx context.Context, key ContextKey) (any, bool) {
	val := ctx.Value(key)
	return val, val != nil
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}

func GetPath(ctx context.Context) (string, bool) {
	path, ok := ctx.Value(PathKey).(string)
	return path, ok
}

func GetMethod(ctx context.Context) (string, bool) {
	method, ok := ctx.Value(MethodKey).(string)
	return method, ok
}

// ElapsedTime reports how long ago the request started, per the start time
// stamped by the common middleware.
func ElapsedTime(ctx context.Context) (time.Duration, bool) {
	start, ok := ctx.Value(TimeKey).(time.Time)
	if !ok {
		return 0, false
	}
	return time.Since(start), true
}
