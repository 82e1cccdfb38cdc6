package callcontext

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type KeyContext string

var (
	keyOperation KeyContext = "operation"
	keySessionID KeyContext = "session_id"
	keyRequestID KeyContext = "request_id"
	keyStartTime KeyContext = "call_start_time"
)

// CallMetadata holds metadata for one backend call
type CallMetadata struct {
	Operation string
	SessionID string
	RequestID string
	StartTime time.Time
}

// CallBegin derives the context for a backend call from the request context.
// The call is detached from the request's cancellation so a dropped browser
// connection does not abandon it; values are kept. A non-positive timeout
// means the call has no deadline.
func CallBegin(parent context.Context, operation, sessionID string, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := context.WithoutCancel(parent)

	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	ctx = context.WithValue(ctx, keyOperation, operation)
	ctx = context.WithValue(ctx, keySessionID, sessionID)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())

	return ctx, cancel
}

// WithRequestID attaches the HTTP request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetOperation extracts the operation name from context
func GetOperation(ctx context.Context) string {
	op, _ := ctx.Value(keyOperation).(string)
	return op
}

// GetSessionID extracts the session ID from context
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(keySessionID).(string)
	return id
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// GetStartTime extracts call start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyStartTime).(time.Time)
	return startTime, ok
}

// GetCallMetadata extracts all call metadata from context
func GetCallMetadata(ctx context.Context) *CallMetadata {
	startTime, _ := GetStartTime(ctx)
	return &CallMetadata{
		Operation: GetOperation(ctx),
		SessionID: GetSessionID(ctx),
		RequestID: GetRequestID(ctx),
		StartTime: startTime,
	}
}

// LogFields returns the metadata as zap fields
func LogFields(ctx context.Context) []zap.Field {
	md := GetCallMetadata(ctx)
	fields := []zap.Field{
		zap.String("operation", md.Operation),
		zap.String("session_id", md.SessionID),
	}
	if md.RequestID != "" {
		fields = append(fields, zap.String("request_id", md.RequestID))
	}
	if !md.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", time.Since(md.StartTime)))
	}
	return fields
}
