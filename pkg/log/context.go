package log

import "context"

type ctxKey int

const (
	traceIDKey ctxKey = iota
	senderKey
)

// WithTraceID returns a copy of ctx carrying a trace id that is attached to every log line.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// WithSender returns a copy of ctx carrying the message sender.
func WithSender(ctx context.Context, sender string) context.Context {
	return context.WithValue(ctx, senderKey, sender)
}

// TraceID returns the trace id stored in ctx, if any.
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(traceIDKey).(string)
	return v
}

// Sender returns the sender stored in ctx, if any.
func Sender(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(senderKey).(string)
	return v
}
