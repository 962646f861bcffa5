package wrap

import (
	"context"
	"errors"
)

// errorWithLogCtx carries the LogCtx that was current when the error
// was produced, so the log site can restore it even after the error
// travelled up through layers with a different context.
type errorWithLogCtx struct {
	err    error
	logCtx LogCtx
}

func (e *errorWithLogCtx) Error() string { return e.err.Error() }

func (e *errorWithLogCtx) Unwrap() error { return e.err }

// ErrorCtx returns ctx enriched with the LogCtx captured inside err,
// or ctx unchanged when the error carries none.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var e *errorWithLogCtx
	if errors.As(err, &e) && e != nil {
		return context.WithValue(ctx, LogCtxKey, e.logCtx)
	}
	return ctx
}
