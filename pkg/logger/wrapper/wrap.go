package wrap

import (
	"context"
	"errors"
)

// Error attaches the LogCtx currently in ctx to err. An error that is
// already carrying a LogCtx keeps its original one: the fields closest
// to the failure are the ones worth logging.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var e *errorWithLogCtx
	if errors.As(err, &e) {
		return err
	}

	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	return &errorWithLogCtx{
		err:    err,
		logCtx: lc,
	}
}
