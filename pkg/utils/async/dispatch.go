package async

import (
	"context"

	"github.com/secmon-lab/inkwell/pkg/utils/errutil"
	"github.com/secmon-lab/inkwell/pkg/utils/logging"
)

// Dispatch executes a handler function asynchronously in a new goroutine.
// The handler gets a fresh background context (the request context may be
// cancelled before the handler finishes) with the caller's logger preserved.
// Errors and panics are logged, never propagated: dispatched work must not
// fail the request path that launched it.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			errutil.Handle(bgCtx, err, "async handler failed") //nolint:errcheck // already logged
		}
	}()
}
