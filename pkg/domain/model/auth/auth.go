package auth

import (
	"context"

	"github.com/secmon-lab/inkwell/pkg/domain/types"
)

// AnonymousUserID is assigned when the server runs without authentication.
// All unauthenticated requests share one note collection.
const AnonymousUserID types.UserID = "anonymous"

type ctxUserKey struct{}

func ContextWithUser(ctx context.Context, userID types.UserID) context.Context {
	return context.WithValue(ctx, ctxUserKey{}, userID)
}

func UserFromContext(ctx context.Context) (types.UserID, bool) {
	userID, ok := ctx.Value(ctxUserKey{}).(types.UserID)
	return userID, ok
}
