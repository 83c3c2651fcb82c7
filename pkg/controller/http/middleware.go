package http

import (
	"net/http"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/secmon-lab/inkwell/pkg/domain/model/auth"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
	"github.com/secmon-lab/inkwell/pkg/utils/logging"
)

// authMiddleware resolves the requesting user. With an empty secret the
// server runs in no-auth mode and every request acts as the anonymous user.
// Otherwise the request must carry a bearer JWT signed with the shared
// secret, and the token subject becomes the user ID.
func authMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(secret) == 0 {
				ctx := auth.ContextWithUser(r.Context(), auth.AnonymousUserID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse([]byte(raw),
				jwt.WithKey(jwa.HS256, secret),
				jwt.WithValidate(true),
			)
			if err != nil {
				logging.From(r.Context()).Warn("rejected bearer token", "error", err.Error())
				http.Error(w, "Invalid authentication token", http.StatusUnauthorized)
				return
			}

			sub := token.Subject()
			if sub == "" {
				http.Error(w, "Invalid authentication token", http.StatusUnauthorized)
				return
			}

			ctx := auth.ContextWithUser(r.Context(), types.UserID(sub))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
