package http

import (
	"net/http"

	"github.com/flockhq/flock/internal/members/service"
	"github.com/flockhq/flock/pkg/flocksdk"
	"github.com/flockhq/flock/pkg/httpx"
	"github.com/flockhq/flock/pkg/slogx"
)

// IdentityGuard re-resolves the token subject against the store on every
// request. A syntactically valid token whose account has since been
// deleted is rejected; any resolution failure, including store errors,
// fails closed with 401.
func IdentityGuard(users *service.UserService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			userID := httpx.UserIDFromContext(ctx)
			if userID == "" {
				flocksdk.ErrInvalidCredentials.WriteError(w)
				return
			}

			if _, err := users.Resolve(ctx, userID); err != nil {
				log.Warn("identity resolution failed", "user_id", userID, "err", err)
				flocksdk.ErrInvalidCredentials.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
