package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type principalVerifier interface {
	Verify(token string) (entity.Principal, error)
}

type principalCtxKey struct{}

// authenticate resolves the principal from a bearer token. Requests without an
// Authorization header continue as anonymous; malformed or rejected tokens get 401.
func authenticate(verifier principalVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, invalidTokenResponse)
				return
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				httplog.LogEntrySetField(r.Context(), "auth_err", slog.StringValue(err.Error()))

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, invalidTokenResponse)
				return
			}

			httplog.LogEntrySetField(r.Context(), "principal_id", slog.Int64Value(principal.ID))

			ctx := context.WithValue(r.Context(), principalCtxKey{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// principalFrom returns the principal stored by authenticate, or the anonymous principal.
func principalFrom(ctx context.Context) entity.Principal {
	p, _ := ctx.Value(principalCtxKey{}).(entity.Principal)
	return p
}
