package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/gymload/internal/auth"
	"github.com/2beens/gymload/internal/telemetry/metrics"
	"github.com/2beens/gymload/internal/telemetry/tracing"
	"github.com/2beens/gymload/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

const maxAuthBodyBytes = 1 << 20

type userResolver interface {
	ResolveUser(ctx context.Context, username, password string) (*auth.User, error)
}

type AuthMiddlewareHandler struct {
	resolver userResolver
	metrics  *metrics.Manager
}

func NewAuthMiddlewareHandler(resolver userResolver, metrics *metrics.Manager) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		resolver: resolver,
		metrics:  metrics,
	}
}

// AuthCheck resolves the user from the username and password sent in the json body,
// or from basic auth when the body has none. The body is restored for the next handler.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			creds, err := readCredentials(r)
			if err != nil {
				log.Debugf("[auth middleware] read body %s: %s", r.URL.Path, err)
				pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
				span.SetStatus(codes.Error, "read-body")
				return
			}

			user, err := h.resolver.ResolveUser(ctx, creds.Username, creds.Password)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrMissingCredentials):
					pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
					span.SetStatus(codes.Error, "missing-credentials")
				case errors.Is(err, auth.ErrInvalidCredentials):
					log.Tracef("[auth middleware] unauthorized %s => %s", creds.Username, r.URL.Path)
					if h.metrics != nil {
						h.metrics.CounterAuthFailures.Inc()
					}
					pkg.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
					span.SetStatus(codes.Error, "invalid-credentials")
				default:
					log.Errorf("[auth middleware] resolve user => %s: %s", r.URL.Path, err)
					pkg.WriteJSONError(w, "auth check failed", http.StatusInternalServerError)
					span.SetStatus(codes.Error, "resolve-user-err")
					span.RecordError(err)
				}
				return
			}

			span.SetAttributes(attribute.Int("user.id", user.ID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}

func readCredentials(r *http.Request) (auth.Credentials, error) {
	var creds auth.Credentials
	if r.Body != nil {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxAuthBodyBytes))
		if err != nil {
			return creds, err
		}
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, &creds); err != nil {
				return creds, err
			}
		}
	}

	if creds.Username == "" && creds.Password == "" {
		if username, password, ok := r.BasicAuth(); ok {
			creds.Username = username
			creds.Password = password
		}
	}
	return creds, nil
}
