package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymload/internal/telemetry/metrics"
	"github.com/2beens/gymload/internal/telemetry/tracing"
	"github.com/2beens/gymload/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type credentialsService interface {
	Register(ctx context.Context, username, password string) (*User, error)
	ResolveUser(ctx context.Context, username, password string) (*User, error)
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Handler struct {
	service credentialsService
	metrics *metrics.Manager
}

func NewHandler(service credentialsService, metrics *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metrics,
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Debugf("register, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := handler.service.Register(ctx, creds.Username, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCredentials), errors.Is(err, ErrUserExists):
			pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("register user %s: %s", creds.Username, err)
			pkg.WriteJSONError(w, "registration failed", http.StatusInternalServerError)
		}
		return
	}

	log.Debugf("registered user %s", user.Username)
	pkg.WriteJSON(w, Response{Success: true, Message: "user registered"}, http.StatusOK)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Debugf("login, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := handler.service.ResolveUser(ctx, creds.Username, creds.Password); err != nil {
		switch {
		case errors.Is(err, ErrMissingCredentials):
			pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrInvalidCredentials):
			if handler.metrics != nil {
				handler.metrics.CounterAuthFailures.Inc()
			}
			pkg.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
		default:
			log.Errorf("login user %s: %s", creds.Username, err)
			pkg.WriteJSONError(w, "login failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, Response{Success: true, Message: "login ok"}, http.StatusOK)
}
