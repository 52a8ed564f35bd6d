package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/gymload/internal/telemetry/tracing"
	"github.com/2beens/gymload/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const healthCheckTimeout = 2 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status   string `json:"status"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

type VersionResponse struct {
	Version string `json:"version"`
}

type Handler struct {
	db          dbPinger
	redisClient *redis.Client
	versionInfo string
}

func NewHandler(db dbPinger, redisClient *redis.Client, versionInfo string) *Handler {
	return &Handler{
		db:          db,
		redisClient: redisClient,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(apiRouter *mux.Router) {
	apiRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
	apiRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Postgres: "ok", Redis: "ok"}
	if err := handler.db.Ping(ctx); err != nil {
		log.Errorf("health: postgres ping: %s", err)
		resp.Status, resp.Postgres = "degraded", "unreachable"
	}
	if err := handler.redisClient.Ping(ctx).Err(); err != nil {
		log.Errorf("health: redis ping: %s", err)
		resp.Status, resp.Redis = "degraded", "unreachable"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
		span.SetStatus(codes.Error, "degraded")
	}
	pkg.WriteJSON(w, resp, status)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, VersionResponse{Version: handler.versionInfo}, http.StatusOK)
}
