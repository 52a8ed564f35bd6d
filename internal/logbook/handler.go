package logbook

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/gymload/internal/auth"
	"github.com/2beens/gymload/internal/telemetry/tracing"
	"github.com/2beens/gymload/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=logbook_test

type logbookService interface {
	Ingest(ctx context.Context, userID int, input SetInput) (*IngestResult, error)
	ListUserData(ctx context.Context, userID int) (*UserData, error)
	ClearPersonalRecords(ctx context.Context, userID int) (int64, error)
	ClearSets(ctx context.Context, userID int) (int64, error)
	ListMainExercises(ctx context.Context, userID int) ([]MainExercise, error)
	UpsertMainExercise(ctx context.Context, userID int, name, typicalReps string) (*MainExercise, error)
	DeleteMainExercise(ctx context.Context, userID, id int) error
	RebuildPersonalRecords(ctx context.Context, userID int) ([]PersonalRecord, error)
}

type AddSetResponse struct {
	Success bool `json:"success"`
	IngestResult
}

type ClearResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

type MainExercisesResponse struct {
	Success       bool           `json:"success"`
	MainExercises []MainExercise `json:"mainExercises"`
}

type RebuildResponse struct {
	Success bool             `json:"success"`
	PRs     []PersonalRecord `json:"prs"`
}

// number accepts 80, "80" and "": the web client posts form values as strings.
// null and "" leave it unset. Anything else that is not a number is kept as
// invalid, so the caller can name the field in its error.
type number struct {
	value   float64
	set     bool
	invalid bool
}

func (n *number) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			n.invalid = true
			return nil
		}
		n.value, n.set = v, true
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		n.invalid = true
		return nil
	}
	n.value, n.set = v, true
	return nil
}

// check reports a field that was sent but is not a number, or was required and not sent.
func (n number) check(field string, required bool) error {
	if n.invalid {
		return &ValidationError{Field: field, Reason: "not a number"}
	}
	if required && !n.set {
		return missingField(field)
	}
	return nil
}

// integer returns the value when it is a whole number that fits in 32 bits.
func (n number) integer() (int, bool) {
	if !n.set || n.value != math.Trunc(n.value) || math.Abs(n.value) > math.MaxInt32 {
		return 0, false
	}
	return int(n.value), true
}

type addSetRequest struct {
	Exercise string `json:"exercise"`
	Weight   number `json:"weight"`
	Reps     number `json:"reps"`
	RPE      number `json:"rpe"`
}

func (req addSetRequest) toInput() (SetInput, error) {
	if strings.TrimSpace(req.Exercise) == "" {
		return SetInput{}, missingField("exercise")
	}
	if err := req.Weight.check("weight", true); err != nil {
		return SetInput{}, err
	}
	if err := req.Reps.check("reps", true); err != nil {
		return SetInput{}, err
	}
	if err := req.RPE.check("rpe", false); err != nil {
		return SetInput{}, err
	}
	reps, ok := req.Reps.integer()
	if !ok {
		return SetInput{}, &ValidationError{Field: "reps", Reason: "must be a positive integer"}
	}

	input := SetInput{
		Exercise: req.Exercise,
		Weight:   req.Weight.value,
		Reps:     reps,
	}
	if req.RPE.set {
		rpe := req.RPE.value
		input.RPE = &rpe
	}
	return input, nil
}

type mainExerciseRequest struct {
	Name        string `json:"name"`
	TypicalReps string `json:"typicalReps"`
	// older clients send snake case
	LegacyTypicalReps string `json:"typical_reps"`
}

type deleteMainExerciseRequest struct {
	ID number `json:"id"`
}

type Handler struct {
	service logbookService
}

func NewHandler(service logbookService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the logbook routes. r is expected to sit behind the auth middleware.
func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/data", handler.HandleData).Methods("POST", "OPTIONS").Name("data")
	r.HandleFunc("/series", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("series")
	r.HandleFunc("/clear-prs", handler.HandleClearPRs).Methods("POST", "OPTIONS").Name("clear-prs")
	r.HandleFunc("/clear-sets", handler.HandleClearSets).Methods("POST", "OPTIONS").Name("clear-sets")
	r.HandleFunc("/main-exercise", handler.HandleUpsertMainExercise).Methods("POST", "OPTIONS").Name("main-exercise")
	r.HandleFunc("/delete-main-exercise", handler.HandleDeleteMainExercise).Methods("POST", "OPTIONS").Name("delete-main-exercise")
	r.HandleFunc("/rebuild-prs", handler.HandleRebuildPRs).Methods("POST", "OPTIONS").Name("rebuild-prs")
}

func (handler *Handler) HandleData(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.data")
	defer span.End()

	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	data, err := handler.service.ListUserData(ctx, user.ID)
	if err != nil {
		writeError(w, "fetch data", err)
		return
	}

	pkg.WriteJSON(w, data, http.StatusOK)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.series")
	defer span.End()

	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req addSetRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, "add set", err)
		return
	}

	result, err := handler.service.Ingest(ctx, user.ID, input)
	if err != nil {
		writeError(w, "add set", err)
		return
	}

	pkg.WriteJSON(w, AddSetResponse{Success: true, IngestResult: *result}, http.StatusOK)
}

func (handler *Handler) HandleClearPRs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.clear-prs")
	defer span.End()

	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	deleted, err := handler.service.ClearPersonalRecords(ctx, user.ID)
	if err != nil {
		writeError(w, "clear prs", err)
		return
	}

	log.Debugf("user %s cleared %d prs", user.Username, deleted)
	pkg.WriteJSON(w, ClearResponse{Success: true, Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleClearSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.clear-sets")
	defer span.End()

	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	deleted, err := handler.service.ClearSets(ctx, user.ID)
	if err != nil {
		writeError(w, "clear sets", err)
		return
	}

	log.Debugf("user %s cleared %d sets", user.Username, deleted)
	pkg.WriteJSON(w, ClearResponse{Success: true, Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleUpsertMainExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.main-exercise")
	defer span.End()

	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req mainExerciseRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	typicalReps := req.TypicalReps
	if typicalReps == "" {
		typicalReps = req.LegacyTypicalReps
	}

	if _, err := handler.service.UpsertMainExercise(ctx, user.ID, req.Name, typicalReps); err != nil {
		writeError(w, "save main exercise", err)
		return
	}
	handler.writeMainExercises(ctx, w, user.ID)
}

func (handler *Handler) HandleDeleteMainExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.delete-main-exercise")
	defer span.End()

	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req deleteMainExerciseRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if err := req.ID.check("id", true); err != nil {
		writeError(w, "delete main exercise", err)
		return
	}
	id, ok := req.ID.integer()
	if !ok {
		writeError(w, "delete main exercise", &ValidationError{Field: "id", Reason: "must be a positive integer"})
		return
	}

	if err := handler.service.DeleteMainExercise(ctx, user.ID, id); err != nil {
		writeError(w, "delete main exercise", err)
		return
	}
	handler.writeMainExercises(ctx, w, user.ID)
}

func (handler *Handler) HandleRebuildPRs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.rebuild-prs")
	defer span.End()

	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	prs, err := handler.service.RebuildPersonalRecords(ctx, user.ID)
	if err != nil {
		writeError(w, "rebuild prs", err)
		return
	}

	log.Infof("user %s rebuilt prs: %d records", user.Username, len(prs))
	pkg.WriteJSON(w, RebuildResponse{Success: true, PRs: prs}, http.StatusOK)
}

func (handler *Handler) writeMainExercises(ctx context.Context, w http.ResponseWriter, userID int) {
	exercises, err := handler.service.ListMainExercises(ctx, userID)
	if err != nil {
		writeError(w, "list main exercises", err)
		return
	}
	pkg.WriteJSON(w, MainExercisesResponse{Success: true, MainExercises: exercises}, http.StatusOK)
}

func requestUser(w http.ResponseWriter, r *http.Request) (*auth.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		log.Errorf("logbook: no user in request context: %s", r.URL.Path)
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	return user, true
}

func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debugf("logbook: decode %s request: %s", r.URL.Path, err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeError maps logbook errors to responses. Storage details are logged, not returned.
func writeError(w http.ResponseWriter, op string, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		pkg.WriteJSONError(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		pkg.WriteJSONError(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("logbook: %s: %s", op, err)
		pkg.WriteJSONError(w, op+" failed", http.StatusInternalServerError)
	}
}
