package logbook

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/2beens/gymload/internal/telemetry/metrics"
	"github.com/2beens/gymload/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultConflictRetries = 3

	maxTypicalRepsLen = 64
)

// Service owns the logbook rules: sets are appended, personal records only move up.
type Service struct {
	store           Store
	metrics         *metrics.Manager
	conflictRetries int

	// Now is the clock used to date new sets.
	Now func() time.Time
}

// NewService creates the logbook service. metricsManager may be nil.
func NewService(store Store, metricsManager *metrics.Manager, conflictRetries int) *Service {
	if conflictRetries <= 0 {
		conflictRetries = DefaultConflictRetries
	}
	return &Service{
		store:           store,
		metrics:         metricsManager,
		conflictRetries: conflictRetries,
		Now:             time.Now,
	}
}

// Ingest records one set and settles the personal record of its key, all in one
// transaction. The returned views are read inside that transaction, so they
// include the new set and the updated record.
func (s *Service) Ingest(ctx context.Context, userID int, input SetInput) (_ *IngestResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logbook.ingest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	input, err = normalizeSetInput(input)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("exercise", input.Exercise),
		attribute.Int("reps", input.Reps),
	)

	var result IngestResult
	err = s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		set, err := tx.AddSet(ctx, Set{
			UserID:   userID,
			Exercise: input.Exercise,
			Weight:   input.Weight,
			Reps:     input.Reps,
			RPE:      input.RPE,
			Date:     s.Now().UTC().Truncate(time.Microsecond),
		})
		if err != nil {
			return err
		}

		key := RecordKey{UserID: userID, Exercise: set.Exercise, Reps: set.Reps}
		decision, err := s.settle(ctx, tx, key, set.Weight, set.Date)
		if err != nil {
			return err
		}

		prs, err := tx.ListPersonalRecords(ctx, userID)
		if err != nil {
			return fmt.Errorf("list prs: %w", err)
		}
		sets, err := tx.ListSets(ctx, userID)
		if err != nil {
			return fmt.Errorf("list sets: %w", err)
		}

		result = IngestResult{
			Set:        *set,
			PRDecision: decision,
			PRs:        prs,
			Sets:       sets,
		}
		return nil
	})
	if err != nil {
		return nil, asStorageError("ingest set", err)
	}

	span.SetAttributes(attribute.String("pr.decision", result.PRDecision.Action.String()))
	if s.metrics != nil {
		s.metrics.CounterSetsIngested.Inc()
		s.metrics.CounterPRDecisions.WithLabelValues(result.PRDecision.Action.String()).Inc()
	}
	log.Debugf("logbook: user %d logged %s %gx%d -> pr %s", userID, input.Exercise, input.Weight, input.Reps, result.PRDecision.Action)

	return &result, nil
}

// settle brings the personal record of key in line with a set of weight lifted at date.
// Losing a create race to a concurrent transaction is not an error: the record that
// won is re-read (and locked) and the decision is made again against it.
func (s *Service) settle(ctx context.Context, tx Tx, key RecordKey, weight float64, date time.Time) (Decision, error) {
	for attempt := 0; ; attempt++ {
		existing, err := tx.GetPersonalRecordForUpdate(ctx, key)
		if err != nil {
			return Decision{}, fmt.Errorf("get pr: %w", err)
		}

		decision := Resolve(existing, weight, date)
		switch decision.Action {
		case ActionCreate:
			_, err := tx.CreatePersonalRecord(ctx, PersonalRecord{
				UserID:   key.UserID,
				Exercise: key.Exercise,
				Reps:     key.Reps,
				Weight:   decision.Weight,
				Date:     decision.Date,
			})
			if errors.Is(err, ErrConflict) {
				if s.metrics != nil {
					s.metrics.CounterPRConflicts.Inc()
				}
				if attempt >= s.conflictRetries {
					return Decision{}, fmt.Errorf("pr %s x%d still conflicting after %d attempts: %w", key.Exercise, key.Reps, attempt+1, err)
				}
				log.Debugf("logbook: pr %s x%d created concurrently, retrying", key.Exercise, key.Reps)
				continue
			}
			if err != nil {
				return Decision{}, fmt.Errorf("create pr: %w", err)
			}
		case ActionUpdate:
			if err := tx.UpdatePersonalRecord(ctx, existing.ID, decision.Weight, decision.Date); err != nil {
				return Decision{}, fmt.Errorf("update pr: %w", err)
			}
		}

		return decision, nil
	}
}

// ListUserData returns everything the client shows for a user.
func (s *Service) ListUserData(ctx context.Context, userID int) (_ *UserData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logbook.data")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var data UserData
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		prs, err := s.store.ListPersonalRecords(gCtx, userID)
		if err != nil {
			return fmt.Errorf("list prs: %w", err)
		}
		data.PRs = prs
		return nil
	})
	g.Go(func() error {
		sets, err := s.store.ListSets(gCtx, userID)
		if err != nil {
			return fmt.Errorf("list sets: %w", err)
		}
		data.Sets = sets
		return nil
	})
	g.Go(func() error {
		exercises, err := s.store.ListMainExercises(gCtx, userID)
		if err != nil {
			return fmt.Errorf("list main exercises: %w", err)
		}
		data.MainExercises = exercises
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, asStorageError("list user data", err)
	}

	return &data, nil
}

// ClearPersonalRecords removes all of the user's records. Sets are kept, so
// RebuildPersonalRecords can restore them.
func (s *Service) ClearPersonalRecords(ctx context.Context, userID int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logbook.prs.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	deleted, err := s.store.DeletePersonalRecords(ctx, userID)
	if err != nil {
		return 0, asStorageError("clear prs", err)
	}
	log.Debugf("logbook: user %d cleared %d prs", userID, deleted)
	return deleted, nil
}

// ClearSets removes the user's set history. Records are untouched.
func (s *Service) ClearSets(ctx context.Context, userID int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logbook.sets.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	deleted, err := s.store.DeleteSets(ctx, userID)
	if err != nil {
		return 0, asStorageError("clear sets", err)
	}
	log.Debugf("logbook: user %d cleared %d sets", userID, deleted)
	return deleted, nil
}

func (s *Service) ListMainExercises(ctx context.Context, userID int) ([]MainExercise, error) {
	exercises, err := s.store.ListMainExercises(ctx, userID)
	if err != nil {
		return nil, asStorageError("list main exercises", err)
	}
	return exercises, nil
}

func (s *Service) UpsertMainExercise(ctx context.Context, userID int, name, typicalReps string) (_ *MainExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logbook.mainexercises.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, missingField("name")
	}
	typicalReps = strings.TrimSpace(typicalReps)
	if typicalReps == "" {
		return nil, missingField("typicalReps")
	}
	if len(typicalReps) > maxTypicalRepsLen {
		return nil, &ValidationError{Field: "typicalReps", Reason: fmt.Sprintf("longer than %d characters", maxTypicalRepsLen)}
	}

	exercise, err := s.store.UpsertMainExercise(ctx, MainExercise{
		UserID:      userID,
		Name:        name,
		TypicalReps: typicalReps,
	})
	if err != nil {
		return nil, asStorageError("upsert main exercise", err)
	}
	return exercise, nil
}

func (s *Service) DeleteMainExercise(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logbook.mainexercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("id", id))

	if id <= 0 {
		return &ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	if err := s.store.DeleteMainExercise(ctx, userID, id); err != nil {
		return asStorageError("delete main exercise", err)
	}
	return nil
}

// RebuildPersonalRecords recomputes all of the user's records from the set history,
// replaying it oldest first. Sets logged concurrently with the rebuild are settled
// against the rebuilt records like any other ingest.
func (s *Service) RebuildPersonalRecords(ctx context.Context, userID int) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logbook.prs.rebuild")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var prs []PersonalRecord
	err = s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		if _, err := tx.DeletePersonalRecords(ctx, userID); err != nil {
			return fmt.Errorf("delete prs: %w", err)
		}
		sets, err := tx.ListSets(ctx, userID)
		if err != nil {
			return fmt.Errorf("list sets: %w", err)
		}

		best := make(map[RecordKey]*PersonalRecord)
		// sets come newest first
		for i := len(sets) - 1; i >= 0; i-- {
			set := sets[i]
			key := RecordKey{UserID: userID, Exercise: set.Exercise, Reps: set.Reps}
			decision := Resolve(best[key], set.Weight, set.Date)
			if decision.Action == ActionNoOp {
				continue
			}
			best[key] = &PersonalRecord{
				UserID:   userID,
				Exercise: set.Exercise,
				Reps:     set.Reps,
				Weight:   decision.Weight,
				Date:     decision.Date,
			}
		}

		keys := make([]RecordKey, 0, len(best))
		for key := range best {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].Exercise != keys[j].Exercise {
				return keys[i].Exercise < keys[j].Exercise
			}
			return keys[i].Reps < keys[j].Reps
		})
		for _, key := range keys {
			if _, err := s.settle(ctx, tx, key, best[key].Weight, best[key].Date); err != nil {
				return err
			}
		}

		prs, err = tx.ListPersonalRecords(ctx, userID)
		if err != nil {
			return fmt.Errorf("list prs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, asStorageError("rebuild prs", err)
	}

	log.Debugf("logbook: user %d rebuilt %d prs", userID, len(prs))
	return prs, nil
}

// normalizeSetInput trims the exercise name and rejects input that cannot be a set.
func normalizeSetInput(input SetInput) (SetInput, error) {
	input.Exercise = strings.TrimSpace(input.Exercise)
	if input.Exercise == "" {
		return input, missingField("exercise")
	}
	if math.IsNaN(input.Weight) || math.IsInf(input.Weight, 0) {
		return input, &ValidationError{Field: "weight", Reason: "not a number"}
	}
	if input.Weight <= 0 {
		return input, &ValidationError{Field: "weight", Reason: "must be greater than zero"}
	}
	if input.Reps <= 0 {
		return input, &ValidationError{Field: "reps", Reason: "must be a positive integer"}
	}
	if input.RPE != nil && (math.IsNaN(*input.RPE) || math.IsInf(*input.RPE, 0)) {
		return input, &ValidationError{Field: "rpe", Reason: "not a number"}
	}
	return input, nil
}
