package logbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymload/internal/db"
	"github.com/2beens/gymload/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

var _ Store = (*PsqlStore)(nil)
var _ Tx = (*psqlTx)(nil)

// querier is the part of pgx shared by the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PsqlStore struct {
	db *pgxpool.Pool
}

func NewPsqlStore(db *pgxpool.Pool) *PsqlStore {
	return &PsqlStore{
		db: db,
	}
}

func (s *PsqlStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.tx")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	pgTx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = pgTx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rollbackErr := pgTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				err = multierr.Append(err, fmt.Errorf("rollback tx: %w", rollbackErr))
			}
			return
		}
		if commitErr := pgTx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("commit tx: %w", commitErr)
		}
	}()

	return fn(ctx, &psqlTx{tx: pgTx})
}

func (s *PsqlStore) ListPersonalRecords(ctx context.Context, userID int) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.prs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return listPersonalRecords(ctx, s.db, userID)
}

func (s *PsqlStore) ListSets(ctx context.Context, userID int) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.sets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return listSets(ctx, s.db, userID)
}

func (s *PsqlStore) ListMainExercises(ctx context.Context, userID int) (_ []MainExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.mainexercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := s.db.Query(
		ctx,
		`
			SELECT id, user_id, name, typical_reps
			FROM main_exercises
			WHERE user_id = $1
			ORDER BY name COLLATE "C";`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]MainExercise, 0)
	for rows.Next() {
		var me MainExercise
		if err := rows.Scan(&me.ID, &me.UserID, &me.Name, &me.TypicalReps); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, me)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (s *PsqlStore) DeletePersonalRecords(ctx context.Context, userID int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.prs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return deletePersonalRecords(ctx, s.db, userID)
}

func (s *PsqlStore) DeleteSets(ctx context.Context, userID int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.sets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := s.db.Exec(ctx, `DELETE FROM sets WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *PsqlStore) UpsertMainExercise(ctx context.Context, exercise MainExercise) (_ *MainExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.mainexercises.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", exercise.UserID))

	err = s.db.QueryRow(
		ctx,
		`INSERT INTO main_exercises (user_id, name, typical_reps)
				VALUES ($1, $2, $3)
			ON CONFLICT ON CONSTRAINT ux_main_exercises_user_name
				DO UPDATE SET typical_reps = EXCLUDED.typical_reps
			RETURNING id;`,
		exercise.UserID, exercise.Name, exercise.TypicalReps,
	).Scan(&exercise.ID)
	if err != nil {
		if db.IsForeignKeyViolationError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &exercise, nil
}

func (s *PsqlStore) DeleteMainExercise(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logbook.mainexercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("id", id))

	tag, err := s.db.Exec(
		ctx,
		`DELETE FROM main_exercises WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMainExerciseNotFound
	}
	return nil
}

type psqlTx struct {
	tx pgx.Tx
}

func (t *psqlTx) AddSet(ctx context.Context, set Set) (*Set, error) {
	err := t.tx.QueryRow(
		ctx,
		`INSERT INTO sets (user_id, exercise, weight, reps, rpe, date)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		set.UserID, set.Exercise, set.Weight, set.Reps, set.RPE, set.Date,
	).Scan(&set.ID)
	if err != nil {
		if db.IsForeignKeyViolationError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("insert set: %w", err)
	}
	return &set, nil
}

func (t *psqlTx) GetPersonalRecordForUpdate(ctx context.Context, key RecordKey) (*PersonalRecord, error) {
	var pr PersonalRecord
	err := t.tx.QueryRow(
		ctx,
		`
			SELECT id, user_id, exercise, reps, weight, date
			FROM prs
			WHERE user_id = $1 AND exercise = $2 AND reps = $3
			FOR UPDATE;`,
		key.UserID, key.Exercise, key.Reps,
	).Scan(&pr.ID, &pr.UserID, &pr.Exercise, &pr.Reps, &pr.Weight, &pr.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select pr for update: %w", err)
	}
	pr.Date = pr.Date.UTC()
	return &pr, nil
}

// CreatePersonalRecord relies on ON CONFLICT DO NOTHING: a competing insert of the
// same key makes this one wait for it to finish, and then return no row. Unlike a
// unique violation error, that does not abort the surrounding transaction.
func (t *psqlTx) CreatePersonalRecord(ctx context.Context, pr PersonalRecord) (*PersonalRecord, error) {
	err := t.tx.QueryRow(
		ctx,
		`INSERT INTO prs (user_id, exercise, reps, weight, date)
				VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT ON CONSTRAINT ux_prs_user_exercise_reps DO NOTHING
			RETURNING id;`,
		pr.UserID, pr.Exercise, pr.Reps, pr.Weight, pr.Date,
	).Scan(&pr.ID)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows), db.IsUniqueViolationError(err):
			return nil, ErrConflict
		case db.IsForeignKeyViolationError(err):
			return nil, ErrUserNotFound
		default:
			return nil, fmt.Errorf("insert pr: %w", err)
		}
	}
	return &pr, nil
}

func (t *psqlTx) UpdatePersonalRecord(ctx context.Context, id int, weight float64, date time.Time) error {
	tag, err := t.tx.Exec(
		ctx,
		`UPDATE prs SET weight = $1, date = $2 WHERE id = $3;`,
		weight, date, id,
	)
	if err != nil {
		return fmt.Errorf("update pr: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update pr %d: no rows affected", id)
	}
	return nil
}

func (t *psqlTx) DeletePersonalRecords(ctx context.Context, userID int) (int64, error) {
	return deletePersonalRecords(ctx, t.tx, userID)
}

func (t *psqlTx) ListPersonalRecords(ctx context.Context, userID int) ([]PersonalRecord, error) {
	return listPersonalRecords(ctx, t.tx, userID)
}

func (t *psqlTx) ListSets(ctx context.Context, userID int) ([]Set, error) {
	return listSets(ctx, t.tx, userID)
}

func listPersonalRecords(ctx context.Context, q querier, userID int) ([]PersonalRecord, error) {
	rows, err := q.Query(
		ctx,
		`
			SELECT id, user_id, exercise, reps, weight, date
			FROM prs
			WHERE user_id = $1
			ORDER BY exercise COLLATE "C", reps;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prs := make([]PersonalRecord, 0)
	for rows.Next() {
		var pr PersonalRecord
		if err := rows.Scan(&pr.ID, &pr.UserID, &pr.Exercise, &pr.Reps, &pr.Weight, &pr.Date); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		pr.Date = pr.Date.UTC()
		prs = append(prs, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prs, nil
}

func listSets(ctx context.Context, q querier, userID int) ([]Set, error) {
	rows, err := q.Query(
		ctx,
		`
			SELECT id, user_id, exercise, weight, reps, rpe, date
			FROM sets
			WHERE user_id = $1
			ORDER BY date DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets := make([]Set, 0)
	for rows.Next() {
		var set Set
		if err := rows.Scan(&set.ID, &set.UserID, &set.Exercise, &set.Weight, &set.Reps, &set.RPE, &set.Date); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		set.Date = set.Date.UTC()
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sets, nil
}

func deletePersonalRecords(ctx context.Context, q querier, userID int) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM prs WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
