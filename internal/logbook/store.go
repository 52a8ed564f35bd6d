package logbook

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=logbook_test

// Store is the record store behind the logbook. Reads outside of WithinTx see
// committed data only.
type Store interface {
	// WithinTx runs fn as one unit of work: everything fn writes through tx is
	// committed together, or rolled back together if fn (or the commit) fails.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	ListPersonalRecords(ctx context.Context, userID int) ([]PersonalRecord, error)
	ListSets(ctx context.Context, userID int) ([]Set, error)
	ListMainExercises(ctx context.Context, userID int) ([]MainExercise, error)

	DeletePersonalRecords(ctx context.Context, userID int) (int64, error)
	DeleteSets(ctx context.Context, userID int) (int64, error)

	// UpsertMainExercise creates the main exercise or updates the typical reps of
	// the user's existing one with the same name.
	UpsertMainExercise(ctx context.Context, exercise MainExercise) (*MainExercise, error)
	// DeleteMainExercise returns ErrMainExerciseNotFound when id does not belong to userID.
	DeleteMainExercise(ctx context.Context, userID, id int) error
}

// Tx is the transactional view handed to WithinTx callbacks.
type Tx interface {
	AddSet(ctx context.Context, set Set) (*Set, error)

	// GetPersonalRecordForUpdate returns the record for key and locks it until the
	// transaction ends. It returns nil, nil when no record exists.
	GetPersonalRecordForUpdate(ctx context.Context, key RecordKey) (*PersonalRecord, error)
	// CreatePersonalRecord returns ErrConflict when a record for the key already
	// exists. The transaction stays usable after a conflict.
	CreatePersonalRecord(ctx context.Context, pr PersonalRecord) (*PersonalRecord, error)
	UpdatePersonalRecord(ctx context.Context, id int, weight float64, date time.Time) error
	DeletePersonalRecords(ctx context.Context, userID int) (int64, error)

	ListPersonalRecords(ctx context.Context, userID int) ([]PersonalRecord, error)
	ListSets(ctx context.Context, userID int) ([]Set, error)
}
