package logbook

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

var _ Store = (*TestStore)(nil)

// TestStore is an in-memory Store for tests and local runs without postgres.
// A record locked by GetPersonalRecordForUpdate or created in a transaction stays
// locked until that transaction ends. Creating an existing key fails with ErrConflict
// and a failed transaction is undone. Record locks sit under a per-user lock:
// ingest holds it shared, bulk deletes (clear, rebuild) hold it exclusively, so no
// two transactions can wait on each other's records.
// Reads are not isolated from in-flight transactions.
type TestStore struct {
	mu sync.Mutex

	users         map[int]bool
	sets          []Set
	prs           map[RecordKey]PersonalRecord
	mainExercises map[int]MainExercise
	rowLocks      map[RecordKey]*sync.Mutex
	userLocks     map[int]*sync.RWMutex

	setSeq, prSeq, mainExerciseSeq int

	// injected errors, keyed by operation name, each returned once
	failures map[string]error
}

func NewTestStore(userIDs ...int) *TestStore {
	s := &TestStore{
		users:         make(map[int]bool),
		prs:           make(map[RecordKey]PersonalRecord),
		mainExercises: make(map[int]MainExercise),
		rowLocks:      make(map[RecordKey]*sync.Mutex),
		userLocks:     make(map[int]*sync.RWMutex),
		failures:      make(map[string]error),
	}
	for _, id := range userIDs {
		s.users[id] = true
	}
	return s
}

// AddUser makes userID a valid owner for rows.
func (s *TestStore) AddUser(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = true
}

// FailNext makes the next call of op (e.g. "UpdatePersonalRecord") return err.
func (s *TestStore) FailNext(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// takeFailure must be called with s.mu held.
func (s *TestStore) takeFailure(op string) error {
	err, ok := s.failures[op]
	if !ok {
		return nil
	}
	delete(s.failures, op)
	return err
}

func (s *TestStore) rowLock(key RecordKey) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.rowLocks[key]
	if !ok {
		l = &sync.Mutex{}
		s.rowLocks[key] = l
	}
	return l
}

func (s *TestStore) userLock(userID int) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.RWMutex{}
		s.userLocks[userID] = l
	}
	return l
}

func (s *TestStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &testTx{
		store:     s,
		held:      make(map[RecordKey]*sync.Mutex),
		heldUsers: make(map[int]*userHold),
	}
	committed := false
	defer func() {
		if !committed {
			tx.rollback()
		}
		tx.release()
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *TestStore) ListPersonalRecords(_ context.Context, userID int) ([]PersonalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("ListPersonalRecords"); err != nil {
		return nil, err
	}
	return s.personalRecordsOf(userID), nil
}

func (s *TestStore) ListSets(_ context.Context, userID int) ([]Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("ListSets"); err != nil {
		return nil, err
	}
	return s.setsOf(userID), nil
}

func (s *TestStore) ListMainExercises(_ context.Context, userID int) ([]MainExercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("ListMainExercises"); err != nil {
		return nil, err
	}

	exercises := make([]MainExercise, 0)
	for _, me := range s.mainExercises {
		if me.UserID == userID {
			exercises = append(exercises, me)
		}
	}
	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].Name < exercises[j].Name
	})
	return exercises, nil
}

func (s *TestStore) DeletePersonalRecords(ctx context.Context, userID int) (int64, error) {
	var deleted int64
	err := s.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		deleted, err = tx.DeletePersonalRecords(ctx, userID)
		return err
	})
	return deleted, err
}

func (s *TestStore) DeleteSets(_ context.Context, userID int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("DeleteSets"); err != nil {
		return 0, err
	}

	kept := s.sets[:0]
	var deleted int64
	for _, set := range s.sets {
		if set.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, set)
	}
	s.sets = kept
	return deleted, nil
}

func (s *TestStore) UpsertMainExercise(_ context.Context, exercise MainExercise) (*MainExercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("UpsertMainExercise"); err != nil {
		return nil, err
	}
	if !s.users[exercise.UserID] {
		return nil, ErrUserNotFound
	}

	for id, me := range s.mainExercises {
		if me.UserID == exercise.UserID && me.Name == exercise.Name {
			me.TypicalReps = exercise.TypicalReps
			s.mainExercises[id] = me
			return &me, nil
		}
	}

	s.mainExerciseSeq++
	exercise.ID = s.mainExerciseSeq
	s.mainExercises[exercise.ID] = exercise
	return &exercise, nil
}

func (s *TestStore) DeleteMainExercise(_ context.Context, userID, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("DeleteMainExercise"); err != nil {
		return err
	}

	me, ok := s.mainExercises[id]
	if !ok || me.UserID != userID {
		return ErrMainExerciseNotFound
	}
	delete(s.mainExercises, id)
	return nil
}

// personalRecordsOf must be called with s.mu held.
func (s *TestStore) personalRecordsOf(userID int) []PersonalRecord {
	prs := make([]PersonalRecord, 0)
	for _, pr := range s.prs {
		if pr.UserID == userID {
			prs = append(prs, pr)
		}
	}
	sort.Slice(prs, func(i, j int) bool {
		if prs[i].Exercise != prs[j].Exercise {
			return prs[i].Exercise < prs[j].Exercise
		}
		return prs[i].Reps < prs[j].Reps
	})
	return prs
}

// setsOf must be called with s.mu held.
func (s *TestStore) setsOf(userID int) []Set {
	sets := make([]Set, 0)
	for _, set := range s.sets {
		if set.UserID == userID {
			sets = append(sets, set)
		}
	}
	sort.Slice(sets, func(i, j int) bool {
		if !sets[i].Date.Equal(sets[j].Date) {
			return sets[i].Date.After(sets[j].Date)
		}
		return sets[i].ID > sets[j].ID
	})
	return sets
}

type userHold struct {
	lock      *sync.RWMutex
	exclusive bool
}

type testTx struct {
	store     *TestStore
	held      map[RecordKey]*sync.Mutex
	heldUsers map[int]*userHold
	// undo entries run in reverse order, with store.mu held
	undo []func()
}

// errLockUpgrade is returned when a transaction that already took a user's lock
// shared asks for it exclusively; waiting there could never end.
var errLockUpgrade = errors.New("test store: cannot upgrade shared user lock")

// lockUser blocks until this transaction holds the user lock in at least the asked mode.
func (t *testTx) lockUser(userID int, exclusive bool) error {
	if h, ok := t.heldUsers[userID]; ok {
		if exclusive && !h.exclusive {
			return errLockUpgrade
		}
		return nil
	}
	l := t.store.userLock(userID)
	if exclusive {
		l.Lock()
	} else {
		l.RLock()
	}
	t.heldUsers[userID] = &userHold{lock: l, exclusive: exclusive}
	return nil
}

// lock blocks until the row lock for key is held by this transaction.
// Under an exclusive user lock no one else can reach the user's records.
func (t *testTx) lock(key RecordKey) error {
	if err := t.lockUser(key.UserID, false); err != nil {
		return err
	}
	if t.heldUsers[key.UserID].exclusive {
		return nil
	}
	if _, ok := t.held[key]; ok {
		return nil
	}
	l := t.store.rowLock(key)
	l.Lock()
	t.held[key] = l
	return nil
}

func (t *testTx) rollback() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *testTx) release() {
	for key, l := range t.held {
		l.Unlock()
		delete(t.held, key)
	}
	for userID, h := range t.heldUsers {
		if h.exclusive {
			h.lock.Unlock()
		} else {
			h.lock.RUnlock()
		}
		delete(t.heldUsers, userID)
	}
}

func (t *testTx) AddSet(_ context.Context, set Set) (*Set, error) {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("AddSet"); err != nil {
		return nil, err
	}
	if !s.users[set.UserID] {
		return nil, ErrUserNotFound
	}

	s.setSeq++
	set.ID = s.setSeq
	s.sets = append(s.sets, set)

	id := set.ID
	t.undo = append(t.undo, func() {
		for i := range s.sets {
			if s.sets[i].ID == id {
				s.sets = append(s.sets[:i], s.sets[i+1:]...)
				return
			}
		}
	})
	return &set, nil
}

func (t *testTx) GetPersonalRecordForUpdate(_ context.Context, key RecordKey) (*PersonalRecord, error) {
	s := t.store
	s.mu.Lock()
	if err := s.takeFailure("GetPersonalRecordForUpdate"); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	_, exists := s.prs[key]
	s.mu.Unlock()

	// like SELECT ... FOR UPDATE, a missing row locks nothing
	if !exists {
		return nil, nil
	}

	if err := t.lock(key); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	pr, ok := s.prs[key]
	if !ok {
		// deleted while we were waiting for the lock
		return nil, nil
	}
	return &pr, nil
}

func (t *testTx) CreatePersonalRecord(_ context.Context, pr PersonalRecord) (*PersonalRecord, error) {
	key := pr.Key()
	if err := t.lock(key); err != nil {
		return nil, err
	}

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("CreatePersonalRecord"); err != nil {
		return nil, err
	}
	if !s.users[pr.UserID] {
		return nil, ErrUserNotFound
	}
	if _, exists := s.prs[key]; exists {
		return nil, ErrConflict
	}

	s.prSeq++
	pr.ID = s.prSeq
	s.prs[key] = pr
	t.undo = append(t.undo, func() {
		delete(s.prs, key)
	})
	return &pr, nil
}

func (t *testTx) UpdatePersonalRecord(_ context.Context, id int, weight float64, date time.Time) error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("UpdatePersonalRecord"); err != nil {
		return err
	}

	for key, pr := range s.prs {
		if pr.ID != id {
			continue
		}
		previous := pr
		pr.Weight = weight
		pr.Date = date
		s.prs[key] = pr
		t.undo = append(t.undo, func() {
			s.prs[key] = previous
		})
		return nil
	}
	return ErrNotFound
}

func (t *testTx) DeletePersonalRecords(_ context.Context, userID int) (int64, error) {
	s := t.store
	s.mu.Lock()
	err := s.takeFailure("DeletePersonalRecords")
	s.mu.Unlock()
	if err != nil {
		return 0, err
	}

	if err := t.lockUser(userID, true); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for key, pr := range s.prs {
		if key.UserID != userID {
			continue
		}
		delete(s.prs, key)
		deleted++
		t.undo = append(t.undo, func() {
			s.prs[key] = pr
		})
	}
	return deleted, nil
}

func (t *testTx) ListPersonalRecords(_ context.Context, userID int) ([]PersonalRecord, error) {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("ListPersonalRecords"); err != nil {
		return nil, err
	}
	return s.personalRecordsOf(userID), nil
}

func (t *testTx) ListSets(_ context.Context, userID int) ([]Set, error) {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("ListSets"); err != nil {
		return nil, err
	}
	return s.setsOf(userID), nil
}
