package logbook

import "time"

// Set is one logged performance event. Sets are append-only.
type Set struct {
	ID       int       `json:"id"`
	UserID   int       `json:"-"`
	Exercise string    `json:"exercise"`
	Weight   float64   `json:"weight"`
	Reps     int       `json:"reps"`
	RPE      *float64  `json:"rpe"`
	Date     time.Time `json:"date"`
}

// PersonalRecord is the heaviest weight logged for one (user, exercise, reps) key,
// dated at the set that first reached it.
type PersonalRecord struct {
	ID       int       `json:"id"`
	UserID   int       `json:"-"`
	Exercise string    `json:"exercise"`
	Reps     int       `json:"reps"`
	Weight   float64   `json:"weight"`
	Date     time.Time `json:"date"`
}

func (pr PersonalRecord) Key() RecordKey {
	return RecordKey{UserID: pr.UserID, Exercise: pr.Exercise, Reps: pr.Reps}
}

// RecordKey identifies a personal record. Reps is an exact match: a PR at 3 reps
// and one at 5 reps of the same exercise are independent.
type RecordKey struct {
	UserID   int
	Exercise string
	Reps     int
}

type MainExercise struct {
	ID          int    `json:"id"`
	UserID      int    `json:"-"`
	Name        string `json:"name"`
	TypicalReps string `json:"typicalReps"`
}

// SetInput is what a client submits when logging a set.
type SetInput struct {
	Exercise string
	Weight   float64
	Reps     int
	RPE      *float64
}

type IngestResult struct {
	Set        Set              `json:"set"`
	PRDecision Decision         `json:"prDecision"`
	PRs        []PersonalRecord `json:"prs"`
	Sets       []Set            `json:"sets"`
}

type UserData struct {
	PRs           []PersonalRecord `json:"prs"`
	Sets          []Set            `json:"sets"`
	MainExercises []MainExercise   `json:"mainExercises"`
}
