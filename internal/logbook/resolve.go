package logbook

import "time"

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionNoOp   Action = "noop"
)

func (a Action) String() string {
	return string(a)
}

// Decision is what ingesting a set means for the personal record of its key.
// Weight and Date are set only for create and update.
type Decision struct {
	Action Action    `json:"action"`
	Weight float64   `json:"weight,omitempty"`
	Date   time.Time `json:"date,omitzero"`
}

// Resolve decides how a new set of weight lifted at date affects the current
// record for its key. existing is nil when no record exists yet.
//
// The record only moves on a strictly heavier weight: matching it again,
// at any date, is a no-op, so a record's date is when it was first reached.
func Resolve(existing *PersonalRecord, weight float64, date time.Time) Decision {
	switch {
	case existing == nil:
		return Decision{Action: ActionCreate, Weight: weight, Date: date}
	case weight > existing.Weight:
		return Decision{Action: ActionUpdate, Weight: weight, Date: date}
	default:
		return Decision{Action: ActionNoOp}
	}
}
