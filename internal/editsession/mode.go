package editsession

import "time"

// Query markers carried on the form route. The list view appends MarkerEdit
// when handing off a session and the "new" action appends MarkerNew.
const (
	MarkerNew  = "new"
	MarkerEdit = "edit"
)

// Snapshot holds the raw mailbox entries for one family: the serialized
// record plus the three sibling flags, uninterpreted.
type Snapshot struct {
	Record    []byte
	IsEdit    string
	Timestamp string
	SessionID string
}

// Mode is the operating mode a form settles into at mount time.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// DetermineMode decides, purely from the URL marker and the mailbox snapshot,
// whether a form mounts in create or edit mode. An explicit MarkerNew always
// wins, even over a valid session. Otherwise a valid session yields ModeEdit
// together with the hydrated record; any invalid, expired or absent session
// falls back to ModeCreate with a nil record.
func DetermineMode[T any](marker string, snap Snapshot, now time.Time) (Mode, *T) {
	if marker == MarkerNew {
		return ModeCreate, nil
	}
	env, err := decode[T](snap, now)
	if err != nil {
		return ModeCreate, nil
	}
	return ModeEdit, &env.Fields
}
