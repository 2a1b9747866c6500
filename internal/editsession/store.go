package editsession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// SessionTTL is how long a session stays honored after the last touch.
const SessionTTL = 24 * time.Hour

var (
	// ErrInvalid is returned when the mailbox holds no usable session:
	// absent or partial keys, expired timestamp, session-ID mismatch, or a
	// record that fails to deserialize. Callers fall back to create mode
	// and must clear the mailbox.
	ErrInvalid = errors.New("edit session invalid")
)

const (
	keyRecord    = ".editRecord"
	keyIsEdit    = ".isEditOperation"
	keyTimestamp = ".editTimestamp"
	keySessionID = ".editSessionId"
)

// envelope is the payload written under the record key. Timestamp is
// milliseconds since epoch; SessionID must match the sibling flag entry.
type envelope[T any] struct {
	Fields    T      `json:"fields"`
	Timestamp int64  `json:"timestamp"`
	SessionID string `json:"sessionId"`
}

// Store is the mailbox for exactly one pending edit of entity family T.
// It holds four keys in the backing KV, namespaced per family so that, say,
// a bill session and a customer session never collide. Last writer wins:
// concurrent processes are not coordinated, a reader that loses the race
// simply sees an invalid session.
type Store[T any] struct {
	kv     KV
	family string
	log    *slog.Logger

	now   func() time.Time
	newID func() string
}

func NewStore[T any](kv KV, family string, log *slog.Logger) *Store[T] {
	return &Store[T]{
		kv:     kv,
		family: family,
		log:    log.With(slog.String("family", family)),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Family returns the entity-family namespace of this store.
func (s *Store[T]) Family() string {
	return s.family
}

// BeginEdit writes a fresh session for entity, fully overwriting any previous
// session in this family. The caller is expected to ClearEdit first when it
// wants to guarantee no stale leftovers.
func (s *Store[T]) BeginEdit(ctx context.Context, entity T) error {
	env := envelope[T]{
		Fields:    entity,
		Timestamp: s.now().UnixMilli(),
		SessionID: s.newID(),
	}
	return s.write(ctx, env)
}

// TouchEdit re-serializes the record with the given fields and a fresh
// timestamp, keeping the session ID. Called on every field mutation while in
// edit mode so an active edit does not expire mid-session. Returns ErrInvalid
// when there is no live session to touch.
func (s *Store[T]) TouchEdit(ctx context.Context, fields T) error {
	env, err := s.read(ctx)
	if err != nil {
		return err
	}
	env.Fields = fields
	env.Timestamp = s.now().UnixMilli()
	return s.write(ctx, *env)
}

// RefreshTimestamp extends the validity window without rewriting the record.
// Used on shutdown signals where re-serializing the fields is not worth it.
func (s *Store[T]) RefreshTimestamp(ctx context.Context) error {
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)
	if err := s.kv.Set(ctx, s.family+keyTimestamp, []byte(ts)); err != nil {
		return fmt.Errorf("refresh timestamp: %w", err)
	}
	return nil
}

// ReadEdit returns the pending record iff the session is valid: all four keys
// present, the edit flag set, matching session IDs and a last touch younger
// than SessionTTL. Anything else yields ErrInvalid; the caller must ClearEdit
// before proceeding in create mode.
func (s *Store[T]) ReadEdit(ctx context.Context) (*T, error) {
	env, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return &env.Fields, nil
}

// ClearEdit removes all four keys unconditionally. Idempotent.
func (s *Store[T]) ClearEdit(ctx context.Context) error {
	for _, suffix := range []string{keyRecord, keyIsEdit, keyTimestamp, keySessionID} {
		if err := s.kv.Delete(ctx, s.family+suffix); err != nil {
			return fmt.Errorf("clear %s%s: %w", s.family, suffix, err)
		}
	}
	return nil
}

// Snapshot reads the raw mailbox entries without interpreting them. Feed the
// result to DetermineMode for a pure, clock-injected mode decision.
func (s *Store[T]) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	var err error
	if snap.Record, err = s.kv.Get(ctx, s.family+keyRecord); err != nil {
		return snap, fmt.Errorf("snapshot record: %w", err)
	}
	if snap.IsEdit, err = s.getString(ctx, s.family+keyIsEdit); err != nil {
		return snap, err
	}
	if snap.Timestamp, err = s.getString(ctx, s.family+keyTimestamp); err != nil {
		return snap, err
	}
	if snap.SessionID, err = s.getString(ctx, s.family+keySessionID); err != nil {
		return snap, err
	}
	return snap, nil
}

func (s *Store[T]) getString(ctx context.Context, key string) (string, error) {
	b, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("snapshot %s: %w", key, err)
	}
	return string(b), nil
}

func (s *Store[T]) read(ctx context.Context) (*envelope[T], error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	env, err := decode[T](snap, s.now())
	if err != nil {
		s.log.Debug("mailbox read rejected", slog.String("reason", err.Error()))
		return nil, ErrInvalid
	}
	return env, nil
}

func (s *Store[T]) write(ctx context.Context, env envelope[T]) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal edit record: %w", err)
	}
	// Written as a set; a reader that races a partial write sees an
	// inconsistent mailbox and treats it as empty.
	if err := s.kv.Set(ctx, s.family+keyRecord, raw); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err := s.kv.Set(ctx, s.family+keyIsEdit, []byte("true")); err != nil {
		return fmt.Errorf("write edit flag: %w", err)
	}
	ts := strconv.FormatInt(env.Timestamp, 10)
	if err := s.kv.Set(ctx, s.family+keyTimestamp, []byte(ts)); err != nil {
		return fmt.Errorf("write timestamp: %w", err)
	}
	if err := s.kv.Set(ctx, s.family+keySessionID, []byte(env.SessionID)); err != nil {
		return fmt.Errorf("write session id: %w", err)
	}
	return nil
}

// decode validates a raw snapshot against the validity window and returns the
// envelope. All failure paths are reported as plain errors; the store logs
// and collapses them into ErrInvalid.
func decode[T any](snap Snapshot, now time.Time) (*envelope[T], error) {
	if len(snap.Record) == 0 || snap.IsEdit == "" || snap.Timestamp == "" || snap.SessionID == "" {
		return nil, errors.New("mailbox incomplete")
	}
	if snap.IsEdit != "true" {
		return nil, errors.New("edit flag not set")
	}
	ts, err := strconv.ParseInt(snap.Timestamp, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad timestamp %q", snap.Timestamp)
	}
	if now.Sub(time.UnixMilli(ts)) >= SessionTTL {
		return nil, errors.New("session expired")
	}
	var env envelope[T]
	if err := json.Unmarshal(snap.Record, &env); err != nil {
		return nil, fmt.Errorf("corrupt record: %v", err)
	}
	if env.SessionID == "" || env.SessionID != snap.SessionID {
		return nil, errors.New("session id mismatch")
	}
	return &env, nil
}
