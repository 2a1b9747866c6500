package editsession

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type fakeKV struct {
	data map[string][]byte
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	return f.data[key], nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

type testEntity struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Reading float64 `json:"reading"`
}

func newTestStore(kv KV) *Store[testEntity] {
	return NewStore[testEntity](kv, "bill", slog.Default())
}

func TestStore_RoundTrip(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	ctx := context.Background()

	entity := testEntity{ID: 7, Name: "march bill", Reading: 1204.5}
	require.NoError(t, store.BeginEdit(ctx, entity))

	got, err := store.ReadEdit(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity, *got)

	// Session ID flag must match the ID embedded in the record.
	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.SessionID)
	assert.Contains(t, string(snap.Record), snap.SessionID)
	assert.Equal(t, "true", snap.IsEdit)
	assert.NotEmpty(t, snap.Timestamp)
}

func TestStore_BeginEditOverwrites(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	ctx := context.Background()

	require.NoError(t, store.BeginEdit(ctx, testEntity{ID: 1, Name: "first"}))
	firstSnap, err := store.Snapshot(ctx)
	require.NoError(t, err)

	require.NoError(t, store.BeginEdit(ctx, testEntity{ID: 2, Name: "second"}))

	got, err := store.ReadEdit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)

	secondSnap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, firstSnap.SessionID, secondSnap.SessionID)
}

func TestStore_Expiry(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		age     time.Duration
		wantErr bool
	}{
		{name: "just written", age: 0, wantErr: false},
		{name: "one minute before expiry", age: 23*time.Hour + 59*time.Minute, wantErr: false},
		{name: "one millisecond past window", age: SessionTTL + time.Millisecond, wantErr: true},
		{name: "exactly at window", age: SessionTTL, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newFakeKV()
			store := newTestStore(kv)
			ctx := context.Background()

			store.now = func() time.Time { return now.Add(-tt.age) }
			require.NoError(t, store.BeginEdit(ctx, testEntity{ID: 3}))

			store.now = func() time.Time { return now }
			_, err := store.ReadEdit(ctx)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStore_SessionIDMismatch(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	ctx := context.Background()

	require.NoError(t, store.BeginEdit(ctx, testEntity{ID: 4}))
	require.NoError(t, kv.Set(ctx, "bill.editSessionId", []byte("tampered")))

	_, err := store.ReadEdit(ctx)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestStore_CorruptRecord(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	ctx := context.Background()

	require.NoError(t, store.BeginEdit(ctx, testEntity{ID: 5}))
	require.NoError(t, kv.Set(ctx, "bill.editRecord", []byte("{not json")))

	_, err := store.ReadEdit(ctx)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestStore_PartialMailboxIsInvalid(t *testing.T) {
	keys := []string{"bill.editRecord", "bill.isEditOperation", "bill.editTimestamp", "bill.editSessionId"}

	for _, missing := range keys {
		t.Run("missing "+missing, func(t *testing.T) {
			kv := newFakeKV()
			store := newTestStore(kv)
			ctx := context.Background()

			require.NoError(t, store.BeginEdit(ctx, testEntity{ID: 6}))
			require.NoError(t, kv.Delete(ctx, missing))

			_, err := store.ReadEdit(ctx)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	ctx := context.Background()

	// Clearing an empty mailbox must not error.
	require.NoError(t, store.ClearEdit(ctx))

	require.NoError(t, store.BeginEdit(ctx, testEntity{ID: 8}))
	require.NoError(t, store.ClearEdit(ctx))
	require.NoError(t, store.ClearEdit(ctx))

	assert.Empty(t, kv.data)

	_, err := store.ReadEdit(ctx)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestStore_TouchEditRefreshes(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	ctx := context.Background()

	base := time.Now()
	store.now = func() time.Time { return base }
	require.NoError(t, store.BeginEdit(ctx, testEntity{ID: 9, Reading: 10}))

	before, err := store.Snapshot(ctx)
	require.NoError(t, err)

	// A mutation twelve hours in rewrites the record and the timestamp but
	// keeps the session ID.
	store.now = func() time.Time { return base.Add(12 * time.Hour) }
	require.NoError(t, store.TouchEdit(ctx, testEntity{ID: 9, Reading: 25}))

	after, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.SessionID, after.SessionID)
	assert.NotEqual(t, before.Timestamp, after.Timestamp)

	// The refreshed touch keeps the session alive past the original window.
	store.now = func() time.Time { return base.Add(30 * time.Hour) }
	got, err := store.ReadEdit(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(25), got.Reading)
}

func TestStore_TouchEditWithoutSession(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)

	err := store.TouchEdit(context.Background(), testEntity{ID: 1})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestStore_RefreshTimestampExtendsValidity(t *testing.T) {
	kv := newFakeKV()
	store := newTestStore(kv)
	ctx := context.Background()

	base := time.Now()
	store.now = func() time.Time { return base }
	require.NoError(t, store.BeginEdit(ctx, testEntity{ID: 10}))

	store.now = func() time.Time { return base.Add(20 * time.Hour) }
	require.NoError(t, store.RefreshTimestamp(ctx))

	store.now = func() time.Time { return base.Add(30 * time.Hour) }
	_, err := store.ReadEdit(ctx)
	assert.NoError(t, err)
}

func TestStore_FamiliesDoNotCollide(t *testing.T) {
	kv := newFakeKV()
	bills := NewStore[testEntity](kv, "bill", slog.Default())
	customers := NewStore[testEntity](kv, "customer", slog.Default())
	ctx := context.Background()

	require.NoError(t, bills.BeginEdit(ctx, testEntity{ID: 1, Name: "bill"}))
	require.NoError(t, customers.BeginEdit(ctx, testEntity{ID: 2, Name: "customer"}))

	require.NoError(t, customers.ClearEdit(ctx))

	got, err := bills.ReadEdit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = customers.ReadEdit(ctx)
	assert.ErrorIs(t, err, ErrInvalid)
}
