package editsession

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func validSnapshot(t *testing.T, entity testEntity) Snapshot {
	t.Helper()

	kv := newFakeKV()
	store := NewStore[testEntity](kv, "bill", slog.Default())
	require.NoError(t, store.BeginEdit(context.Background(), entity))

	snap, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	return snap
}

func TestDetermineMode(t *testing.T) {
	now := time.Now()
	entity := testEntity{ID: 12, Name: "pending", Reading: 88}

	tests := []struct {
		name     string
		marker   string
		snap     Snapshot
		wantMode Mode
		wantRec  bool
	}{
		{
			name:     "new marker ignores a valid session",
			marker:   MarkerNew,
			snap:     validSnapshot(t, entity),
			wantMode: ModeCreate,
		},
		{
			name:     "no marker with valid session",
			marker:   "",
			snap:     validSnapshot(t, entity),
			wantMode: ModeEdit,
			wantRec:  true,
		},
		{
			name:     "edit marker with valid session",
			marker:   MarkerEdit,
			snap:     validSnapshot(t, entity),
			wantMode: ModeEdit,
			wantRec:  true,
		},
		{
			name:     "empty mailbox",
			marker:   "",
			snap:     Snapshot{},
			wantMode: ModeCreate,
		},
		{
			name:   "flag cleared",
			marker: "",
			snap: func() Snapshot {
				s := validSnapshot(t, entity)
				s.IsEdit = "false"
				return s
			}(),
			wantMode: ModeCreate,
		},
		{
			name:   "tampered session id",
			marker: "",
			snap: func() Snapshot {
				s := validSnapshot(t, entity)
				s.SessionID = "someone-else"
				return s
			}(),
			wantMode: ModeCreate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, rec := DetermineMode[testEntity](tt.marker, tt.snap, now)
			assert.Equal(t, tt.wantMode, mode)
			if tt.wantRec {
				require.NotNil(t, rec)
				assert.Equal(t, entity, *rec)
			} else {
				assert.Nil(t, rec)
			}
		})
	}
}

func TestDetermineMode_ExpiredSession(t *testing.T) {
	snap := validSnapshot(t, testEntity{ID: 1})

	mode, rec := DetermineMode[testEntity]("", snap, time.Now().Add(SessionTTL+time.Minute))
	assert.Equal(t, ModeCreate, mode)
	assert.Nil(t, rec)
}
