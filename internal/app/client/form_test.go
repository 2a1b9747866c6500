package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"utilibill/internal/editsession"
)

func TestFormView_MountCreateModeOnEmptyMailbox(t *testing.T) {
	ctx := context.Background()
	form := NewFormView[testItem](newFakeBackend(), newTestSession(newMemKV()), slog.Default())

	require.NoError(t, form.Mount(ctx, ""))

	assert.Equal(t, editsession.ModeCreate, form.Mode())
	assert.Equal(t, testItem{}, form.Record())
}

func TestFormView_MountEditModeFromMailbox(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(newMemKV())
	require.NoError(t, session.BeginEdit(ctx, testItem{ID: 5, Name: "pending"}))

	form := NewFormView[testItem](newFakeBackend(), session, slog.Default())
	require.NoError(t, form.Mount(ctx, ""))

	assert.Equal(t, editsession.ModeEdit, form.Mode())
	assert.Equal(t, int64(5), form.Record().ID)
	assert.Equal(t, "pending", form.Record().Name)
}

func TestFormView_MountNewMarkerIgnoresPendingSession(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	session := newTestSession(kv)
	require.NoError(t, session.BeginEdit(ctx, testItem{ID: 5, Name: "pending"}))

	form := NewFormView[testItem](newFakeBackend(), session, slog.Default())
	require.NoError(t, form.Mount(ctx, editsession.MarkerNew))

	assert.Equal(t, editsession.ModeCreate, form.Mode())
	// The pending session is discarded, not left to resurrect later.
	assert.Empty(t, kv.data)
}

func TestFormView_MountEditMarkerResumesPendingSession(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(newMemKV())
	require.NoError(t, session.BeginEdit(ctx, testItem{ID: 9, Name: "handed off"}))

	form := NewFormView[testItem](newFakeBackend(), session, slog.Default())
	require.NoError(t, form.Mount(ctx, editsession.MarkerEdit))

	assert.Equal(t, editsession.ModeEdit, form.Mode())
	assert.Equal(t, int64(9), form.Record().ID)
}

func TestFormView_MountEditMarkerWithoutSessionFallsBackToCreate(t *testing.T) {
	ctx := context.Background()
	form := NewFormView[testItem](newFakeBackend(), newTestSession(newMemKV()), slog.Default())

	require.NoError(t, form.Mount(ctx, editsession.MarkerEdit))

	assert.Equal(t, editsession.ModeCreate, form.Mode())
}

func TestFormView_MountFailsWhenAnyRefLoadFails(t *testing.T) {
	ctx := context.Background()
	loaded := false
	form := NewFormView[testItem](newFakeBackend(), newTestSession(newMemKV()), slog.Default(),
		func(context.Context) error { loaded = true; return nil },
		func(context.Context) error { return errors.New("branches unavailable") },
	)

	err := form.Mount(ctx, "")
	assert.Error(t, err)
	_ = loaded
}

func TestFormView_SetFieldTouchesSessionInEditMode(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(newMemKV())
	require.NoError(t, session.BeginEdit(ctx, testItem{ID: 5, Name: "before"}))

	form := NewFormView[testItem](newFakeBackend(), session, slog.Default())
	require.NoError(t, form.Mount(ctx, ""))

	require.NoError(t, form.SetField(ctx, func(item *testItem) {
		item.Name = "after"
	}))

	record, err := session.ReadEdit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "after", record.Name)
}

func TestFormView_SubmitCreate(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	form := NewFormView[testItem](backend, newTestSession(newMemKV()), slog.Default())
	require.NoError(t, form.Mount(ctx, editsession.MarkerNew))

	require.NoError(t, form.SetField(ctx, func(item *testItem) {
		item.Name = "created"
	}))

	id, err := form.Submit(ctx, nil)
	require.NoError(t, err)
	assert.NotZero(t, id)
	require.Len(t, backend.created, 1)
	assert.Equal(t, "created", backend.created[0].Name)
}

func TestFormView_SubmitEditClearsMailboxAndResets(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	session := newTestSession(kv)
	require.NoError(t, session.BeginEdit(ctx, testItem{ID: 5, Name: "old"}))

	backend := newFakeBackend()
	form := NewFormView[testItem](backend, session, slog.Default())
	require.NoError(t, form.Mount(ctx, ""))

	require.NoError(t, form.SetField(ctx, func(item *testItem) {
		item.Name = "new name"
	}))

	id, err := form.Submit(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, "new name", backend.updated[5].Name)

	assert.Empty(t, kv.data)
	assert.Equal(t, editsession.ModeCreate, form.Mode())
	assert.Equal(t, testItem{}, form.Record())
}

func TestFormView_SubmitValidationFailureBlocksNetwork(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	form := NewFormView[testItem](backend, newTestSession(newMemKV()), slog.Default())
	require.NoError(t, form.Mount(ctx, editsession.MarkerNew))

	_, err := form.Submit(ctx, func(testItem) error {
		return errors.New("name is required")
	})

	assert.Error(t, err)
	assert.Empty(t, backend.created)
	assert.Empty(t, backend.updated)
}

func TestFormView_CancelClearsMailbox(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	session := newTestSession(kv)
	require.NoError(t, session.BeginEdit(ctx, testItem{ID: 5}))

	form := NewFormView[testItem](newFakeBackend(), session, slog.Default())
	require.NoError(t, form.Mount(ctx, ""))

	require.NoError(t, form.Cancel(ctx))

	assert.Empty(t, kv.data)
	assert.Equal(t, editsession.ModeCreate, form.Mode())
}

func TestFormView_UnmountRefreshesEditSession(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	session := newTestSession(kv)
	require.NoError(t, session.BeginEdit(ctx, testItem{ID: 5}))

	form := NewFormView[testItem](newFakeBackend(), session, slog.Default())
	require.NoError(t, form.Mount(ctx, ""))

	before := string(kv.data["test.editTimestamp"])
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, form.Unmount(ctx))
	after := string(kv.data["test.editTimestamp"])

	assert.NotEqual(t, before, after)

	record, err := session.ReadEdit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), record.ID)
}

func TestFormView_UnmountInCreateModeIsNoop(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	form := NewFormView[testItem](newFakeBackend(), newTestSession(kv), slog.Default())
	require.NoError(t, form.Mount(ctx, ""))

	require.NoError(t, form.Unmount(ctx))
	assert.Empty(t, kv.data)
}
