package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"utilibill/internal/app/client/config"
	"utilibill/internal/domain/bill"
	"utilibill/internal/domain/customer"
	"utilibill/internal/domain/demandtype"
	"utilibill/internal/editsession"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := &config.Config{
		ServerAddress: "localhost:1",
		DataPath:      filepath.Join(t.TempDir(), "state.db"),
	}

	app, err := New(cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return app
}

func TestApp_LogoutClearsPendingEditSessions(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	require.NoError(t, app.store.SaveToken(ctx, "token-1"))
	require.NoError(t, app.billSession.BeginEdit(ctx, bill.Bill{ID: 7}))
	require.NoError(t, app.customerSession.BeginEdit(ctx, customer.Customer{ID: 3}))

	// The server is unreachable here; local cleanup must still happen.
	require.NoError(t, app.Logout(ctx))

	_, err := app.billSession.ReadEdit(ctx)
	assert.ErrorIs(t, err, editsession.ErrInvalid)
	_, err = app.customerSession.ReadEdit(ctx)
	assert.ErrorIs(t, err, editsession.ErrInvalid)

	record, err := app.store.Get(ctx, "bill.editRecord")
	require.NoError(t, err)
	assert.Nil(t, record)

	token, err := app.store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestApp_LogoutWithoutTokenStillClearsSessions(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	require.NoError(t, app.demandTypeSession.BeginEdit(ctx, demandtype.DemandType{ID: 2, Name: "Domestic"}))

	require.NoError(t, app.Logout(ctx))

	_, err := app.demandTypeSession.ReadEdit(ctx)
	assert.ErrorIs(t, err, editsession.ErrInvalid)
}
