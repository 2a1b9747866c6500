package client

import (
	"context"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"utilibill/internal/editsession"
)

// RefLoader fetches one reference collection a form depends on (for example
// the branch list for the employee form).
type RefLoader func(ctx context.Context) error

// FormView drives one entity form: mode determination from the edit-session
// mailbox, reference loading, field mutation and submission.
type FormView[T Keyed] struct {
	backend Backend[T]
	session *editsession.Store[T]
	refs    []RefLoader
	log     *slog.Logger

	mode   editsession.Mode
	record T
}

func NewFormView[T Keyed](backend Backend[T], session *editsession.Store[T], log *slog.Logger, refs ...RefLoader) *FormView[T] {
	return &FormView[T]{
		backend: backend,
		session: session,
		refs:    refs,
		log:     log.With(slog.String("view", session.Family()+" form")),
	}
}

// Mount loads every reference collection concurrently and determines the
// form mode from the mailbox. One failed reference fetch fails the whole
// mount; the form never renders with partial reference data.
func (v *FormView[T]) Mount(ctx context.Context, marker string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, load := range v.refs {
		g.Go(func() error {
			return load(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	snap, err := v.session.Snapshot(ctx)
	if err != nil {
		return err
	}

	mode, record := editsession.DetermineMode[T](marker, snap, time.Now())
	v.mode = mode
	if mode == editsession.ModeEdit && record != nil {
		v.record = *record
	} else {
		var zero T
		v.record = zero
		// A "new" marker or an invalid session leaves stale keys behind.
		if err := v.session.ClearEdit(ctx); err != nil {
			return err
		}
	}

	v.log.Debug("form mounted", slog.String("mode", v.mode.String()))
	return nil
}

func (v *FormView[T]) Mode() editsession.Mode {
	return v.mode
}

func (v *FormView[T]) Record() T {
	return v.record
}

// SetField applies one mutation to the working record. In edit mode the
// mailbox is rewritten with a fresh timestamp so the session stays live.
func (v *FormView[T]) SetField(ctx context.Context, mutate func(*T)) error {
	mutate(&v.record)

	if v.mode == editsession.ModeEdit {
		return v.session.TouchEdit(ctx, v.record)
	}
	return nil
}

// Submit validates and sends the record, then clears the mailbox and resets
// the form to create mode. Validation failure blocks the network call.
func (v *FormView[T]) Submit(ctx context.Context, validate func(T) error) (int64, error) {
	if validate != nil {
		if err := validate(v.record); err != nil {
			return 0, err
		}
	}

	var id int64
	if v.mode == editsession.ModeEdit {
		id = v.record.Key()
		if err := v.backend.Update(ctx, id, v.record); err != nil {
			return 0, err
		}
	} else {
		created, err := v.backend.Create(ctx, v.record)
		if err != nil {
			return 0, err
		}
		id = created
	}

	if err := v.session.ClearEdit(ctx); err != nil {
		return id, err
	}

	v.mode = editsession.ModeCreate
	var zero T
	v.record = zero
	return id, nil
}

// Unmount marks the session as still alive when the form is left open in
// edit mode, so a resumed edit gets a full validity window again.
func (v *FormView[T]) Unmount(ctx context.Context) error {
	if v.mode != editsession.ModeEdit {
		return nil
	}
	return v.session.RefreshTimestamp(ctx)
}

// Cancel abandons the form and clears any pending session.
func (v *FormView[T]) Cancel(ctx context.Context) error {
	if err := v.session.ClearEdit(ctx); err != nil {
		return err
	}
	v.mode = editsession.ModeCreate
	var zero T
	v.record = zero
	return nil
}
