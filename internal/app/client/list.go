package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"utilibill/internal/editsession"
)

// Keyed is implemented by every entity the list and form controllers manage.
type Keyed interface {
	Key() int64
}

// Confirmer asks the user to approve a destructive action.
type Confirmer func(prompt string) bool

// ListView drives one entity listing: loading rows, handing a row off to the
// form through the edit-session mailbox, and deleting rows in place.
type ListView[T Keyed] struct {
	backend Backend[T]
	session *editsession.Store[T]
	log     *slog.Logger
	items   []T
}

func NewListView[T Keyed](backend Backend[T], session *editsession.Store[T], log *slog.Logger) *ListView[T] {
	return &ListView[T]{
		backend: backend,
		session: session,
		log:     log.With(slog.String("view", session.Family()+" list")),
	}
}

func (v *ListView[T]) Load(ctx context.Context) error {
	items, err := v.backend.List(ctx)
	if err != nil {
		return err
	}
	v.items = items
	return nil
}

func (v *ListView[T]) Items() []T {
	return v.items
}

// OnAdd discards any pending edit session so the form opens blank.
func (v *ListView[T]) OnAdd(ctx context.Context) error {
	return v.session.ClearEdit(ctx)
}

// OnEdit replaces whatever session is pending with a fresh one for item. The
// form picks it up on its next mount.
func (v *ListView[T]) OnEdit(ctx context.Context, item T) error {
	if err := v.session.ClearEdit(ctx); err != nil {
		return err
	}
	return v.session.BeginEdit(ctx, item)
}

// OnDelete removes the row server-side and drops it from the loaded slice
// without refetching. A declined confirmation is not an error.
func (v *ListView[T]) OnDelete(ctx context.Context, id int64, confirm Confirmer) error {
	if confirm != nil && !confirm(fmt.Sprintf("delete %s #%d?", v.session.Family(), id)) {
		return nil
	}

	if err := v.backend.Delete(ctx, id); err != nil {
		return err
	}

	for i, item := range v.items {
		if item.Key() == id {
			v.items = append(v.items[:i], v.items[i+1:]...)
			break
		}
	}
	return nil
}
