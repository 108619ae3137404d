package store

import "github.com/idilsaglam/tada/internal/model"

// Actions is the mutation surface of a session. It is built once by
// NewSession and never replaced, so holders keep the same pointer for the
// whole session. Holding Actions gives no access to the contents.
type Actions struct {
	store *Store
}

// Create adds a todo titled title.
func (a *Actions) Create(title string) model.Todo { return a.store.Create(title) }

// Delete removes the todo with id; unknown ids are ignored.
func (a *Actions) Delete(id int) bool { return a.store.Delete(id) }
