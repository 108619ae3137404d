package store

import (
	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/tada/internal/model"
)

// In-memory item store. One per session, no locking: every call happens on
// the session's event loop.

// Snapshot is a read-only copy of the store contents at one version.
type Snapshot struct {
	Version uint64
	Todos   []model.Todo
}

// Len is the number of todos in the snapshot.
func (s Snapshot) Len() int { return len(s.Todos) }

// Empty reports whether the snapshot holds no todos.
func (s Snapshot) Empty() bool { return len(s.Todos) == 0 }

// Find returns the todo with the given id, if present.
func (s Snapshot) Find(id int) (model.Todo, bool) {
	for _, t := range s.Todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

// Listener receives a snapshot after each mutation.
type Listener func(Snapshot)

type subscription struct {
	id int
	fn Listener
}

// Store owns the ordered todo list and notifies subscribers on change.
type Store struct {
	seq     *Sequence
	todos   []model.Todo
	version uint64

	subs    []subscription
	nextSub int

	log log.FieldLogger
}

// NewStore returns an empty store drawing ids from seq.
func NewStore(seq *Sequence, logger log.FieldLogger) *Store {
	if logger == nil {
		logger = discardLogger()
	}
	return &Store{seq: seq, todos: []model.Todo{}, log: logger}
}

// Create appends a todo with a fresh id. Any title is accepted, including "".
func (s *Store) Create(title string) model.Todo {
	t := model.Todo{ID: s.seq.Next(), Title: title}
	s.todos = append(s.todos, t)
	s.version++
	s.log.WithFields(log.Fields{"id": t.ID, "title": t.Title, "version": s.version}).Debug("todo created")
	s.publish()
	return t
}

// Delete removes the todo with the given id. It reports whether anything
// was removed; a missing id leaves the store untouched and notifies no one.
func (s *Store) Delete(id int) bool {
	idx := -1
	for i, t := range s.todos {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.log.WithField("id", id).Debug("delete: no such todo")
		return false
	}
	s.todos = append(s.todos[:idx], s.todos[idx+1:]...)
	s.version++
	s.log.WithFields(log.Fields{"id": id, "version": s.version}).Debug("todo deleted")
	s.publish()
	return true
}

// Snapshot returns the current contents.
func (s *Store) Snapshot() Snapshot {
	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	return Snapshot{Version: s.version, Todos: out}
}

// Len is the number of todos currently held.
func (s *Store) Len() int { return len(s.todos) }

// Subscribe registers fn for every future snapshot. Listeners run
// synchronously in subscription order. The returned func removes the
// subscription and is safe to call more than once.
func (s *Store) Subscribe(fn Listener) func() {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) publish() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.Snapshot()
	// listeners may unsubscribe while we iterate
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(snap)
	}
}
