package store

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// ErrNoSession is returned when contents or actions are requested without
// a session built by NewSession.
var ErrNoSession = errors.New("must be used within a session")

// Session owns the id sequence, the store and the action surface for one
// run of the application.
type Session struct {
	seq     *Sequence
	store   *Store
	actions *Actions
	log     log.FieldLogger
}

// NewSession builds an empty session. logger may be nil.
func NewSession(logger log.FieldLogger) *Session {
	if logger == nil {
		logger = discardLogger()
	}
	seq := &Sequence{}
	st := NewStore(seq, logger.WithField("component", "store"))
	s := &Session{
		seq:     seq,
		store:   st,
		actions: &Actions{store: st},
		log:     logger,
	}
	logger.Debug("session started")
	return s
}

// Store exposes the item store for readers that subscribe to snapshots.
func (s *Session) Store() *Store { return s.store }

// Actions returns the session's action surface. The pointer is the same on
// every call.
func (s *Session) Actions() *Actions { return s.actions }

func (s *Session) valid() bool { return s != nil && s.store != nil && s.actions != nil }

// UseTodos returns the current contents of s.
func UseTodos(s *Session) (Snapshot, error) {
	if !s.valid() {
		return Snapshot{}, fmt.Errorf("UseTodos: %w", ErrNoSession)
	}
	return s.store.Snapshot(), nil
}

// UseActions returns the action surface of s.
func UseActions(s *Session) (*Actions, error) {
	if !s.valid() {
		return nil, fmt.Errorf("UseActions: %w", ErrNoSession)
	}
	return s.actions, nil
}

// MustUseActions is UseActions for wiring code; it panics without a session.
func MustUseActions(s *Session) *Actions {
	a, err := UseActions(s)
	if err != nil {
		panic(err)
	}
	return a
}

func discardLogger() log.FieldLogger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}
