package tui

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/ui"
)

// List renders the store contents, one ListItem per todo in store order.
// Rows are keyed by id: an item survives any snapshot that still holds it.
type List struct {
	actions *store.Actions

	snap   store.Snapshot
	items  []*ListItem
	byID   map[int]*ListItem
	cursor int

	focused bool
	view    string
	dirty   bool
	renders int

	unsubscribe func()
	log         log.FieldLogger
}

// NewList subscribes to st. actions is handed down to the rows for their
// delete triggers.
func NewList(st *store.Store, actions *store.Actions, logger log.FieldLogger) (*List, error) {
	if st == nil || actions == nil {
		return nil, fmt.Errorf("NewList: %w", store.ErrNoSession)
	}
	l := &List{
		actions: actions,
		byID:    map[int]*ListItem{},
		dirty:   true,
		log:     orDiscard(logger).WithField("unit", "list"),
	}
	l.apply(st.Snapshot())
	l.unsubscribe = st.Subscribe(l.apply)
	return l, nil
}

func (l *List) apply(snap store.Snapshot) {
	items := make([]*ListItem, 0, snap.Len())
	byID := make(map[int]*ListItem, snap.Len())
	for _, t := range snap.Todos {
		it, ok := l.byID[t.ID]
		if !ok {
			// actions was checked in NewList
			it, _ = NewListItem(t, l.actions, l.log)
		}
		items = append(items, it)
		byID[t.ID] = it
	}
	l.snap, l.items, l.byID = snap, items, byID
	l.clamp()
	l.dirty = true
}

func (l *List) clamp() {
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// Close drops the store subscription.
func (l *List) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
}

func (l *List) Items() []*ListItem { return l.items }
func (l *List) Len() int           { return len(l.items) }

// Selected returns the row under the cursor, or nil when empty.
func (l *List) Selected() *ListItem {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[l.cursor]
}

func (l *List) Cursor() int { return l.cursor }

func (l *List) SetFocused(v bool) {
	if l.focused != v {
		l.focused = v
		l.dirty = true
	}
}

func (l *List) Up() {
	if l.cursor > 0 {
		l.cursor--
		l.dirty = true
	}
}

func (l *List) Down() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
		l.dirty = true
	}
}

// DeleteSelected deletes the row under the cursor.
func (l *List) DeleteSelected() bool {
	it := l.Selected()
	if it == nil {
		return false
	}
	return it.Delete()
}

// View is empty when there are no todos.
func (l *List) View() string {
	if !l.dirty {
		return l.view
	}
	l.renders++
	l.log.WithFields(log.Fields{"renders": l.renders, "version": l.snap.Version}).Debug("render")
	l.dirty = false
	if l.snap.Empty() {
		l.view = ""
		return l.view
	}
	t := ui.Current()
	rows := make([]string, 0, len(l.items))
	for i, it := range l.items {
		prefix := "  "
		if l.focused && i == l.cursor {
			prefix = t.Selected.Render(t.SymCursor) + " "
		}
		rows = append(rows, prefix+it.View())
	}
	l.view = strings.Join(rows, "\n")
	return l.view
}

func (l *List) Renders() int { return l.renders }
