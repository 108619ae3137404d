package tui

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/ui"
)

// ListItem renders one todo with its delete trigger. The todo never
// changes, so the row is rendered once and reused.
type ListItem struct {
	todo    model.Todo
	actions *store.Actions

	view     string
	rendered bool
	renders  int

	log log.FieldLogger
}

func NewListItem(t model.Todo, actions *store.Actions, logger log.FieldLogger) (*ListItem, error) {
	if actions == nil {
		return nil, fmt.Errorf("NewListItem: %w", store.ErrNoSession)
	}
	return &ListItem{
		todo:    t,
		actions: actions,
		log:     orDiscard(logger).WithFields(log.Fields{"unit": "item", "id": t.ID}),
	}, nil
}

func (i *ListItem) ID() int { return i.todo.ID }

// Delete triggers removal of this todo.
func (i *ListItem) Delete() bool { return i.actions.Delete(i.todo.ID) }

func (i *ListItem) View() string {
	if i.rendered {
		return i.view
	}
	i.renders++
	i.log.Debug("render")
	t := ui.Current()
	i.view = fmt.Sprintf("%d: %s %s", i.todo.ID, i.todo.Title, t.Muted.Render(t.DeleteLabel))
	i.rendered = true
	return i.view
}

func (i *ListItem) Renders() int { return i.renders }
