package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/emaildiff/internal/models"
)

var _ list.Item = entryItem{}

// entryItem wraps [models.Entry] to implement [list.Item].
type entryItem struct {
	entry models.Entry
}

func (i entryItem) FilterValue() string { return i.entry.Email }
func (i entryItem) Title() string       { return i.entry.Email }
func (i entryItem) Description() string {
	return fmt.Sprintf("new: %d • old: %d", i.entry.NewCount, i.entry.OldCount)
}

func newEntryList(cat models.Category, entries []models.Entry) list.Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("%s (%d)", cat.Title(), len(entries))
	l.Styles.Title = categoryStyle(cat)
	l.SetShowHelp(false)
	return l
}
