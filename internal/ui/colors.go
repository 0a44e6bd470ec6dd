package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertthunder/emaildiff/internal/models"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title  lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
	warn   lipgloss.Style
	help   lipgloss.Style
	tab    lipgloss.Style
	active lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title:  NewBold(t).MarginBottom(1),
		ok:     NewBold(s),
		err:    NewBold(e),
		warn:   NewStyle(w),
		help:   NewEm(h),
		tab:    NewStyle(h).Padding(0, 1),
		active: NewBold(t).Padding(0, 1).Underline(true),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// categoryStyle colors a listing by what it means for the new file.
func categoryStyle(cat models.Category) lipgloss.Style {
	switch cat {
	case models.OnlyNew:
		return styles.ok
	case models.OnlyOld:
		return styles.warn
	default:
		return styles.title.UnsetMarginBottom()
	}
}

// SummaryTable renders the headline counts as a bordered two-column terminal table.
func SummaryTable(s models.Summary) string {
	rows := make([][]string, 0, 7)
	for _, m := range s.Metrics() {
		rows = append(rows, []string{m.Label, strconv.Itoa(m.Count)})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.help).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.title.UnsetMarginBottom().Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Metric", "Count").
		Rows(rows...).
		String()
}
