package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/highscore"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	Mode    tiles.Mode
	Title   string
	Summary string
}

// MenuModel is the mode picker shown while the engine is in the menu state.
type MenuModel struct {
	items  []MenuItem
	cursor int
	width  int
	height int
	ledger tiles.Ledger
}

// NewMenuModel creates a menu listing every mode. ledger supplies the best
// values shown next to each entry and may be nil.
func NewMenuModel(ledger tiles.Ledger, width, height int) MenuModel {
	modes := tiles.AllModes()
	items := make([]MenuItem, 0, len(modes))
	for _, mode := range modes {
		line1, line2 := mode.Description()
		items = append(items, MenuItem{
			Mode:    mode,
			Title:   mode.Title(),
			Summary: line1 + " · " + line2,
		})
	}

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		ledger: ledger,
	}
}

// Move applies a navigation action and returns the updated menu.
func (m MenuModel) Move(action core.Action) MenuModel {
	switch action {
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	}
	return m
}

// Select moves the cursor to mode.
func (m MenuModel) Select(mode tiles.Mode) MenuModel {
	for i, item := range m.items {
		if item.Mode == mode {
			m.cursor = i
		}
	}
	return m
}

// Selected returns the highlighted mode.
func (m MenuModel) Selected() tiles.Mode {
	return m.items[m.cursor].Mode
}

// Resize updates the menu dimensions.
func (m MenuModel) Resize(width, height int) MenuModel {
	m.width = width
	m.height = height
	return m
}

// best returns the formatted best value for mode.
func (m MenuModel) best(mode tiles.Mode) string {
	if m.ledger == nil {
		return "--"
	}
	v, ok := m.ledger.Best(mode)
	if !ok {
		return "--"
	}
	return highscore.Format(mode, v)
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "  P I A N O   T I L E S  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(tiles.MenuSubtitle, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}

		line := fmt.Sprintf("%s%-8s %-30s Best %s", cursor, item.Title, item.Summary, m.best(item.Mode))
		b.WriteString(centerStyled(style, line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle, controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers text and applies style to the text only.
func centerStyled(style lipgloss.Style, text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return style.Render(text)
	}
	return strings.Repeat(" ", (width-n)/2) + style.Render(text)
}
