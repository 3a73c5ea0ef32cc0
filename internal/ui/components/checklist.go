package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/internal/ui/theme"
)

// Checklist is a multi-select list. Space toggles, enter confirms.
// Nothing checked is a valid confirmation and means "everything".
type Checklist struct {
	Items   []string
	Checked map[int]bool
	Cursor  int
}

// NewChecklist creates a checklist with nothing checked.
func NewChecklist(items []string) Checklist {
	return Checklist{
		Items:   items,
		Checked: make(map[int]bool),
	}
}

// Update handles keyboard navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ":
		c.Checked[c.Cursor] = !c.Checked[c.Cursor]
	case "a":
		// Toggle all.
		all := len(c.Selected()) == len(c.Items)
		for i := range c.Items {
			c.Checked[i] = !all
		}
	}

	return c, nil
}

// Selected returns the checked items in display order.
func (c Checklist) Selected() []string {
	var out []string
	for i, item := range c.Items {
		if c.Checked[i] {
			out = append(out, item)
		}
	}
	return out
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		mark := "[ ]"
		if c.Checked[i] {
			mark = "[x]"
		}
		line := mark + " " + item
		if i == c.Cursor {
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+line) + "\n"
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+line) + "\n"
		}
	}
	return s
}
