package notty

import "github.com/mgutz/ansi"

// MenuTheme holds the mgutz/ansi style codes a menu renders with.
type MenuTheme struct {
	Title string
	Entry string
	Hi    string
	Arrow string
}

// DefaultMenuTheme returns the stock menu colors.
func DefaultMenuTheme() MenuTheme {
	return MenuTheme{
		Title: ansi.ColorCode("cyan+b"),
		Entry: ansi.ColorCode("white"),
		Hi:    ansi.ColorCode("white+b:blue"),
		Arrow: ansi.ColorCode("red+b"),
	}
}

// Menu is a selectable overlay list. Up and Down move the selection with
// wraparound, Enter confirms it, and any other offered key is forwarded to
// the controlling process.
type Menu struct {
	title   string
	entries []string
	pos     int
	theme   MenuTheme
}

// NewMenu creates a menu with the default theme and the first entry selected.
func NewMenu(title string, entries []string) *Menu {
	return &Menu{
		title:   title,
		entries: entries,
		theme:   DefaultMenuTheme(),
	}
}

// SetTheme replaces the menu colors.
func (m *Menu) SetTheme(theme MenuTheme) {
	m.theme = theme
}

// Pos returns the index of the currently highlighted entry.
func (m *Menu) Pos() int {
	return m.pos
}

// Selectable reports whether the menu can take keys at all.
func (m *Menu) Selectable() bool {
	return len(m.entries) > 0
}

// Interact offers a key event to the menu.
func (m *Menu) Interact(ev KeyEvent) (int, InteractOutcome) {
	switch ev.Key {
	case KeyUp:
		m.up()
		return 0, Consumed
	case KeyDown:
		m.down()
		return 0, Consumed
	case KeyEnter:
		return m.pos, SelectionMade
	default:
		return 0, Forward
	}
}

func (m *Menu) up() {
	if m.pos <= 0 {
		m.pos = len(m.entries) - 1
	} else {
		m.pos--
	}
}

func (m *Menu) down() {
	m.pos++
	if m.pos >= len(m.entries) {
		m.pos = 0
	}
}

// Draw renders the menu into a buffer at the given position: the title on
// the first row, then one entry per row, with the highlighted entry marked
// by an arrow.
func (m *Menu) Draw(b *Buffer, x, y uint) {
	for i, r := range m.title {
		b.PlotColor(x+uint(i), y, m.theme.Title, r)
	}
	for row, entry := range m.entries {
		style := m.theme.Entry
		prefix := "   "
		if row == m.pos {
			style = m.theme.Hi
			prefix = "-> "
		}
		col := x
		for _, r := range prefix {
			if row == m.pos {
				b.PlotColor(col, y+1+uint(row), m.theme.Arrow, r)
			} else {
				b.PlotColor(col, y+1+uint(row), style, r)
			}
			col++
		}
		for _, r := range entry {
			b.PlotColor(col, y+1+uint(row), style, r)
			col++
		}
	}
}
