package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
)

// Picker is the interactive review screen for a correction plan. Every
// correction starts selected; the operator can toggle entries before
// approving or aborting.
type Picker struct {
	corrections []align.Correction
	selected    []bool
	cursor      int
	viewport    viewport.Model
	styles      Styles

	approved bool
	done     bool
}

// NewPicker builds the picker with all corrections pre-selected.
func NewPicker(corrections []align.Correction, styles Styles) Picker {
	selected := make([]bool, len(corrections))
	for i := range selected {
		selected[i] = true
	}
	vp := viewport.New(80, 12)
	p := Picker{
		corrections: corrections,
		selected:    selected,
		viewport:    vp,
		styles:      styles,
	}
	p.refresh()
	return p
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.viewport.Width = msg.Width
		// Title, blank line, status, and help take four rows.
		h := msg.Height - 4
		if h < 3 {
			h = 3
		}
		p.viewport.Height = h
		p.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
			p.refresh()
		case "down", "j":
			if p.cursor < len(p.corrections)-1 {
				p.cursor++
			}
			p.refresh()
		case " ":
			if p.cursor < len(p.selected) {
				p.selected[p.cursor] = !p.selected[p.cursor]
			}
			p.refresh()
		case "a":
			for i := range p.selected {
				p.selected[i] = true
			}
			p.refresh()
		case "n":
			for i := range p.selected {
				p.selected[i] = false
			}
			p.refresh()
		case "enter", "y":
			p.approved = true
			p.done = true
			return p, tea.Quit
		case "q", "esc", "ctrl+c":
			p.approved = false
			p.done = true
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p Picker) View() string {
	if p.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(p.styles.Title.Render("Review corrections"))
	b.WriteString("\n\n")
	b.WriteString(p.viewport.View())
	b.WriteString("\n")
	b.WriteString(p.statusLine())
	b.WriteString("\n")
	b.WriteString(p.styles.Help.Render(
		"up/down move  space toggle  a all  n none  enter apply  q abort"))
	return b.String()
}

// Approved reports the chosen corrections and whether the operator
// confirmed. An aborted picker returns no corrections.
func (p Picker) Approved() ([]align.Correction, bool) {
	if !p.approved {
		return nil, false
	}
	chosen := make([]align.Correction, 0, len(p.corrections))
	for i, c := range p.corrections {
		if p.selected[i] {
			chosen = append(chosen, c)
		}
	}
	return chosen, true
}

func (p *Picker) refresh() {
	var b strings.Builder
	for i, c := range p.corrections {
		cursor := "  "
		if i == p.cursor {
			cursor = p.styles.Cursor.Render("> ")
		}
		check := "[ ]"
		style := p.styles.Muted
		if p.selected[i] {
			check = "[x]"
			style = p.styles.Selected
		}
		line := fmt.Sprintf("%s %s  %s: %s -> %s (%s)",
			check,
			c.MonitorID,
			strings.ToUpper(string(c.Axis)),
			FormatCoord(c.OldValue),
			FormatCoord(c.NewValue),
			FormatDelta(c.Delta),
		)
		b.WriteString(cursor)
		b.WriteString(style.Render(line))
		if i < len(p.corrections)-1 {
			b.WriteString("\n")
		}
	}
	p.viewport.SetContent(b.String())

	// Keep the cursor line inside the visible window.
	if p.cursor < p.viewport.YOffset {
		p.viewport.SetYOffset(p.cursor)
	} else if p.cursor >= p.viewport.YOffset+p.viewport.Height {
		p.viewport.SetYOffset(p.cursor - p.viewport.Height + 1)
	}
}

func (p Picker) statusLine() string {
	count := 0
	for _, s := range p.selected {
		if s {
			count++
		}
	}
	return p.styles.Muted.Render(
		fmt.Sprintf("%d of %d selected", count, len(p.corrections)))
}
