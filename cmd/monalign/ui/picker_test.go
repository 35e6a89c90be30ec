package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
)

func pickerCorrections() []align.Correction {
	return []align.Correction{
		{MonitorID: "DP-1", Axis: align.AxisX, OldValue: -300, NewValue: -298, Delta: 2},
		{MonitorID: "HDMI-1", Axis: align.AxisY, OldValue: -1442, NewValue: -1440, Delta: 2},
	}
}

func sendKey(t *testing.T, p Picker, msg tea.KeyMsg) Picker {
	t.Helper()
	m, _ := p.Update(msg)
	next, ok := m.(Picker)
	if !ok {
		t.Fatalf("Update returned %T, want Picker", m)
	}
	return next
}

func TestPickerApproveAll(t *testing.T) {
	p := NewPicker(pickerCorrections(), PlainStyles())

	p = sendKey(t, p, tea.KeyMsg{Type: tea.KeyEnter})

	chosen, ok := p.Approved()
	if !ok {
		t.Fatalf("expected approval after enter")
	}
	if len(chosen) != 2 {
		t.Fatalf("expected both corrections selected, got %d", len(chosen))
	}
}

func TestPickerToggle(t *testing.T) {
	p := NewPicker(pickerCorrections(), PlainStyles())

	p = sendKey(t, p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	p = sendKey(t, p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	p = sendKey(t, p, tea.KeyMsg{Type: tea.KeyEnter})

	chosen, ok := p.Approved()
	if !ok {
		t.Fatalf("expected approval after enter")
	}
	if len(chosen) != 1 {
		t.Fatalf("expected one correction after toggling, got %d", len(chosen))
	}
	if chosen[0].MonitorID != "DP-1" {
		t.Errorf("expected DP-1 to stay selected, got %s", chosen[0].MonitorID)
	}
}

func TestPickerAbort(t *testing.T) {
	p := NewPicker(pickerCorrections(), PlainStyles())

	p = sendKey(t, p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	if chosen, ok := p.Approved(); ok || chosen != nil {
		t.Fatalf("expected abort to discard the plan, got %v %v", chosen, ok)
	}
}

func TestPickerSelectNone(t *testing.T) {
	p := NewPicker(pickerCorrections(), PlainStyles())

	p = sendKey(t, p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	p = sendKey(t, p, tea.KeyMsg{Type: tea.KeyEnter})

	chosen, ok := p.Approved()
	if !ok {
		t.Fatalf("expected approval even with nothing selected")
	}
	if len(chosen) != 0 {
		t.Fatalf("expected empty selection, got %d", len(chosen))
	}
}

func TestPickerView(t *testing.T) {
	p := NewPicker(pickerCorrections(), PlainStyles())

	view := p.View()

	for _, want := range []string{"Review corrections", "HDMI-1", "[x]", "2 of 2 selected"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q:\n%s", want, view)
		}
	}

	p = sendKey(t, p, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	view = p.View()
	if !strings.Contains(view, "0 of 2 selected") {
		t.Errorf("View missing updated status:\n%s", view)
	}
	if strings.Contains(view, "[x]") {
		t.Errorf("expected no checked rows after n:\n%s", view)
	}
}
