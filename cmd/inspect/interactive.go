package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/handlemap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateInsert
	statePut
)

type inspectModel struct {
	err      error
	m        *handlemap.Map[string]
	entries  []entry
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

func newInspectModel(m *handlemap.Map[string]) *inspectModel {
	im := &inspectModel{m: m, state: stateBrowse}
	im.refresh()
	return im
}

func (m *inspectModel) refresh() {
	m.entries = sortedEntries(m.m)
	if m.selected >= len(m.entries) {
		m.selected = len(m.entries) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateBrowse:
			return m.updateBrowse(msg)
		case stateInsert, statePut:
			return m.updateForm(msg)
		}
	}
	return m, nil
}

func (m *inspectModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}

	case "i":
		m.prepareInputs("value: ", "")
		m.state = stateInsert

	case "p":
		m.prepareInputs("handle: ", "value: ")
		m.state = statePut

	case "d", "x":
		if len(m.entries) > 0 {
			m.m.Remove(m.entries[m.selected].handle)
			m.refresh()
		}

	case "C":
		m.m.Clear()
		m.refresh()
	}
	return m, nil
}

func (m *inspectModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = stateBrowse
		m.inputs = nil
		m.err = nil
		return m, nil

	case "tab":
		if len(m.inputs) > 1 {
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			m.inputs[m.focusIdx].Focus()
		}
		return m, nil

	case "enter":
		m.commit()
		return m, nil
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *inspectModel) prepareInputs(prompts ...string) {
	m.inputs = nil
	for i, prompt := range prompts {
		if prompt == "" {
			continue
		}
		ti := textinput.New()
		ti.Prompt = prompt
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs = append(m.inputs, ti)
	}
	m.focusIdx = 0
	m.err = nil
}

func (m *inspectModel) commit() {
	switch m.state {
	case stateInsert:
		m.m.Insert(m.inputs[0].Value())

	case statePut:
		// Accept decimal or 0x-prefixed hex.
		raw, err := strconv.ParseUint(m.inputs[0].Value(), 0, 64)
		if err != nil {
			m.err = fmt.Errorf("bad handle %q: %w", m.inputs[0].Value(), err)
			return
		}
		m.m.Put(handlemap.FromUint64[string](raw), m.inputs[1].Value())
	}

	m.state = stateBrowse
	m.inputs = nil
	m.refresh()
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Handle Map Inspector"))
	b.WriteString(fmt.Sprintf("  %d entries\n\n", m.m.Len()))

	switch m.state {
	case stateBrowse:
		if len(m.entries) == 0 {
			b.WriteString(helpStyle.Render("(empty)"))
			b.WriteString("\n")
		}
		for i, e := range m.entries {
			line := handleStyle.Render(fmt.Sprintf("%016x", e.handle.Uint64())) +
				"  " + valueStyle.Render(e.value)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> "))
				b.WriteString(line)
			} else {
				b.WriteString("  ")
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • i insert • p put • d delete • C clear • q quit"))

	case stateInsert, statePut:
		if m.state == stateInsert {
			b.WriteString("Insert a value (random handle):\n\n")
		} else {
			b.WriteString("Put a value at an explicit handle:\n\n")
		}
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if len(m.inputs) > 1 {
			b.WriteString(helpStyle.Render("tab next field • enter commit • esc back"))
		} else {
			b.WriteString(helpStyle.Render("enter commit • esc back"))
		}
	}

	return b.String()
}

func runInteractive(m *handlemap.Map[string]) error {
	p := tea.NewProgram(newInspectModel(m), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
