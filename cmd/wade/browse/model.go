package browse

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pgavlin/wade/wasm"
	"github.com/pgavlin/wade/wasm/procmacro"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// hexDumpLimit caps the number of payload bytes rendered in the detail view.
const hexDumpLimit = 256

type modelState int

const (
	stateList modelState = iota
	stateFilter
	stateDetail
)

type entry struct {
	section wasm.Section
	title   string
}

type model struct {
	filename string
	version  uint32
	entries  []entry
	visible  []int
	selected int
	filter   textinput.Model
	state    modelState
}

func newModel(filename string, mod *wasm.Module) *model {
	entries := make([]entry, len(mod.Sections))
	visible := make([]int, len(mod.Sections))
	for i, section := range mod.Sections {
		entries[i] = entry{section: section, title: entryTitle(section)}
		visible[i] = i
	}

	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter"
	filter.Width = 40

	return &model{
		filename: filename,
		version:  mod.Version,
		entries:  entries,
		visible:  visible,
		filter:   filter,
		state:    stateList,
	}
}

func entryTitle(section wasm.Section) string {
	raw := section.GetRawSection()
	if custom, ok := section.(*wasm.SectionCustom); ok {
		return fmt.Sprintf("custom %q (%d bytes)", custom.Name, raw.End-raw.Start)
	}
	return fmt.Sprintf("%v (id %d, %d bytes)", raw.ID, uint8(raw.ID), raw.End-raw.Start)
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state == stateFilter {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == stateFilter {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			m.filter.Blur()
			m.state = stateList
			return m, nil
		case "esc":
			m.filter.SetValue("")
			m.filter.Blur()
			m.state = stateList
			m.applyFilter()
			return m, nil
		}

		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.state == stateList && m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.state == stateList && m.selected < len(m.visible)-1 {
			m.selected++
		}

	case "/":
		if m.state == stateList {
			m.state = stateFilter
			m.filter.Focus()
			return m, textinput.Blink
		}

	case "enter":
		if m.state == stateList && len(m.visible) > 0 {
			m.state = stateDetail
		}

	case "esc":
		switch m.state {
		case stateDetail:
			m.state = stateList
		case stateList:
			if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.applyFilter()
			}
		}
	}

	return m, nil
}

// applyFilter recomputes the visible entries from the filter text and keeps
// the selection in bounds.
func (m *model) applyFilter() {
	text := strings.ToLower(m.filter.Value())

	m.visible = m.visible[:0]
	for i, e := range m.entries {
		if text == "" || strings.Contains(strings.ToLower(e.title), text) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wade"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	fmt.Fprintf(&b, " (version %d)", m.version)
	b.WriteString("\n\n")

	switch m.state {
	case stateList, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}

		if len(m.visible) == 0 {
			b.WriteString("no matching sections\n")
		}
		for i, idx := range m.visible {
			if i == m.selected && m.state == stateList {
				b.WriteString(selectedStyle.Render("> " + m.entries[idx].title))
			} else {
				b.WriteString("  " + m.entries[idx].title)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(helpStyle.Render("enter apply • esc clear"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • / filter • q quit"))
		}

	case stateDetail:
		b.WriteString(m.detailView())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
	}

	return b.String()
}

func (m *model) detailView() string {
	e := m.entries[m.visible[m.selected]]
	raw := e.section.GetRawSection()

	var b strings.Builder
	fmt.Fprintf(&b, "%s section\n", kindStyle.Render(raw.ID.String()))
	fmt.Fprintf(&b, "id: %d\n", uint8(raw.ID))
	fmt.Fprintf(&b, "payload: [%#x, %#x), %d bytes\n", raw.Start, raw.End, raw.End-raw.Start)

	custom, ok := e.section.(*wasm.SectionCustom)
	if !ok {
		b.WriteString("\n")
		b.WriteString(hex.Dump(dumpBytes(raw.Bytes)))
		if len(raw.Bytes) > hexDumpLimit {
			fmt.Fprintf(&b, "... %d more bytes\n", len(raw.Bytes)-hexDumpLimit)
		}
		return b.String()
	}

	fmt.Fprintf(&b, "name: %q (%d bytes)\n", custom.Name, custom.NameLen)
	fmt.Fprintf(&b, "content: %d bytes\n\n", len(custom.Data))
	b.WriteString(hex.Dump(dumpBytes(custom.Data)))
	if len(custom.Data) > hexDumpLimit {
		fmt.Fprintf(&b, "... %d more bytes\n", len(custom.Data)-hexDumpLimit)
	}

	if custom.Name == procmacro.SectionName {
		if decls := procmacro.Parse(custom.Data); len(decls) != 0 {
			b.WriteString("\nproc-macro declarations:\n")
			for _, d := range decls {
				fmt.Fprintf(&b, "  %v %s: %s\n", d.Kind, d.Name, d.Func)
			}
		}
	}
	return b.String()
}

func dumpBytes(b []byte) []byte {
	if len(b) > hexDumpLimit {
		return b[:hexDumpLimit]
	}
	return b
}
