package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// Inspector is an interactive register/memory-page viewer built on the
// same bubbletea/lipgloss/go-spew stack used throughout this module's
// tooling. It drives a Cpu directly rather than owning one, so it can
// inspect a CPU wired to a live NES just as easily as a bare test program.
//
// Key bindings mirror the debugger REPL's vocabulary: s steps one
// instruction, r runs to halt, p reprints the current opcode dump, q quits.
type Inspector struct {
	cpu    *Cpu
	offset uint16
	prevPC uint16
	err    error
}

// NewInspector returns an Inspector over cpu, anchoring its memory-page
// view at offset.
func NewInspector(cpu *Cpu, offset uint16) Inspector {
	return Inspector{cpu: cpu, offset: offset}
}

// Init satisfies tea.Model. It performs no initial command; the caller is
// expected to have already loaded a program and started the Cpu.
func (m Inspector) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model.
func (m Inspector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "s", " ":
			m.prevPC = m.cpu.ProgramCounter
			if err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}

		case "r":
			m.prevPC = m.cpu.ProgramCounter
			if err := m.cpu.Run(); err != nil {
				m.err = err
				return m, tea.Quit
			}

		case "p":
			// no state change; View() always reflects the current Cpu
		}
	}
	return m, nil
}

// renderPage renders one 16-byte memory page as a line, highlighting the
// byte at the current PC.
func (m Inspector) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.cpu.Bus.GetRaw(addr)
		if addr == m.cpu.ProgramCounter {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m Inspector) status() string {
	return "\n" + m.cpu.DebugString() + fmt.Sprintf("\nprev PC: 0x%04X\n", m.prevPC)
}

func (m Inspector) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}
	offsets := []uint16{
		0, 16, 32, 48, 64,
		m.offset,
		m.offset + 16,
		m.offset + 32,
		m.offset + 48,
		m.offset + 64,
	}
	for _, addr := range offsets {
		rows = append(rows, m.renderPage(addr&0xFFF0))
	}
	return strings.Join(rows, "\n")
}

// View satisfies tea.Model.
func (m Inspector) View() string {
	current := Opcodes[m.cpu.Bus.GetRaw(m.cpu.ProgramCounter)]
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(current),
	)
}

// Debug loads program into memory at offset, points the reset vector at
// it, starts the Cpu, and runs the interactive TUI.
func (c *Cpu) Debug(program []byte, offset uint16) error {
	c.WriteBytesTo(offset, program)
	c.Bus.SetRaw(ResetVector, byte(offset))
	c.Bus.SetRaw(ResetVector+1, byte(offset>>8))
	c.Start()

	final, err := tea.NewProgram(NewInspector(c, offset)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Inspector); ok && m.err != nil {
		return m.err
	}
	return nil
}
