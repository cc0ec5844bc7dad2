package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ffibridge "github.com/wippyai/ffi-bridge"
	"github.com/wippyai/ffi-bridge/guard"
	"github.com/wippyai/ffi-bridge/slot"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	message  textinput.Model
	capacity textinput.Model
	focusIdx int
	log      []string
}

func newInteractiveModel() *interactiveModel {
	message := textinput.New()
	message.Placeholder = "error message or panic payload"
	message.Focus()
	message.CharLimit = 256
	message.Width = 48

	capacity := textinput.New()
	capacity.Placeholder = "buffer capacity"
	capacity.CharLimit = 6
	capacity.Width = 12
	capacity.SetValue("16")

	return &interactiveModel{
		message:  message,
		capacity: capacity,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "shift+tab":
		m.focusIdx = (m.focusIdx + 1) % 2
		if m.focusIdx == 0 {
			m.message.Focus()
			m.capacity.Blur()
		} else {
			m.message.Blur()
			m.capacity.Focus()
		}
		return m, nil

	case "enter":
		ffibridge.Store(errors.New(m.messageText()))
		m.record("store", resultStyle.Render("pending"))
		return m, nil

	case "ctrl+g":
		payload := m.messageText()
		_, err := guard.Do(func() (int, error) {
			panic(payload)
		})
		ffibridge.Store(err)
		m.record("guard", errorStyle.Render(fmt.Sprintf("fault absorbed: %v", err)))
		return m, nil

	case "ctrl+d":
		m.record("drain", m.drain())
		return m, nil

	case "ctrl+r":
		ffibridge.Release()
		m.record("release", helpStyle.Render("slot dropped"))
		return m, nil
	}

	return m, m.updateInputs(msg)
}

func (m *interactiveModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds [2]tea.Cmd
	m.message, cmds[0] = m.message.Update(msg)
	m.capacity, cmds[1] = m.capacity.Update(msg)
	return tea.Batch(cmds[0], cmds[1])
}

func (m *interactiveModel) messageText() string {
	if v := m.message.Value(); v != "" {
		return v
	}
	return "unspecified failure"
}

func (m *interactiveModel) drain() string {
	capacity, err := strconv.Atoi(m.capacity.Value())
	if err != nil || capacity < 0 {
		return errorStyle.Render("capacity is not a non-negative integer")
	}

	buf := make([]byte, capacity)
	switch n := ffibridge.WriteMessage(buf); {
	case n > 0:
		return resultStyle.Render(fmt.Sprintf("%d bytes: %q", n, buf[:n]))
	case n == ffibridge.WriteEmpty:
		return helpStyle.Render("0 (nothing pending)")
	default:
		return errorStyle.Render("-1 (too small, error preserved; grow the capacity and retry)")
	}
}

func (m *interactiveModel) record(action, outcome string) {
	m.log = append(m.log, fmt.Sprintf("%-8s %s", action, outcome))
	if len(m.log) > 8 {
		m.log = m.log[len(m.log)-8:]
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("bridgeprobe: last-error bridge"))
	b.WriteString("\n\n")

	status := helpStyle.Render("slot empty")
	if slot.Pending() > 0 {
		status = pendingStyle.Render("error pending")
	}
	b.WriteString(status)
	b.WriteString("\n\n")

	b.WriteString("message:  " + m.message.View() + "\n")
	b.WriteString("capacity: " + m.capacity.View() + "\n\n")

	for _, line := range m.log {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter store · ctrl+g guard fault · ctrl+d drain · ctrl+r release · tab switch · esc quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive() error {
	_, err := tea.NewProgram(newInteractiveModel()).Run()
	return err
}
