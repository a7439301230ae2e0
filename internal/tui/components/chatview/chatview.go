package chatview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yonasmekonnen/nesha/internal/models"
)

type SendMsg struct {
	Text string
}

type ClearMsg struct{}

type KeyMap struct {
	Send  key.Binding
	Clear key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear chat"),
		),
	}
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	modelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	waitingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	viewport viewport.Model
	input    textinput.Model
	keys     KeyMap
	messages []models.ChatMessage
	waiting  bool
	width    int
}

func New(messages []models.ChatMessage, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "Message Nesha..."
	ti.CharLimit = 2000
	ti.Focus()

	vp := viewport.New(width, maxInt(height-2, 1))

	m := Model{
		viewport: vp,
		input:    ti,
		keys:     DefaultKeyMap(),
		messages: messages,
		width:    width,
	}
	m.refresh()
	return m
}

func (m *Model) SetMessages(messages []models.ChatMessage) {
	m.messages = messages
	m.refresh()
}

func (m *Model) SetWaiting(waiting bool) {
	m.waiting = waiting
	m.refresh()
}

func (m *Model) refresh() {
	var sb strings.Builder
	for _, msg := range m.messages {
		switch {
		case msg.Role == models.RoleUser:
			sb.WriteString(userStyle.Render("you: ") + msg.Text)
		case msg.IsError:
			sb.WriteString(errorStyle.Render("nesha: " + msg.Text))
		default:
			sb.WriteString(modelStyle.Render("nesha: ") + msg.Text)
		}
		sb.WriteString("\n\n")
	}
	if m.waiting {
		sb.WriteString(waitingStyle.Render("nesha is thinking..."))
		sb.WriteString("\n")
	}
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(sb.String()))
	m.viewport.GotoBottom()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Send):
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting {
				return m, nil
			}
			m.input.Reset()
			return m, func() tea.Msg { return SendMsg{Text: text} }
		case key.Matches(msg, m.keys.Clear):
			return m, func() tea.Msg { return ClearMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + m.input.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = maxInt(height-2, 1)
	m.input.Width = maxInt(width-4, 10)
	m.refresh()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
