package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmallard/compass/internal/cli/formatter"
	"github.com/jmallard/compass/internal/contract"
)

var (
	chatYouStyle   = lipgloss.NewStyle().Foreground(formatter.ColorPurple).Bold(true)
	chatCoachStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	chatErrStyle   = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	chatBarStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(formatter.ColorDim)
)

// chatReplyMsg carries one coach turn back into the update loop.
type chatReplyMsg struct {
	resp *contract.ChatResponse
	err  error
}

// chatModel is the bubbletea Model for the interactive chat view. A
// transcript viewport sits above a single-line input.
type chatModel struct {
	app       *App
	userID    string
	sessionID string

	vp      viewport.Model
	input   textinput.Model
	history []string
	waiting bool
	ready   bool
}

func newChatModel(app *App, userID string) chatModel {
	ti := textinput.New()
	ti.Placeholder = "What's on your mind?"
	ti.Prompt = chatYouStyle.Render("you ❯ ")
	ti.CharLimit = 500
	ti.Focus()

	return chatModel{
		app:     app,
		userID:  userID,
		input:   ti,
		history: []string{formatter.FormatWelcome()},
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		inputHeight := 2
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-inputHeight)
			m.vp.SetContent(strings.Join(m.history, "\n"))
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - inputHeight
		}
		m.input.Width = msg.Width - lipgloss.Width(m.input.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, m.quit()
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting {
				return m, nil
			}
			if text == "exit" || text == "quit" {
				return m, m.quit()
			}
			m.input.Reset()
			m.waiting = true
			m.appendLine(chatYouStyle.Render("you") + "  " + text)
			m.appendLine(formatter.Dim("thinking..."))
			return m, m.send(text)
		}

	case chatReplyMsg:
		m.waiting = false
		// Drop the "thinking..." line.
		m.history = m.history[:len(m.history)-1]
		if msg.err != nil {
			m.appendLine(chatErrStyle.Render(msg.err.Error()))
		} else {
			m.sessionID = msg.resp.SessionID
			m.appendLine(chatCoachStyle.Render("coach") + "\n" + formatter.FormatResponse(msg.resp))
		}
		m.vp.SetContent(strings.Join(m.history, "\n"))
		m.vp.GotoBottom()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m chatModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.vp.View() + "\n" + chatBarStyle.Width(m.vp.Width).Render(m.input.View())
}

func (m *chatModel) appendLine(s string) {
	m.history = append(m.history, s)
	if m.ready {
		m.vp.SetContent(strings.Join(m.history, "\n"))
		m.vp.GotoBottom()
	}
}

func (m chatModel) send(text string) tea.Cmd {
	app, userID, sessionID := m.app, m.userID, m.sessionID
	return func() tea.Msg {
		resp, err := app.Coach.ProcessRequest(context.Background(), contract.ChatRequest{
			UserID:    userID,
			Message:   text,
			SessionID: sessionID,
		})
		return chatReplyMsg{resp: resp, err: err}
	}
}

func (m chatModel) quit() tea.Cmd {
	if m.sessionID != "" {
		_ = m.app.Coach.EndSession(context.Background(), m.sessionID)
	}
	return tea.Quit
}

func runChatTUI(app *App, userID string) error {
	p := tea.NewProgram(newChatModel(app, userID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
