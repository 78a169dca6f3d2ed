// Package app hosts the root Bubble Tea program for interactive
// tutoring sessions.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/autodidact/internal/screens/session"
)

// AppModel is the root Bubble Tea model. The tutor is a single chat
// screen per session, so the model embeds it directly.
type AppModel struct {
	screen *session.Screen
	width  int
	height int
}

func newAppModel(screen *session.Screen) AppModel {
	return AppModel{screen: screen}
}

func (m AppModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.screen.View(m.width, m.height))
	return v
}

// RunSession starts a fresh tutoring session in the terminal.
func RunSession(runner session.Runner, projectID, nodeID int) error {
	return runProgram(session.New(runner, projectID, nodeID))
}

// ResumeSession reopens an existing session in the terminal.
func ResumeSession(runner session.Runner, sessionID string) error {
	return runProgram(session.NewResume(runner, sessionID))
}

func runProgram(screen *session.Screen) error {
	p := tea.NewProgram(newAppModel(screen))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
