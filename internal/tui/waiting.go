package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// waitingModel is shown while the session state is still being resolved.
// The root model re-dispatches the held navigation once resolution lands.
type waitingModel struct {
	spinner spinner.Model
}

func newWaitingModel() *waitingModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &waitingModel{spinner: sp}
}

func (m *waitingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *waitingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

func (m *waitingModel) View() string {
	return renderPage("ONE MOMENT", m.spinner.View()+" Checking your session...", "ctrl+c: quit")
}
