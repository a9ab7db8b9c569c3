package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/models"
)

// registerModel is the account creation form. A successful registration
// also signs the new account in, so it finishes with a [SignInResult] the
// same way the login page does.
type registerModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

const (
	registerFieldName = iota
	registerFieldEmail
	registerFieldPassword
	registerFieldPhotoURL
)

func newRegisterModel(ctx context.Context, auth service.ClientAuthService) *registerModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "display name"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password (6+ chars, mixed case)"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	photoInput := textinput.New()
	photoInput.Placeholder = "photo URL (optional)"
	photoInput.CharLimit = 500
	photoInput.Width = 40

	return &registerModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{nameInput, emailInput, passwordInput, photoInput},
	}
}

func (m *registerModel) reset() {
	m.submitting = false
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = registerFieldName
	m.inputs[m.focus].Focus()
}

func (m *registerModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *registerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(SignInResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Route: RouteWelcome} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			creds := models.Credentials{
				Name:     strings.TrimSpace(m.inputs[registerFieldName].Value()),
				Email:    strings.TrimSpace(m.inputs[registerFieldEmail].Value()),
				Password: m.inputs[registerFieldPassword].Value(),
				PhotoURL: strings.TrimSpace(m.inputs[registerFieldPhotoURL].Value()),
			}
			if creds.Email == "" || creds.Password == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignUp(creds)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *registerModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Name      │ [" + m.inputs[registerFieldName].View() + "]\n")
	b.WriteString("Email     │ [" + m.inputs[registerFieldEmail].View() + "]\n")
	b.WriteString("Password  │ [" + m.inputs[registerFieldPassword].View() + "]\n")
	b.WriteString("Photo URL │ [" + m.inputs[registerFieldPhotoURL].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *registerModel) cmdSignUp(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		principal, err := auth.SignUp(ctx, creds)
		return SignInResult{Principal: principal, Err: err}
	}
}

func (m *registerModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *registerModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
