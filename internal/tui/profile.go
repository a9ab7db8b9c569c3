package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/movieportal/movie-portal/internal/service"
	"github.com/movieportal/movie-portal/internal/session"
	"github.com/movieportal/movie-portal/models"
)

const (
	profileFieldName = iota
	profileFieldPhotoURL
	profileFieldCount
)

// profileModel shows the signed-in account and lets the user change the
// mutable fields. Email and provider are read-only.
type profileModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	session *session.Provider

	inputs     [profileFieldCount]textinput.Model
	focus      int
	editing    bool
	submitting bool
	status     string
	errMsg     string
}

func newProfileModel(ctx context.Context, auth service.ClientAuthService, provider *session.Provider) *profileModel {
	name := textinput.New()
	name.Placeholder = "display name"
	name.Width = 40

	photoURL := textinput.New()
	photoURL.Placeholder = "photo URL"
	photoURL.Width = 40

	return &profileModel{
		ctx:     ctx,
		auth:    auth,
		session: provider,
		inputs:  [profileFieldCount]textinput.Model{name, photoURL},
	}
}

func (m *profileModel) Init() tea.Cmd {
	m.editing = false
	m.submitting = false
	m.status = ""
	m.errMsg = ""
	return nil
}

func (m *profileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case profileSavedMsg:
		m.submitting = false
		if typed.err != nil {
			m.errMsg = humanizeError(typed.err)
			return m, nil
		}
		m.editing = false
		m.status = "Profile updated"
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(typed)
		}
		switch {
		case key.Matches(typed, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Route: RouteMovies} }
		case key.Matches(typed, keys.edit):
			m.beginEditing()
			return m, textinput.Blink
		case key.Matches(typed, keys.signOut):
			return m, m.cmdSignOut()
		}
	}

	return m, nil
}

func (m *profileModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.errMsg = ""
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % profileFieldCount
		m.inputs[m.focus].Focus()
		return m, nil
	case "enter":
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		m.errMsg = ""
		name := strings.TrimSpace(m.inputs[profileFieldName].Value())
		photoURL := strings.TrimSpace(m.inputs[profileFieldPhotoURL].Value())
		return m, m.cmdSave(models.ProfileUpdate{Name: &name, PhotoURL: &photoURL})
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *profileModel) beginEditing() {
	principal := m.session.Principal()
	if principal != nil {
		m.inputs[profileFieldName].SetValue(principal.Name)
		m.inputs[profileFieldPhotoURL].SetValue(principal.PhotoURL)
	}
	m.editing = true
	m.status = ""
	m.focus = profileFieldName
	m.inputs[profileFieldName].Focus()
	m.inputs[profileFieldPhotoURL].Blur()
}

func (m *profileModel) View() string {
	principal := m.session.Principal()
	if principal == nil {
		return renderPage("PROFILE", "Not signed in.", "esc: back")
	}

	var b strings.Builder
	b.WriteString("Email    │ " + principal.Email + "\n")
	b.WriteString("Provider │ " + principal.Provider + "\n")

	if m.editing {
		b.WriteString("Name     │ [" + m.inputs[profileFieldName].View() + "]\n")
		b.WriteString("Photo    │ [" + m.inputs[profileFieldPhotoURL].View() + "]\n")
		if m.submitting {
			b.WriteString("\n[Saving...]\n")
		} else {
			b.WriteString("\n[Save]\n")
		}
	} else {
		b.WriteString("Name     │ " + valueOrDash(principal.Name) + "\n")
		b.WriteString("Photo    │ " + valueOrDash(principal.PhotoURL) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	hotKeys := "e: edit │ s: sign out │ esc: back"
	if m.editing {
		hotKeys = "enter: save │ tab: next field │ esc: cancel"
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *profileModel) cmdSave(update models.ProfileUpdate) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return profileSavedMsg{err: auth.UpdateProfile(ctx, update)}
	}
}

func (m *profileModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return signOutDoneMsg{err: auth.SignOut(ctx)}
	}
}
