package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movieportal/movie-portal/models"
)

// fakeClientAuthService drives the form pages without a real session stack.
type fakeClientAuthService struct {
	signInFunc func(ctx context.Context, email, password string) (models.Principal, error)
	signUpFunc func(ctx context.Context, creds models.Credentials) (models.Principal, error)
}

func (f *fakeClientAuthService) Restore(ctx context.Context) {}

func (f *fakeClientAuthService) SignIn(ctx context.Context, email, password string) (models.Principal, error) {
	return f.signInFunc(ctx, email, password)
}

func (f *fakeClientAuthService) SignUp(ctx context.Context, creds models.Credentials) (models.Principal, error) {
	return f.signUpFunc(ctx, creds)
}

func (f *fakeClientAuthService) SignInFederated(ctx context.Context) (models.Principal, error) {
	return models.Principal{}, nil
}

func (f *fakeClientAuthService) SignOut(ctx context.Context) error {
	return nil
}

func (f *fakeClientAuthService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	return nil
}

func TestLoginModel_ReenterAfterSuccessfulSignInStartsFresh(t *testing.T) {
	auth := &fakeClientAuthService{
		signInFunc: func(ctx context.Context, email, password string) (models.Principal, error) {
			return models.Principal{Email: email}, nil
		},
	}

	login := newLoginModel(context.Background(), auth)
	login.inputs[0].SetValue("user@example.com")
	login.inputs[1].SetValue("Password1")

	_, cmd := login.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, login.submitting)

	// The root model consumes the successful result and navigates away, so
	// the page never sees it. The next visit starts with Init.
	result, ok := cmd().(SignInResult)
	require.True(t, ok)
	require.NoError(t, result.Err)

	login.Init()

	require.False(t, login.submitting, "login page re-entered after a successful sign-in must accept a new attempt")
	assert.Empty(t, login.errMsg)
	assert.Empty(t, login.inputs[0].Value())
	assert.Empty(t, login.inputs[1].Value())
	assert.Equal(t, 0, login.focus)
}

func TestLoginModel_FailedSignInUnlocksTheForm(t *testing.T) {
	auth := &fakeClientAuthService{
		signInFunc: func(ctx context.Context, email, password string) (models.Principal, error) {
			return models.Principal{}, assert.AnError
		},
	}

	login := newLoginModel(context.Background(), auth)
	login.inputs[0].SetValue("user@example.com")
	login.inputs[1].SetValue("wrong")

	_, cmd := login.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	// Failed attempts stay on the page, so the result is delivered to it.
	login.Update(cmd())

	assert.False(t, login.submitting)
	assert.NotEmpty(t, login.errMsg)
}

func TestRegisterModel_ReenterAfterSuccessfulSignUpStartsFresh(t *testing.T) {
	auth := &fakeClientAuthService{
		signUpFunc: func(ctx context.Context, creds models.Credentials) (models.Principal, error) {
			return models.Principal{Email: creds.Email}, nil
		},
	}

	register := newRegisterModel(context.Background(), auth)
	register.inputs[registerFieldName].SetValue("New User")
	register.inputs[registerFieldEmail].SetValue("new@example.com")
	register.inputs[registerFieldPassword].SetValue("Password1")

	_, cmd := register.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, register.submitting)

	result, ok := cmd().(SignInResult)
	require.True(t, ok)
	require.NoError(t, result.Err)

	register.Init()

	require.False(t, register.submitting)
	assert.Empty(t, register.errMsg)
	for i := range register.inputs {
		assert.Empty(t, register.inputs[i].Value())
	}
	assert.Equal(t, registerFieldName, register.focus)
}
