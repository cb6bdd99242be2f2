package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/hd-notes/internal/adapter"
	"github.com/MKhiriev/hd-notes/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenSignup
	screenSignin
	screenOTP
	screenList
	screenDetail
	screenCreate
)

type appModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	currentScreen screen

	welcome welcomeModel
	signup  signupModel
	signin  signinModel
	otp     otpModel
	list    listModel
	detail  detailModel
	create  createModel

	user      models.User
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64

	err error
}

func newAppModel(ctx context.Context, server adapter.ServerAdapter, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		server:        server,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		signup:        newSignupModel(),
		signin:        newSigninModel(),
		list:          newListModel(),
		create:        newCreateModel(),
		buildInfo:     buildInfo,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.currentScreen == screenWelcome || m.currentScreen == screenSignup ||
				m.currentScreen == screenSignin || m.currentScreen == screenOTP {
				m.err = ErrUserQuit
			}
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == 0 {
					return m, nil
				}
				return m, m.cmdDeleteNote(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case otpSentMsg:
		m.signup.submitting = false
		m.signin.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.otp = newOTPModel(msg.email)
		m.currentScreen = screenOTP
		return m, nil
	case verifiedMsg:
		m.otp.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.user = msg.user
		m.list = newListModel()
		m.currentScreen = screenList
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadNotes())
	case notesLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.list.notes = msg.notes
		if m.list.idx >= len(m.list.notes) {
			m.list.idx = len(m.list.notes) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case noteSavedMsg:
		m.create.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadNotes())
	case noteDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.pendingDelete = 0
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadNotes())
	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Copied!"
		}
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenSignup:
		return m.updateSignup(msg)
	case screenSignin:
		return m.updateSignin(msg)
	case screenOTP:
		return m.updateOTP(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenCreate:
		return m.updateCreate(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenSignup:
		body = m.signup.View()
	case screenSignin:
		body = m.signin.View()
	case screenOTP:
		body = m.otp.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenCreate:
		body = m.create.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case keyMsg.String() == "v":
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.signin = newSigninModel()
			m.currentScreen = screenSignin
		} else {
			m.signup = newSignupModel()
			m.currentScreen = screenSignup
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateSignup(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.signup = focusNextSignup(m.signup)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.signup = focusPrevSignup(m.signup)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.signup.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.signup.inputs[0].Value())
			dob := strings.TrimSpace(m.signup.inputs[1].Value())
			email := strings.TrimSpace(m.signup.inputs[2].Value())
			if name == "" || dob == "" || email == "" {
				m.showErrorf("Name, date of birth and email are required")
				return m, nil
			}
			m.signup.submitting = true
			return m, m.cmdSignup(models.SignupRequest{Name: name, DateOfBirth: dob, Email: email})
		}
	}

	var cmd tea.Cmd
	m.signup.inputs[m.signup.focus], cmd = m.signup.inputs[m.signup.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSignin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.signin.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.signin.input.Value())
			if email == "" {
				m.showErrorf("Email is required")
				return m, nil
			}
			m.signin.submitting = true
			return m, m.cmdSignin(models.SigninRequest{Email: email})
		}
	}

	var cmd tea.Cmd
	m.signin.input, cmd = m.signin.input.Update(msg)
	return m, cmd
}

func (m appModel) updateOTP(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.otp.submitting {
				return m, nil
			}
			code := strings.TrimSpace(m.otp.input.Value())
			if len(code) != 6 {
				m.showErrorf("The code is 6 digits")
				return m, nil
			}
			m.otp.submitting = true
			return m, m.cmdVerifyOTP(models.VerifyOTPRequest{Email: m.otp.email, OTP: code})
		}
	}

	var cmd tea.Cmd
	m.otp.input, cmd = m.otp.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{note: note}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newNote):
		m.create = newCreateModel()
		m.currentScreen = screenCreate
	case key.Matches(keyMsg, keys.refresh):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadNotes())
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = note.Title
		m.pendingDelete = note.NoteID
	case key.Matches(keyMsg, keys.copy):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(note.Content)
	case key.Matches(keyMsg, keys.logout):
		m.server.SetToken("")
		m.user = models.User{}
		m.welcome = newWelcomeModel()
		m.currentScreen = screenWelcome
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.note.Content)
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.note.Title
		m.pendingDelete = m.detail.note.NoteID
	}

	return m, nil
}

func (m appModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.create = focusNextCreate(m.create)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.create = focusPrevCreate(m.create)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.create.submitting {
				return m, nil
			}
			title := strings.TrimSpace(m.create.inputs[0].Value())
			content := strings.TrimSpace(m.create.inputs[1].Value())
			if title == "" || content == "" {
				m.showErrorf("Title and content are required")
				return m, nil
			}
			m.create.submitting = true
			return m, m.cmdCreateNote(models.CreateNoteRequest{Title: title, Content: content})
		}
	}

	var cmd tea.Cmd
	m.create.inputs[m.create.focus], cmd = m.create.inputs[m.create.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdSignup(req models.SignupRequest) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		if err := server.Signup(ctx, req); err != nil {
			return otpSentMsg{err: err}
		}
		return otpSentMsg{email: req.Email}
	}
}

func (m appModel) cmdSignin(req models.SigninRequest) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		if err := server.Signin(ctx, req); err != nil {
			return otpSentMsg{err: err}
		}
		return otpSentMsg{email: req.Email}
	}
}

func (m appModel) cmdVerifyOTP(req models.VerifyOTPRequest) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		user, err := server.VerifyOTP(ctx, req)
		return verifiedMsg{user: user, err: err}
	}
}

func (m appModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		notes, err := server.ListNotes(ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m appModel) cmdCreateNote(req models.CreateNoteRequest) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		note, err := server.CreateNote(ctx, req)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdDeleteNote(noteID int64) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		err := server.DeleteNote(ctx, noteID)
		return noteDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return noteSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextSignup(m signupModel) signupModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevSignup(m signupModel) signupModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextCreate(m createModel) createModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevCreate(m createModel) createModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
