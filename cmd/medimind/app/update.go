package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"medimind/cmd/medimind/ui"
	"medimind/internal/account"
	"medimind/internal/chat"
	"medimind/internal/config"
	"medimind/internal/symptom"
)

// Messages delivered by deferred work. Each submission schedules its
// own tick; nothing queues or cancels in-flight resolutions, so
// overlapping completions land in delivery order.
type (
	replyReadyMsg    struct{ id int64 }
	analysisReadyMsg struct{}
	configReloadMsg  config.Config
)

func scheduleReply(id int64) tea.Cmd {
	return tea.Tick(chat.ReplyDelay, func(time.Time) tea.Msg {
		return replyReadyMsg{id: id}
	})
}

func scheduleAnalysis() tea.Cmd {
	return tea.Tick(symptom.AnalyzeDelay, func(time.Time) tea.Msg {
		return analysisReadyMsg{}
	})
}

func (m Model) waitForConfig() tea.Cmd {
	events := m.configEvents
	return func() tea.Msg {
		cfg, ok := <-events
		if !ok {
			return nil
		}
		return configReloadMsg(cfg)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chatVP.Width = msg.Width - 4
		m.chatVP.Height = msg.Height - 10
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
		if m.view == authView {
			return m.updateAuth(msg)
		}
		return m.updateMain(msg)

	case replyReadyMsg:
		if m.chatEngine != nil && m.chatEngine.Resolve(msg.id) {
			m.refreshTranscript()
		}
		return m, nil

	case analysisReadyMsg:
		if !m.analyzing {
			return m, nil
		}
		m.analyzing = false
		advisory, err := m.checker.Analyze()
		if err != nil {
			// Selection emptied while the analysis was in flight; show
			// nothing rather than a stale advisory.
			m.analysisVisible = false
			return m, nil
		}
		m.analysisText = advisory
		m.analysisVisible = true
		return m, nil

	case configReloadMsg:
		m.styles = ui.NewStyles(ui.ThemeByName(config.Config(msg).Theme))
		m.log.Info("theme reloaded", zap.String("theme", config.Config(msg).Theme))
		return m, m.waitForConfig()

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

// updateMain handles keys for the main view: global tab switching
// first, then the active tab's own keys.
func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab:
		m.switchTab(Tab((int(m.activeTab) + 1) % tabCount))
		return m, nil
	case tea.KeyShiftTab:
		m.switchTab(Tab((int(m.activeTab) + tabCount - 1) % tabCount))
		return m, nil
	case tea.KeyCtrlL:
		if err := m.accounts.Logout(); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.enterAuth()
		return m, nil
	}

	// Digit shortcuts jump straight to a tab, except while some text
	// input is capturing keys.
	if !m.typingActive() {
		switch msg.String() {
		case "1", "2", "3", "4":
			m.switchTab(Tab(int(msg.String()[0] - '1')))
			return m, nil
		}
	}

	switch m.activeTab {
	case TabChat:
		return m.updateChat(msg)
	case TabSymptoms:
		return m.updateSymptoms(msg)
	case TabReminders:
		return m.updateReminders(msg)
	case TabVitals:
		return m.updateVitals(msg)
	}
	return m, nil
}

// typingActive reports whether the active tab currently routes
// printable keys into a text input.
func (m Model) typingActive() bool {
	switch m.activeTab {
	case TabChat:
		return true
	case TabReminders:
		return m.remFocus != remFocusList
	case TabVitals:
		return m.profEdit
	}
	return false
}

// switchTab shows exactly one panel and clears the transient status
// line. Header copy follows from the tab lookup at render time.
func (m *Model) switchTab(t Tab) {
	m.activeTab = t
	m.status = ""
	if t == TabChat {
		m.chatInput.Focus()
	} else {
		m.chatInput.Blur()
	}
	if t == TabReminders && m.remFocus != remFocusList {
		m.focusReminderField(m.remFocus)
	}
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		id, ok := m.chatEngine.Submit(m.chatInput.Value())
		if !ok {
			return m, nil
		}
		m.chatInput.SetValue("")
		m.refreshTranscript()
		return m, scheduleReply(id)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) updateSymptoms(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.symptomCursor > 0 {
			m.symptomCursor--
		}
	case "down", "j":
		if m.symptomCursor < len(symptom.Catalogue)-1 {
			m.symptomCursor++
		}
	case " ", "enter":
		m.checker.Toggle(symptom.Catalogue[m.symptomCursor])
	case "a":
		if len(m.checker.Selected()) == 0 {
			m.setStatus("Please select at least one symptom.", true)
			return m, nil
		}
		m.status = ""
		m.analyzing = true
		m.analysisVisible = false
		return m, scheduleAnalysis()
	}
	return m, nil
}

func (m Model) updateReminders(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right":
		if m.remFocus == remFocusName {
			m.focusReminderField(remFocusTime)
		} else if m.remFocus == remFocusTime {
			m.focusReminderField(remFocusName)
		}
		return m, nil
	case "up":
		if m.remFocus == remFocusList {
			if m.remCursor > 0 {
				m.remCursor--
			} else {
				m.focusReminderField(remFocusName)
			}
		}
		return m, nil
	case "down":
		if m.remFocus != remFocusList && len(m.reminders.All()) > 0 {
			m.remFocus = remFocusList
			m.remName.Blur()
			m.remTime.Blur()
			m.remCursor = 0
		} else if m.remFocus == remFocusList && m.remCursor < len(m.reminders.All())-1 {
			m.remCursor++
		}
		return m, nil
	case "enter":
		if m.remFocus == remFocusName {
			m.focusReminderField(remFocusTime)
			return m, nil
		}
		if m.remFocus == remFocusTime {
			if _, ok := m.reminders.Add(m.remName.Value(), m.remTime.Value()); ok {
				m.remName.SetValue("")
				m.remTime.SetValue("")
				m.focusReminderField(remFocusName)
			}
			return m, nil
		}
	case "ctrl+d":
		if m.remFocus == remFocusList {
			all := m.reminders.All()
			if m.remCursor < len(all) {
				m.reminders.Remove(all[m.remCursor].ID)
			}
			if m.remCursor >= len(m.reminders.All()) {
				m.remCursor = len(m.reminders.All()) - 1
			}
			if len(m.reminders.All()) == 0 {
				m.focusReminderField(remFocusName)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.remFocus {
	case remFocusName:
		m.remName, cmd = m.remName.Update(msg)
	case remFocusTime:
		m.remTime, cmd = m.remTime.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusReminderField(f remFocus) {
	if f == remFocusList {
		f = remFocusName
	}
	m.remFocus = f
	if f == remFocusName {
		m.remName.Focus()
		m.remTime.Blur()
	} else {
		m.remTime.Focus()
		m.remName.Blur()
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// authSubmit runs the login or signup for the current form values and
// applies the redirect-on-success behavior.
func (m Model) authSubmit() (tea.Model, tea.Cmd) {
	var (
		u   account.User
		err error
	)
	if m.authMode == signupForm {
		u, err = m.accounts.Signup(
			m.authInputs[authFieldName].Value(),
			m.authInputs[authFieldEmail].Value(),
			m.authInputs[authFieldPassword].Value(),
		)
	} else {
		u, err = m.accounts.Login(
			m.authInputs[authFieldEmail].Value(),
			m.authInputs[authFieldPassword].Value(),
		)
	}
	if err != nil {
		if errors.Is(err, account.ErrMissingField) ||
			errors.Is(err, account.ErrEmailTaken) ||
			errors.Is(err, account.ErrInvalidCredentials) {
			m.authErr = err.Error()
			return m, nil
		}
		m.authErr = err.Error()
		m.log.Error("auth failure", zap.Error(err))
		return m, nil
	}
	m.enterMain(u)
	return m, nil
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.authSubmit()
	case tea.KeyTab, tea.KeyDown:
		m.cycleAuthFocus(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.cycleAuthFocus(-1)
		return m, nil
	case tea.KeyCtrlT:
		if m.authMode == loginForm {
			m.authMode = signupForm
		} else {
			m.authMode = loginForm
		}
		m.authErr = ""
		m.focusAuthField(m.firstAuthField())
		return m, nil
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

func (m *Model) cycleAuthFocus(dir int) {
	first := m.firstAuthField()
	count := authFieldCount - first
	next := first + ((m.authFocus-first+dir)+count)%count
	m.focusAuthField(next)
}
