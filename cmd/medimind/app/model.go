// Package app implements the interactive MediMind terminal interface:
// an auth surface (login/signup) gating four tab pages — the chat
// assistant, the symptom checker, medication reminders, and the health
// dashboard. All state is owned by the Model and mutated only from the
// bubbletea update loop.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"medimind/cmd/medimind/ui"
	"medimind/internal/account"
	"medimind/internal/chat"
	"medimind/internal/config"
	"medimind/internal/reminder"
	"medimind/internal/symptom"
)

// Tab identifies one of the four content panels.
type Tab int

const (
	TabChat Tab = iota
	TabSymptoms
	TabReminders
	TabVitals
)

const tabCount = 4

type tabInfo struct {
	title    string
	subtitle string
}

// Header copy per tab, from the original app. The table is total over
// the Tab enum; looking up a value outside it is a programming error.
var tabData = map[Tab]tabInfo{
	TabChat:      {"Medical Assistant", "How can I help you today?"},
	TabSymptoms:  {"Symptom Checker", "Identify potential issues based on symptoms."},
	TabReminders: {"Medication Reminders", "Stay on track with your prescriptions."},
	TabVitals:    {"Health Dashboard", "Your real-time health metrics."},
}

// Info returns the header copy for the tab. Callers must pass one of
// the four defined tabs.
func (t Tab) Info() (title, subtitle string) {
	info, ok := tabData[t]
	if !ok {
		panic(fmt.Sprintf("app: unknown tab %d", t))
	}
	return info.title, info.subtitle
}

func (t Tab) String() string {
	switch t {
	case TabChat:
		return "Chat"
	case TabSymptoms:
		return "Symptoms"
	case TabReminders:
		return "Reminders"
	case TabVitals:
		return "Vitals"
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

// viewMode splits the UI into the auth surface and the main app, the
// two pages of the original.
type viewMode int

const (
	authView viewMode = iota
	mainView
)

// authMode selects which auth form is showing.
type authMode int

const (
	loginForm authMode = iota
	signupForm
)

// Auth form field indexes.
const (
	authFieldName = iota
	authFieldEmail
	authFieldPassword
	authFieldCount
)

// remFocus identifies which part of the reminders page has focus.
type remFocus int

const (
	remFocusName remFocus = iota
	remFocusTime
	remFocusList
)

// Options configures a new Model.
type Options struct {
	Accounts     *account.Service
	Config       config.Config
	ConfigEvents <-chan config.Config // optional live-reload stream
	Logger       *zap.Logger
}

// Model is the application state for the interactive UI.
type Model struct {
	accounts *account.Service
	log      *zap.Logger

	styles ui.Styles
	width  int
	height int

	view      viewMode
	activeTab Tab

	// Auth surface
	authMode   authMode
	authInputs [authFieldCount]textinput.Model
	authFocus  int
	authErr    string

	// Session
	user     account.User
	loggedIn bool

	// Chat tab
	chatEngine *chat.Engine
	chatInput  textinput.Model
	chatVP     viewport.Model
	renderer   *glamour.TermRenderer

	// Symptoms tab
	checker         *symptom.Checker
	symptomCursor   int
	analyzing       bool
	analysisVisible bool
	analysisText    string
	spinner         spinner.Model

	// Reminders tab
	reminders *reminder.Store
	remName   textinput.Model
	remTime   textinput.Model
	remFocus  remFocus
	remCursor int

	// Vitals tab
	profEdit   bool
	profInputs []textinput.Model
	profFocus  int

	status    string
	statusErr bool

	configEvents <-chan config.Config
}

// New builds the application model. The page guard of the original is
// applied here: with a stored session the app opens on the main view,
// otherwise on the login form.
func New(opts Options) (Model, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	m := Model{
		accounts:     opts.Accounts,
		log:          log,
		styles:       ui.NewStyles(ui.ThemeByName(opts.Config.Theme)),
		view:         authView,
		authMode:     loginForm,
		checker:      &symptom.Checker{},
		reminders:    reminder.NewStore(),
		configEvents: opts.ConfigEvents,
	}

	m.authInputs[authFieldName] = newInput("Full name", 0)
	m.authInputs[authFieldEmail] = newInput("Email", 0)
	m.authInputs[authFieldPassword] = newInput("Password", 0)
	m.authInputs[authFieldPassword].EchoMode = textinput.EchoPassword

	m.chatInput = newInput("Describe your symptoms or ask a question...", 0)
	m.remName = newInput("Medication name", 24)
	m.remTime = newInput("HH:MM", 8)

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot

	m.chatVP = viewport.New(80, 20)

	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(76)); err == nil {
		m.renderer = r
	}

	u, ok, err := m.accounts.Current()
	if err != nil {
		return Model{}, err
	}
	if ok {
		m.enterMain(u)
	} else {
		m.focusAuthField(m.firstAuthField())
	}
	return m, nil
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	if limit > 0 {
		in.CharLimit = limit
	}
	return in
}

// enterMain switches to the main view for the given user, rebuilding
// the per-session page state the way a fresh page load would.
func (m *Model) enterMain(u account.User) {
	m.user = u
	m.loggedIn = true
	m.view = mainView
	m.activeTab = TabChat
	m.chatEngine = chat.NewEngine(u.Name)
	m.chatInput.Focus()
	m.refreshTranscript()
	m.initProfileInputs()
	m.log.Info("session active", zap.String("email", u.Email))
}

// enterAuth returns to the login surface, dropping per-session state.
func (m *Model) enterAuth() {
	m.user = account.User{}
	m.loggedIn = false
	m.view = authView
	m.authMode = loginForm
	m.authErr = ""
	for i := range m.authInputs {
		m.authInputs[i].SetValue("")
	}
	m.chatEngine = nil
	m.checker = &symptom.Checker{}
	m.reminders = reminder.NewStore()
	m.analyzing = false
	m.analysisVisible = false
	m.status = ""
	m.focusAuthField(m.firstAuthField())
}

func (m Model) firstAuthField() int {
	if m.authMode == signupForm {
		return authFieldName
	}
	return authFieldEmail
}

func (m *Model) focusAuthField(idx int) {
	m.authFocus = idx
	for i := range m.authInputs {
		if i == idx {
			m.authInputs[i].Focus()
		} else {
			m.authInputs[i].Blur()
		}
	}
}

// ActiveTab reports the currently visible tab.
func (m Model) ActiveTab() Tab { return m.activeTab }

// LoggedIn reports whether a session is active.
func (m Model) LoggedIn() bool { return m.loggedIn }

// Init starts the blink cursor, the spinner, and the config listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.configEvents != nil {
		cmds = append(cmds, m.waitForConfig())
	}
	return tea.Batch(cmds...)
}
