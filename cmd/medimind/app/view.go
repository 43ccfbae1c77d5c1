package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"medimind/internal/chat"
	"medimind/internal/symptom"
)

func (m Model) View() string {
	if m.view == authView {
		return m.viewAuth()
	}
	return m.viewMain()
}

func (m Model) viewAuth() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("MediMind"))
	b.WriteString("\n")
	if m.authMode == signupForm {
		b.WriteString(m.styles.Subtitle.Render("Create your account"))
	} else {
		b.WriteString(m.styles.Subtitle.Render("Sign in to continue"))
	}
	b.WriteString("\n\n")

	if m.authMode == signupForm {
		b.WriteString(m.styles.Label.Render("Name") + "\n")
		b.WriteString(m.authInputs[authFieldName].View() + "\n\n")
	}
	b.WriteString(m.styles.Label.Render("Email") + "\n")
	b.WriteString(m.authInputs[authFieldEmail].View() + "\n\n")
	b.WriteString(m.styles.Label.Render("Password") + "\n")
	b.WriteString(m.authInputs[authFieldPassword].View() + "\n")

	if m.authErr != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.authErr) + "\n")
	}

	toggle := "ctrl+t: create an account"
	if m.authMode == signupForm {
		toggle = "ctrl+t: back to sign in"
	}
	b.WriteString("\n" + m.styles.Footer.Render("enter: submit • "+toggle+" • ctrl+c: quit"))
	return m.styles.Panel.Render(b.String())
}

func (m Model) viewMain() string {
	title, subtitle := m.activeTab.Info()

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(title))
	b.WriteString("  ")
	b.WriteString(m.styles.Subtitle.Render(subtitle))
	b.WriteString("\n")
	b.WriteString(m.viewTabBar())
	b.WriteString("\n\n")

	switch m.activeTab {
	case TabChat:
		b.WriteString(m.viewChat())
	case TabSymptoms:
		b.WriteString(m.viewSymptoms())
	case TabReminders:
		b.WriteString(m.viewReminders())
	case TabVitals:
		b.WriteString(m.viewVitals())
	}

	if m.status != "" {
		style := m.styles.Success
		if m.statusErr {
			style = m.styles.Error
		}
		b.WriteString("\n" + style.Render(m.status))
	}

	b.WriteString("\n" + m.styles.Footer.Render(m.footerHint()))
	return m.styles.Panel.Render(b.String())
}

func (m Model) viewTabBar() string {
	var tabs []string
	for t := TabChat; t <= TabVitals; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) footerHint() string {
	base := "tab: switch tab • ctrl+l: logout • ctrl+c: quit"
	switch m.activeTab {
	case TabSymptoms:
		return "space: toggle • a: analyze • " + base
	case TabReminders:
		return "enter: add • ctrl+d: delete • " + base
	case TabVitals:
		if m.profEdit {
			return "ctrl+s: save • esc: cancel • " + base
		}
		return "e: edit profile • " + base
	}
	return base
}

// refreshTranscript re-renders the chat history into the viewport and
// pins it to the bottom, like the original's scroll-to-bottom.
func (m *Model) refreshTranscript() {
	if m.chatEngine == nil {
		return
	}
	m.chatVP.SetContent(m.renderTranscript())
	m.chatVP.GotoBottom()
}

func (m Model) renderTranscript() string {
	var b strings.Builder
	for _, msg := range m.chatEngine.Messages() {
		stamp := m.styles.MessageTime.Render(msg.Time.Format("15:04"))
		switch msg.Role {
		case chat.RoleUser:
			b.WriteString(m.styles.UserMessage.Render("You: "+msg.Text) + " " + stamp + "\n")
		case chat.RoleBot:
			b.WriteString(m.styles.BotMessage.Render("MediMind: "+m.renderBot(msg)) + " " + stamp + "\n")
		}
	}
	return b.String()
}

// renderBot passes resolved replies through the markdown renderer when
// one is available. Placeholders stay plain.
func (m Model) renderBot(msg chat.Message) string {
	if msg.Pending || m.renderer == nil {
		return msg.Text
	}
	out, err := m.renderer.Render(msg.Text)
	if err != nil {
		return msg.Text
	}
	return strings.TrimSpace(out)
}

func (m Model) viewChat() string {
	var b strings.Builder
	b.WriteString(m.chatVP.View())
	b.WriteString("\n\n")
	b.WriteString(m.chatInput.View())
	return b.String()
}

func (m Model) viewSymptoms() string {
	var b strings.Builder
	for i, s := range symptom.Catalogue {
		marker := "[ ]"
		if m.checker.IsSelected(s) {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s", marker, s)
		if i == m.symptomCursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if m.analyzing {
		b.WriteString("\n" + m.spinner.View() +
			" Analyzing your symptoms: " + strings.Join(m.checker.Selected(), ", ") + "...\n")
	}
	if m.analysisVisible {
		b.WriteString("\n" + m.styles.Card.Render(m.analysisText) + "\n")
	}
	return b.String()
}

func (m Model) viewReminders() string {
	var b strings.Builder
	b.WriteString(m.remName.View() + "  " + m.remTime.View() + "\n\n")
	b.WriteString(m.styles.Header.Render("Upcoming") + "\n")

	all := m.reminders.All()
	if len(all) == 0 {
		b.WriteString(m.styles.Muted.Render("No reminders set.") + "\n")
		return b.String()
	}

	for i, r := range all {
		line := fmt.Sprintf("%s — Every day at %s", r.Name, r.Time)
		if m.remFocus == remFocusList && i == m.remCursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewVitals() string {
	var b strings.Builder
	b.WriteString(m.styles.Value.Render(m.user.Name) + "  " +
		m.styles.Muted.Render(m.user.Email) + "\n")
	b.WriteString(m.styles.Muted.Render("Joined "+m.user.JoinedDate()) + "\n\n")

	for i, label := range profileLabels {
		b.WriteString(m.styles.Label.Render(fmt.Sprintf("%-18s", label)))
		if m.profEdit {
			b.WriteString(m.profInputs[i].View())
		} else {
			b.WriteString(m.styles.Value.Render(m.profInputs[i].Value()))
		}
		b.WriteString("\n")
	}
	return b.String()
}
