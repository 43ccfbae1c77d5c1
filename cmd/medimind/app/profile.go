package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"medimind/internal/account"
)

// Dashboard field order. Labels and order mirror the original profile
// form.
var profileLabels = []string{
	"Blood Group",
	"Height (cm)",
	"Weight (kg)",
	"Age",
	"Gender",
	"Allergies",
	"Medical Conditions",
	"Emergency Contact",
	"Emergency Phone",
	"Doctor",
	"Clinic",
}

func profileToFields(p account.Profile) []string {
	return []string{
		p.BloodGroup, p.Height, p.Weight, p.Age, p.Gender,
		p.Allergies, p.Conditions, p.EmergencyName, p.EmergencyPhone,
		p.Doctor, p.Clinic,
	}
}

func fieldsToProfile(vals []string) account.Profile {
	return account.Profile{
		BloodGroup: vals[0], Height: vals[1], Weight: vals[2],
		Age: vals[3], Gender: vals[4], Allergies: vals[5],
		Conditions: vals[6], EmergencyName: vals[7],
		EmergencyPhone: vals[8], Doctor: vals[9], Clinic: vals[10],
	}
}

// initProfileInputs (re)builds the dashboard inputs from the current
// user's profile, defaults filled in.
func (m *Model) initProfileInputs() {
	vals := profileToFields(m.user.Profile())
	m.profInputs = make([]textinput.Model, len(vals))
	for i, v := range vals {
		in := newInput(profileLabels[i], 64)
		in.SetValue(v)
		m.profInputs[i] = in
	}
	m.profEdit = false
	m.profFocus = 0
}

// updateVitals drives the dashboard page. Edit mode is one global
// toggle: all fields unlock together, and saving or cancelling locks
// them all again.
func (m Model) updateVitals(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.profEdit {
		if msg.String() == "e" {
			m.profEdit = true
			m.status = ""
			m.focusProfileField(0)
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		// Discard edits: reload the stored values.
		m.initProfileInputs()
		return m, nil
	case tea.KeyDown, tea.KeyEnter:
		m.focusProfileField((m.profFocus + 1) % len(m.profInputs))
		return m, nil
	case tea.KeyUp:
		m.focusProfileField((m.profFocus + len(m.profInputs) - 1) % len(m.profInputs))
		return m, nil
	case tea.KeyCtrlS:
		return m.saveProfile()
	}

	var cmd tea.Cmd
	m.profInputs[m.profFocus], cmd = m.profInputs[m.profFocus].Update(msg)
	return m, cmd
}

func (m Model) saveProfile() (tea.Model, tea.Cmd) {
	vals := make([]string, len(m.profInputs))
	for i := range m.profInputs {
		vals[i] = m.profInputs[i].Value()
	}

	saved, err := m.accounts.SaveProfile(fieldsToProfile(vals))
	if err != nil {
		m.setStatus(err.Error(), true)
		m.log.Error("profile save failed", zap.Error(err))
		return m, nil
	}

	m.user = saved
	m.initProfileInputs()
	m.setStatus("Profile updated successfully!", false)
	return m, nil
}

func (m *Model) focusProfileField(idx int) {
	m.profFocus = idx
	for i := range m.profInputs {
		if i == idx {
			m.profInputs[i].Focus()
		} else {
			m.profInputs[i].Blur()
		}
	}
}
