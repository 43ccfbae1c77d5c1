package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medimind/internal/account"
	"medimind/internal/chat"
	"medimind/internal/config"
	"medimind/internal/store"
)

func typeInto(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = step(t, m, keyMsg(string(r)))
	}
	return m
}

func TestSignupFlow(t *testing.T) {
	m := newTestModel(t)

	// Switch to the signup form and fill it field by field.
	m, _ = step(t, m, keyMsg("ctrl+t"))
	assert.Contains(t, m.View(), "Create your account")

	m = typeInto(t, m, "Alice")
	m, _ = step(t, m, keyMsg("tab"))
	m = typeInto(t, m, "alice@example.com")
	m, _ = step(t, m, keyMsg("tab"))
	m = typeInto(t, m, "secret")
	m, _ = step(t, m, keyMsg("enter"))

	require.True(t, m.LoggedIn())
	assert.Equal(t, TabChat, m.ActiveTab())
	// The greeting is personalized for the fresh session.
	assert.Contains(t, m.chatEngine.Messages()[0].Text, "Hello Alice!")
}

func TestSignupMissingFieldsShowsError(t *testing.T) {
	m := newTestModel(t)
	m, _ = step(t, m, keyMsg("ctrl+t"))
	m, _ = step(t, m, keyMsg("enter"))
	assert.False(t, m.LoggedIn())
	assert.Contains(t, m.View(), account.ErrMissingField.Error())
}

func TestLoginInvalidCredentials(t *testing.T) {
	m := newTestModel(t)
	m = typeInto(t, m, "nobody@example.com")
	m, _ = step(t, m, keyMsg("tab"))
	m = typeInto(t, m, "pw")
	m, _ = step(t, m, keyMsg("enter"))

	assert.False(t, m.LoggedIn())
	assert.Contains(t, m.View(), account.ErrInvalidCredentials.Error())
}

func TestLoginAfterSignupSharesStore(t *testing.T) {
	st := store.NewMemStore()
	svc := account.NewService(st, nil)
	_, err := svc.Signup("Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, svc.Logout())

	m, err := New(Options{Accounts: svc, Config: config.Default()})
	require.NoError(t, err)
	require.False(t, m.LoggedIn())

	m = typeInto(t, m, "alice@example.com")
	m, _ = step(t, m, keyMsg("tab"))
	m = typeInto(t, m, "secret")
	m, _ = step(t, m, keyMsg("enter"))
	assert.True(t, m.LoggedIn())
}

func TestChatSubmitSchedulesReply(t *testing.T) {
	m := newLoggedInModel(t)
	m = typeInto(t, m, "I have a headache")
	m, cmd := step(t, m, keyMsg("enter"))
	require.NotNil(t, cmd, "submit must schedule a resolution")

	msgs := m.chatEngine.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, chat.PendingText, msgs[2].Text)
	assert.True(t, msgs[2].Pending)
	assert.Empty(t, m.chatInput.Value())

	// The deferred tick resolves the placeholder in place.
	m, _ = step(t, m, replyReadyMsg{id: msgs[2].ID})
	msgs = m.chatEngine.Messages()
	assert.False(t, msgs[2].Pending)
	assert.Contains(t, msgs[2].Text, "tension headache")
}

func TestChatEmptySubmitIsNoOp(t *testing.T) {
	m := newLoggedInModel(t)
	m = typeInto(t, m, "   ")
	m, cmd := step(t, m, keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Len(t, m.chatEngine.Messages(), 1)
}

func TestAnalyzeWithoutSelectionBlocks(t *testing.T) {
	m := newLoggedInModel(t)
	m, _ = step(t, m, keyMsg("tab")) // symptoms tab
	m, cmd := step(t, m, keyMsg("a"))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Please select at least one symptom.")
}

func TestAnalyzeFlow(t *testing.T) {
	m := newLoggedInModel(t)
	m, _ = step(t, m, keyMsg("tab")) // symptoms tab

	// Toggle Fever (cursor on first entry) then Cough.
	m, _ = step(t, m, keyMsg("space"))
	m, _ = step(t, m, keyMsg("down"))
	m, _ = step(t, m, keyMsg("space"))

	m, cmd := step(t, m, keyMsg("a"))
	require.NotNil(t, cmd, "analyze must schedule the reveal")
	assert.True(t, m.analyzing)
	assert.Contains(t, m.View(), "Analyzing your symptoms: Fever, Cough...")

	m, _ = step(t, m, analysisReadyMsg{})
	assert.False(t, m.analyzing)
	assert.Contains(t, m.View(), "respiratory infection")
}

func TestAnalyzeToggleOffRestoresSet(t *testing.T) {
	m := newLoggedInModel(t)
	m, _ = step(t, m, keyMsg("tab"))

	m, _ = step(t, m, keyMsg("space")) // select Fever
	m, _ = step(t, m, keyMsg("space")) // deselect Fever
	assert.Empty(t, m.checker.Selected())
}

func TestRemindersAddAndDelete(t *testing.T) {
	m := newLoggedInModel(t)
	m, _ = step(t, m, keyMsg("tab"))
	m, _ = step(t, m, keyMsg("tab")) // chat -> symptoms -> reminders
	require.Equal(t, TabReminders, m.ActiveTab())

	assert.Contains(t, m.View(), "No reminders set.")

	m = typeInto(t, m, "Aspirin")
	m, _ = step(t, m, keyMsg("enter")) // to time field
	m = typeInto(t, m, "08:00")
	m, _ = step(t, m, keyMsg("enter")) // add

	view := m.View()
	assert.Contains(t, view, "Aspirin")
	assert.Contains(t, view, "Every day at 08:00")
	assert.NotContains(t, view, "No reminders set.")

	// Move into the list and delete it.
	m, _ = step(t, m, keyMsg("down"))
	m, _ = step(t, m, keyMsg("ctrl+d"))
	assert.Contains(t, m.View(), "No reminders set.")
}

func TestReminderEmptyFieldsNoOp(t *testing.T) {
	m := newLoggedInModel(t)
	m, _ = step(t, m, keyMsg("tab"))
	m, _ = step(t, m, keyMsg("tab"))
	require.Equal(t, TabReminders, m.ActiveTab())

	m = typeInto(t, m, "Aspirin")
	m, _ = step(t, m, keyMsg("enter")) // to time field, still empty
	m, _ = step(t, m, keyMsg("enter")) // add attempt with empty time
	assert.Empty(t, m.reminders.All())
	// The typed name is kept for correction.
	assert.Equal(t, "Aspirin", m.remName.Value())
}

func TestProfileEditAndSave(t *testing.T) {
	m := newLoggedInModel(t)
	m, _ = step(t, m, keyMsg("shift+tab")) // vitals
	require.Equal(t, TabVitals, m.ActiveTab())

	// Defaults render before any edit.
	assert.Contains(t, m.View(), "B+")
	assert.Contains(t, m.View(), "Dr. Sarah Smith")

	m, _ = step(t, m, keyMsg("e"))
	require.True(t, m.profEdit)

	// First field is Blood Group; replace its value.
	m.profInputs[0].SetValue("O-")
	m, _ = step(t, m, keyMsg("ctrl+s"))

	assert.False(t, m.profEdit)
	assert.Contains(t, m.View(), "Profile updated successfully!")

	// Both stored copies carry the edit.
	cur, ok, err := m.accounts.Current()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "O-", cur.BloodGroup)

	users, err := m.accounts.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "O-", users[0].BloodGroup)
}

func TestProfileEscCancelsEdit(t *testing.T) {
	m := newLoggedInModel(t)
	m, _ = step(t, m, keyMsg("shift+tab"))
	m, _ = step(t, m, keyMsg("e"))
	m.profInputs[0].SetValue("X+")
	m, _ = step(t, m, keyMsg("esc"))

	assert.False(t, m.profEdit)
	// Discarded: stored default shows again.
	assert.Equal(t, "B+", m.profInputs[0].Value())
}
