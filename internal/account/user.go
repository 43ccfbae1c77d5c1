// Package account manages the local user records: registration, login,
// the current session, and the extended health profile. All state lives
// in the key-value store under two records: the full user list and a
// detached copy of the logged-in user.
package account

import "time"

// User is a registered account plus its health profile. The JSON field
// names match the records the original app persisted, so an existing
// store keeps working. Profile fields are optional; empty means "never
// set" and display code substitutes defaults via Profile().
//
// Passwords are stored in plaintext. Credential encryption is an
// explicit non-goal for this local single-user app.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	BloodGroup     string `json:"bloodGroup,omitempty"`
	Height         string `json:"height,omitempty"`
	Weight         string `json:"weight,omitempty"`
	Age            string `json:"age,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Allergies      string `json:"allergies,omitempty"`
	Conditions     string `json:"conditions,omitempty"`
	EmergencyName  string `json:"emergencyName,omitempty"`
	EmergencyPhone string `json:"emergencyPhone,omitempty"`
	Doctor         string `json:"doctor,omitempty"`
	Clinic         string `json:"clinic,omitempty"`
}

// JoinedAt derives the signup instant from the ID, which is the
// unix-millisecond creation time.
func (u User) JoinedAt() time.Time {
	return time.UnixMilli(u.ID)
}

// JoinedDate formats the signup instant the way the dashboard shows it,
// e.g. "Jan 12, 2024".
func (u User) JoinedDate() string {
	return u.JoinedAt().Format("Jan 2, 2006")
}
