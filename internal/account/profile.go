package account

import "go.uber.org/zap"

// Profile is the view of a user's health fields with defaults filled
// in, so the dashboard always renders a complete form.
type Profile struct {
	BloodGroup     string
	Height         string
	Weight         string
	Age            string
	Gender         string
	Allergies      string
	Conditions     string
	EmergencyName  string
	EmergencyPhone string
	Doctor         string
	Clinic         string
}

// Display defaults for fields the user has never set. These reproduce
// the placeholder values the original dashboard shipped with.
var defaultProfile = Profile{
	BloodGroup:     "B+",
	Height:         "175",
	Weight:         "70",
	Age:            "25",
	Gender:         "Male",
	Allergies:      "None",
	Conditions:     "None",
	EmergencyName:  "Jane Doe",
	EmergencyPhone: "+1 234 567 890",
	Doctor:         "Dr. Sarah Smith",
	Clinic:         "Central Medical Care",
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Profile returns the user's health fields with defaults substituted
// for anything unset.
func (u User) Profile() Profile {
	return Profile{
		BloodGroup:     orDefault(u.BloodGroup, defaultProfile.BloodGroup),
		Height:         orDefault(u.Height, defaultProfile.Height),
		Weight:         orDefault(u.Weight, defaultProfile.Weight),
		Age:            orDefault(u.Age, defaultProfile.Age),
		Gender:         orDefault(u.Gender, defaultProfile.Gender),
		Allergies:      orDefault(u.Allergies, defaultProfile.Allergies),
		Conditions:     orDefault(u.Conditions, defaultProfile.Conditions),
		EmergencyName:  orDefault(u.EmergencyName, defaultProfile.EmergencyName),
		EmergencyPhone: orDefault(u.EmergencyPhone, defaultProfile.EmergencyPhone),
		Doctor:         orDefault(u.Doctor, defaultProfile.Doctor),
		Clinic:         orDefault(u.Clinic, defaultProfile.Clinic),
	}
}

func (u *User) applyProfile(p Profile) {
	u.BloodGroup = p.BloodGroup
	u.Height = p.Height
	u.Weight = p.Weight
	u.Age = p.Age
	u.Gender = p.Gender
	u.Allergies = p.Allergies
	u.Conditions = p.Conditions
	u.EmergencyName = p.EmergencyName
	u.EmergencyPhone = p.EmergencyPhone
	u.Doctor = p.Doctor
	u.Clinic = p.Clinic
}

// SaveProfile writes the given profile fields onto the logged-in user.
// Both copies of the record are updated: the session copy and the
// matching entry in the user list, located by email. If the email is
// missing from the list (record removed out of band), the list is left
// untouched while the session copy is still written. That partial
// write is the original behavior, kept rather than repaired.
func (s *Service) SaveProfile(p Profile) (User, error) {
	u, ok, err := s.Current()
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, ErrNoSession
	}

	u.applyProfile(p)
	if err := s.setSession(u); err != nil {
		return User{}, err
	}

	users, err := s.Users()
	if err != nil {
		return User{}, err
	}
	for i := range users {
		if users[i].Email == u.Email {
			users[i] = u
			if err := s.saveUsers(users); err != nil {
				return User{}, err
			}
			break
		}
	}

	s.log.Info("profile saved", zap.String("email", u.Email))
	return u, nil
}
