package account

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"medimind/internal/store"
)

// Service implements registration, login and session handling over the
// key-value store. Every mutation is written through synchronously;
// there is no rollback, so a write failure after an in-memory change
// can leave the two records out of step. That matches the original
// behavior and is acceptable for a local single-user store.
type Service struct {
	store store.Store
	log   *zap.Logger
	now   func() time.Time
}

// NewService returns a Service over st. A nil logger is replaced with a
// nop logger.
func NewService(st store.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, log: log, now: time.Now}
}

// SetClock overrides the clock used for ID generation. Tests use this
// to get deterministic IDs.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Users loads and parses the full user list. An absent record is an
// empty list. A record that fails to parse is a fault, not a user
// mistake, and propagates to the caller.
func (s *Service) Users() ([]User, error) {
	raw, ok, err := s.store.Get(store.KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var users []User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("corrupt users record: %w", err)
	}
	return users, nil
}

func (s *Service) saveUsers(users []User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	return s.store.Set(store.KeyUsers, string(raw))
}

// Signup registers a new account and logs it in. The email is a
// case-sensitive unique key across all users. The new ID is derived
// from the creation instant (unix milliseconds), bumped past any
// existing ID from the same millisecond.
func (s *Service) Signup(name, email, password string) (User, error) {
	if name == "" || email == "" || password == "" {
		return User{}, ErrMissingField
	}

	users, err := s.Users()
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return User{}, ErrEmailTaken
		}
	}

	id := s.now().UnixMilli()
	for _, u := range users {
		if u.ID >= id {
			id = u.ID + 1
		}
	}

	newUser := User{ID: id, Name: name, Email: email, Password: password}
	users = append(users, newUser)
	if err := s.saveUsers(users); err != nil {
		return User{}, err
	}
	if err := s.setSession(newUser); err != nil {
		return User{}, err
	}
	s.log.Info("user signed up", zap.String("email", email), zap.Int64("id", id))
	return newUser, nil
}

// Login checks email and password against the user list. A miss is
// always ErrInvalidCredentials; unknown email and wrong password are
// deliberately indistinguishable.
func (s *Service) Login(email, password string) (User, error) {
	if email == "" || password == "" {
		return User{}, ErrMissingField
	}

	users, err := s.Users()
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			if err := s.setSession(u); err != nil {
				return User{}, err
			}
			s.log.Info("user logged in", zap.String("email", email))
			return u, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

// Logout clears the session. No confirmation, no error when there was
// no session to begin with.
func (s *Service) Logout() error {
	s.log.Info("user logged out")
	return s.store.Delete(store.KeyCurrentUser)
}

// Current returns the logged-in user, if any. Absence is the normal
// unauthenticated state, not an error.
func (s *Service) Current() (User, bool, error) {
	raw, ok, err := s.store.Get(store.KeyCurrentUser)
	if err != nil {
		return User{}, false, err
	}
	if !ok {
		return User{}, false, nil
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, false, fmt.Errorf("corrupt session record: %w", err)
	}
	return u, true, nil
}

func (s *Service) setSession(u User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.store.Set(store.KeyCurrentUser, string(raw))
}
