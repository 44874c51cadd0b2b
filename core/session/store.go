package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"sync"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/eduflowhq/eduflow/core"
	"github.com/eduflowhq/eduflow/core/notification"
	"github.com/eduflowhq/eduflow/core/user"
)

var (
	// errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")

	nowFunc = time.Now       // mockable
	newID   = uuid.NewString // mockable
)

type (
	// Deps are the collaborators a Store needs. Logger and Mail are optional.
	Deps struct {
		KV     core.KVStore
		Seed   user.Directory
		Notifs notification.Repository
		Scheme user.PasswordScheme
		Logger core.Logger
		Mail   core.EmailService
	}

	// Store is the single source of truth for "who is signed in". It owns the
	// locally registered user pool (persisted, passwords included), the current
	// session identity (persisted, sanitized) and the session-scoped
	// notification list (in-memory only, discarded on logout).
	//
	// Registered users shadow seed accounts sharing the same email: login
	// always checks the local pool first. The mutex guards process-local state;
	// concurrent processes sharing the KV store are last-writer-wins.
	Store struct {
		mu   sync.RWMutex
		deps Deps

		current       *user.User
		notifications []notification.Notification
	}
)

// NewStore builds a Store and rehydrates the session from the KV store:
// a well-formed persisted identity resumes signed in, anything else starts
// signed out.
func NewStore(deps Deps) *Store {
	s := &Store{deps: deps}

	if raw, ok := deps.KV.Get(core.KVCurrentUserKey); ok {
		var usr user.User
		if err := json.Unmarshal(raw, &usr); err == nil && usr.ID != "" && usr.Email != "" {
			usr = usr.Sanitized()
			s.current = &usr
		}
	}
	return s
}

// Login authenticates against the registered pool first, then the seed pool.
// Emails are matched exactly, case-sensitively, as stored. A missing stored
// password (seed accounts) matches any supplied password; expectedRole, when
// given, must equal the stored role. On success the session identity is
// persisted and the notification list is reset: empty for registered users,
// seeded from the fixture pool for seed users.
func (s *Store) Login(email, password, expectedRole string) error {
	if email == "" || password == "" {
		return ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, usr := range s.localUsers() {
		if usr.Email != email {
			continue
		}
		if usr.Password != "" && !s.deps.Scheme.Match(usr.Password, password) {
			return ErrInvalidCredentials
		}
		if expectedRole != "" && usr.Role != expectedRole {
			return ErrInvalidCredentials
		}
		sanitized := usr.Sanitized()
		s.current = &sanitized
		s.notifications = nil
		s.persistSession()
		return nil
	}

	usr, err := s.deps.Seed.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return pkgerrors.Wrap(err, "finding seed user by email")
	}
	if expectedRole != "" && usr.Role != expectedRole {
		return ErrInvalidCredentials
	}
	notifs, err := s.deps.Notifs.ListNotificationsForUser(usr.ID)
	if err != nil {
		return pkgerrors.Wrap(err, "listing notifications for user")
	}
	s.current = &usr
	s.notifications = notifs
	s.persistSession()
	return nil
}

// Register creates a new local account and signs it in. Role defaults to
// student. The email must not exist in either pool (exact, case-sensitive
// match). The stored record keeps the credential for future logins; the
// session copy is sanitized.
func (s *Store) Register(name, email, password, role string) error {
	if name == "" || email == "" || password == "" {
		return core.NewValidationError(errors.New("name, email and password are required"))
	}
	if role == "" {
		role = user.RoleStudent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	locals := s.localUsers()
	for _, usr := range locals {
		if usr.Email == email {
			return ErrEmailTaken
		}
	}
	if _, err := s.deps.Seed.GetUserByEmail(email); err == nil {
		return ErrEmailTaken
	}

	stored, err := s.deps.Scheme.Hash(password)
	if err != nil {
		return pkgerrors.Wrap(err, "hashing password")
	}
	usr := user.User{
		ID:        newID(),
		Email:     email,
		Name:      name,
		Role:      role,
		Password:  stored,
		CreatedAt: nowFunc().UTC().Format(time.RFC3339),
	}
	if err := s.saveLocalUsers(append(locals, usr)); err != nil {
		return pkgerrors.Wrap(err, "saving registered users")
	}

	sanitized := usr.Sanitized()
	s.current = &sanitized
	s.notifications = nil
	s.persistSession()
	s.sendWelcomeEmail(usr)
	return nil
}

// Logout clears the session and its notification list and removes the
// persisted identity. Safe to call when already signed out.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.notifications = nil
	if err := s.deps.KV.Delete(core.KVCurrentUserKey); err != nil {
		s.logWarn("removing persisted session", err)
	}
}

// MarkNotificationRead flips the matching notification to read. An unknown id
// is a no-op. Read state is session-scoped and never persisted.
func (s *Store) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// CurrentUser returns the sanitized signed-in identity, if any.
func (s *Store) CurrentUser() (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return user.User{}, false
	}
	return *s.current, true
}

// Notifications returns a copy of the session-scoped notification list.
func (s *Store) Notifications() []notification.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notifs := make([]notification.Notification, len(s.notifications))
	copy(notifs, s.notifications)
	return notifs
}

// UnreadCount is a pure projection over the notification list.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// RegisteredUsers returns the persisted local pool, sanitized.
func (s *Store) RegisteredUsers() []user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	locals := s.localUsers()
	users := make([]user.User, 0, len(locals))
	for _, usr := range locals {
		users = append(users, usr.Sanitized())
	}
	return users
}

// localUsers reads the registered pool from the KV store. It is re-read on
// every call: another process may have written the pool since (last writer
// wins). An absent or unreadable value is an empty pool.
func (s *Store) localUsers() []user.User {
	raw, ok := s.deps.KV.Get(core.KVUsersKey)
	if !ok {
		return nil
	}
	var users []user.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil
	}
	return users
}

func (s *Store) saveLocalUsers(users []user.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.deps.KV.Set(core.KVUsersKey, raw)
}

// persistSession writes the sanitized identity so it survives a restart.
// A write failure leaves the in-memory session intact: the login itself
// succeeded, only rehydration is lost.
func (s *Store) persistSession() {
	raw, err := json.Marshal(s.current)
	if err != nil {
		s.logWarn("serializing session", err)
		return
	}
	if err := s.deps.KV.Set(core.KVCurrentUserKey, raw); err != nil {
		s.logWarn("persisting session", err)
	}
}

func (s *Store) sendWelcomeEmail(usr user.User) {
	if s.deps.Mail == nil {
		return
	}
	s.deps.Mail.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject: "Welcome!",
		TextContent: fmt.Sprintf(
			"Hi %s,\n\nYour %s account has been created. Sign in any time with %s.",
			usr.Name, usr.Role, usr.Email,
		),
	})
}

func (s *Store) logWarn(msg string, err error) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, err)
	}
}
