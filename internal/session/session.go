// Package session owns login state. Credential checks read the users
// collection straight from the persistent medium rather than the
// in-memory store, so an account created moments ago (possibly by
// another process sharing the medium) can log in immediately.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/kyasarlamahesh/Dental-Center-Management/internal/clinic"
	"github.com/kyasarlamahesh/Dental-Center-Management/internal/kv"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Manager struct {
	kv kv.Store
}

func NewManager(medium kv.Store) *Manager {
	return &Manager{kv: medium}
}

// Login matches email and password exactly against the persisted users
// collection. On success the matched user becomes the persisted session
// identity, surviving restarts until Logout.
func (m *Manager) Login(ctx context.Context, email, password string) (clinic.User, error) {
	raw, ok, err := m.kv.Get(ctx, clinic.UsersKey)
	if err != nil {
		return clinic.User{}, fmt.Errorf("read users: %w", err)
	}

	var users []clinic.User
	if ok {
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			log.Printf("parse %s: %v, treating as empty", clinic.UsersKey, err)
		}
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			data, err := json.Marshal(u)
			if err != nil {
				return clinic.User{}, fmt.Errorf("marshal session user: %w", err)
			}
			if err := m.kv.Set(ctx, clinic.CurrentUserKey, string(data)); err != nil {
				return clinic.User{}, fmt.Errorf("persist session: %w", err)
			}
			return u, nil
		}
	}

	return clinic.User{}, ErrInvalidCredentials
}

// Current returns the persisted session identity, if any.
func (m *Manager) Current(ctx context.Context) (clinic.User, bool, error) {
	raw, ok, err := m.kv.Get(ctx, clinic.CurrentUserKey)
	if err != nil {
		return clinic.User{}, false, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return clinic.User{}, false, nil
	}

	var u clinic.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Printf("parse %s: %v, clearing session", clinic.CurrentUserKey, err)
		_ = m.kv.Delete(ctx, clinic.CurrentUserKey)
		return clinic.User{}, false, nil
	}
	return u, true, nil
}

// Logout clears the persisted session identity. Navigating back to the
// login entry point is the caller's concern.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.kv.Delete(ctx, clinic.CurrentUserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
