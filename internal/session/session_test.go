package session

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/kyasarlamahesh/Dental-Center-Management/internal/clinic"
	"github.com/kyasarlamahesh/Dental-Center-Management/internal/kv"
)

func newTestMedium(t *testing.T) (*kv.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	medium, err := kv.NewRedisStore(mr.Addr(), "", "")
	if err != nil {
		t.Fatalf("new redis store: %v", err)
	}
	return medium, mr
}

func TestLoginSeesFreshlyCreatedPatient(t *testing.T) {
	medium, _ := newTestMedium(t)
	ctx := context.Background()

	store := clinic.NewStore(ctx, medium)
	store.AddPatient(ctx, clinic.NewPatient{
		Name:     "Jane",
		Email:    "jane@x.com",
		DOB:      "1990-01-01",
		Contact:  "555",
		Password: "pw",
	})

	m := NewManager(medium)
	user, err := m.Login(ctx, "jane@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Role != clinic.RolePatient || user.Email != "jane@x.com" {
		t.Fatalf("wrong user returned: %+v", user)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	medium, _ := newTestMedium(t)
	ctx := context.Background()

	clinic.NewStore(ctx, medium)
	m := NewManager(medium)

	if _, err := m.Login(ctx, "nobody@x.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, ok, err := m.Current(ctx); err != nil || ok {
		t.Fatalf("failed login must not create a session: ok=%v err=%v", ok, err)
	}
}

func TestLoginChecksExactPasswordMatch(t *testing.T) {
	medium, _ := newTestMedium(t)
	ctx := context.Background()

	store := clinic.NewStore(ctx, medium)
	store.AddPatient(ctx, clinic.NewPatient{
		Name: "Jane", Email: "jane@x.com", DOB: "1990-01-01",
		Contact: "555", Password: "pw",
	})

	m := NewManager(medium)
	if _, err := m.Login(ctx, "jane@x.com", "PW"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("password match must be exact, got %v", err)
	}
}

func TestSessionSurvivesManagerRestart(t *testing.T) {
	medium, _ := newTestMedium(t)
	ctx := context.Background()

	store := clinic.NewStore(ctx, medium)
	store.AddPatient(ctx, clinic.NewPatient{
		Name: "Jane", Email: "jane@x.com", DOB: "1990-01-01",
		Contact: "555", Password: "pw",
	})

	if _, err := NewManager(medium).Login(ctx, "jane@x.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// A new manager over the same medium sees the persisted identity.
	m2 := NewManager(medium)
	user, ok, err := m2.Current(ctx)
	if err != nil || !ok {
		t.Fatalf("expected live session: ok=%v err=%v", ok, err)
	}
	if user.Email != "jane@x.com" {
		t.Fatalf("wrong session identity: %+v", user)
	}

	if err := m2.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := m2.Current(ctx); ok {
		t.Fatal("session must be cleared after logout")
	}
}

func TestLoginReadsMediumNotMemory(t *testing.T) {
	medium, mr := newTestMedium(t)
	ctx := context.Background()
	m := NewManager(medium)

	// Another writer updates the users key behind the manager's back.
	mr.Set(clinic.UsersKey, `[{"id":"u7","role":"Admin","email":"late@x.com","password":"pw"}]`)

	user, err := m.Login(ctx, "late@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "u7" {
		t.Fatalf("expected the freshly written user, got %+v", user)
	}
}
