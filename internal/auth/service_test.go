package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/iamtheretronerd/levelup/internal/logger"
	"github.com/iamtheretronerd/levelup/internal/store"
)

// fakeUserRepo is an in-memory store.UserRepo keyed by email.
type fakeUserRepo struct {
	users map[string]*store.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*store.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *store.User) error {
	if r.err != nil {
		return r.err
	}
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) ByEmail(_ context.Context, email string) (*store.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(_ context.Context, currentEmail string, u *store.User) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	existing, ok := r.users[currentEmail]
	if !ok {
		return false, nil
	}
	existing.Name = u.Name
	existing.ProfileImage = u.ProfileImage
	if u.Password != "" {
		existing.Password = u.Password
	}
	if u.Email != currentEmail {
		delete(r.users, currentEmail)
		existing.Email = u.Email
		r.users[u.Email] = existing
	}
	return true, nil
}

func (r *fakeUserRepo) DeleteByEmail(_ context.Context, email string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.users[email]; !ok {
		return false, nil
	}
	delete(r.users, email)
	return true, nil
}

func newTestService() (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewService(repo, logger.NewNop()), repo
}

func signupAda(t *testing.T, svc *Service) *store.User {
	t.Helper()
	u, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	return u
}

func TestSignup(t *testing.T) {
	svc, repo := newTestService()

	u := signupAda(t, svc)
	if u.ID.String() == "" {
		t.Fatal("expected an assigned id")
	}
	if _, ok := repo.users["ada@example.com"]; !ok {
		t.Fatal("user not persisted")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	signupAda(t, svc)

	_, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Other Ada",
		Email:    "ada@example.com",
		Password: "other",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	signupAda(t, svc)
	ctx := context.Background()

	u, err := svc.Login(ctx, "ada@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Name != "Ada" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := svc.Login(ctx, "ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	svc, repo := newTestService()
	signupAda(t, svc)
	ctx := context.Background()

	err := svc.Update(ctx, UpdateInput{
		CurrentEmail: "ada@example.com",
		Name:         "Ada L",
		Email:        "ada.l@example.com",
		// Blank password keeps the stored one.
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	u := repo.users["ada.l@example.com"]
	if u == nil || u.Name != "Ada L" {
		t.Fatalf("update not applied: %+v", u)
	}
	if u.Password != "hunter2" {
		t.Fatalf("blank password must not overwrite, got %q", u.Password)
	}
}

func TestUpdateEmailTaken(t *testing.T) {
	svc, _ := newTestService()
	signupAda(t, svc)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, SignupInput{Name: "Bob", Email: "bob@example.com", Password: "pw"}); err != nil {
		t.Fatalf("signup bob: %v", err)
	}

	err := svc.Update(ctx, UpdateInput{
		CurrentEmail: "ada@example.com",
		Name:         "Ada",
		Email:        "bob@example.com",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Update(context.Background(), UpdateInput{
		CurrentEmail: "nobody@example.com",
		Name:         "Nobody",
		Email:        "nobody@example.com",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()
	signupAda(t, svc)
	ctx := context.Background()

	if err := svc.Delete(ctx, "ada@example.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatal("user still present after delete")
	}

	if err := svc.Delete(ctx, "ada@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
