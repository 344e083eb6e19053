package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func newUser(email string) *User {
	return &User{
		ID:       uuid.New(),
		Name:     "Ada",
		Email:    email,
		Password: "hunter2",
	}
}

func TestUserCreateAndByEmail(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	u := newUser("ada@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.CreatedAt.IsZero() {
		t.Fatal("createdAt should be filled in on create")
	}

	got, err := repo.ByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if got == nil || got.Name != "Ada" {
		t.Fatalf("unexpected user: %+v", got)
	}

	missing, err := repo.ByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("by email (missing): %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown email")
	}
}

func TestUserUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	u := newUser("ada@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := repo.Update(ctx, "ada@example.com", &User{
		Name:  "Ada L",
		Email: "ada.l@example.com",
		// Blank password keeps the stored one.
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !ok {
		t.Fatal("expected update to apply")
	}

	got, _ := repo.ByEmail(ctx, "ada.l@example.com")
	if got == nil || got.Name != "Ada L" {
		t.Fatalf("update not persisted: %+v", got)
	}
	if got.Password != "hunter2" {
		t.Fatalf("blank password must not overwrite, got %q", got.Password)
	}

	ok, err = repo.Update(ctx, "nobody@example.com", &User{Name: "X", Email: "x@example.com"})
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if ok {
		t.Fatal("update of unknown user must report false")
	}
}

func TestUserDeleteByEmail(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	u := newUser("ada@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := repo.DeleteByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !ok {
		t.Fatal("expected delete to apply")
	}

	got, _ := repo.ByEmail(ctx, "ada@example.com")
	if got != nil {
		t.Fatal("user still present after delete")
	}

	ok, err = repo.DeleteByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("delete again: %v", err)
	}
	if ok {
		t.Fatal("second delete must report false")
	}
}
