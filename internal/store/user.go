package store

import (
	"context"
	"fmt"

	"github.com/iamtheretronerd/levelup/ent"
	"github.com/iamtheretronerd/levelup/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, u *User) error {
	row, err := r.client.User.Create().
		SetID(u.ID).
		SetName(u.Name).
		SetEmail(u.Email).
		SetPassword(u.Password).
		SetProfileImage(u.ProfileImage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	u.CreatedAt = row.CreatedAt
	u.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*User, error) {
	row, err := r.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return entUserToUser(row), nil
}

func (r *userRepo) Update(ctx context.Context, currentEmail string, u *User) (bool, error) {
	q := r.client.User.Update().
		Where(user.Email(currentEmail)).
		SetName(u.Name).
		SetEmail(u.Email).
		SetProfileImage(u.ProfileImage)
	if u.Password != "" {
		q = q.SetPassword(u.Password)
	}
	n, err := q.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("update user: %w", err)
	}
	return n > 0, nil
}

func (r *userRepo) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.client.User.Delete().
		Where(user.Email(email)).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return n > 0, nil
}

// entUserToUser converts an ent User to a store User.
func entUserToUser(row *ent.User) *User {
	return &User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Password:     row.Password,
		ProfileImage: row.ProfileImage,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
