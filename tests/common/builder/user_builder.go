//go:build unit || e2e

package builder

import (
	"time"

	"rentx-api/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID     uuid.UUID
	Email  string
	Roles  []string
	Status string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:     uuid.New(),
		Email:  "buyer@example.com",
		Roles:  []string{"BUYER"},
		Status: "ACTIVE",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	roles, err := user.NewRoles(u.Roles)
	if err != nil {
		return nil, err
	}

	status, err := user.NewStatus(u.Status)
	if err != nil {
		return nil, err
	}

	return user.Reconstruct(u.ID, email, roles, status, time.Now()), nil
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRoles(roles ...string) *UserBuilder {
	u.Roles = roles
	return u
}

func (u *UserBuilder) WithStatus(status string) *UserBuilder {
	u.Status = status
	return u
}

func (u *UserBuilder) AsSeller() *UserBuilder {
	u.Email = "seller@example.com"
	u.Roles = []string{"SELLER"}
	u.Status = "APPROVED"
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Email = "admin@example.com"
	u.Roles = []string{"ADMIN"}
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.Status = "INACTIVE"
	return u
}
