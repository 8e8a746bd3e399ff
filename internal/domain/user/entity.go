package user

import (
	"time"

	"github.com/google/uuid"
)

// User is read-only to this service; accounts are managed by the identity service.
type User struct {
	id        uuid.UUID
	email     Email
	roles     Roles
	status    Status
	createdAt time.Time
}

func NewUser(email Email, roles Roles, status Status) *User {
	return &User{
		id:     uuid.New(),
		email:  email,
		roles:  roles,
		status: status,
	}
}

func Reconstruct(id uuid.UUID, email Email, roles Roles, status Status, createdAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		roles:     roles,
		status:    status,
		createdAt: createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Roles() Roles         { return u.roles }
func (u *User) Status() Status       { return u.status }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) HasRole(r Role) bool  { return u.roles.Has(r) }
func (u *User) IsActive() bool       { return u.status.CanTransact() }
