package readstore

import (
	"context"
	"time"

	"rentx-api/internal/domain/user"
	"rentx-api/internal/infra"
	"rentx-api/internal/infra/db"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const findUserByIDSQL = `SELECT id, email, roles, status, created_at FROM users WHERE id = $1`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var (
		userID    uuid.UUID
		email     string
		roles     []string
		status    string
		createdAt time.Time
	)
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(&userID, &email, &roles, &status, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toDomainUser(userID, email, roles, status, createdAt)
}

func toDomainUser(id uuid.UUID, email string, roles []string, status string, createdAt time.Time) (*user.User, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Wrap(err, "stored user email")
	}
	rs, err := user.NewRoles(roles)
	if err != nil {
		return nil, errs.Wrap(err, "stored user roles")
	}
	st, err := user.NewStatus(status)
	if err != nil {
		return nil, errs.Wrap(err, "stored user status")
	}
	return user.Reconstruct(id, e, rs, st, createdAt.UTC()), nil
}
