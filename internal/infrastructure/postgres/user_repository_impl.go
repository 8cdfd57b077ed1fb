package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

const userColumns = `id, email, username, roles, password, is_active, created_at, updated_at, last_login, profile_picture`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var roles []string
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &roles, &u.Password, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt, &u.LastLogin, &u.ProfilePicture); err != nil {
		return nil, err
	}
	u.SetRoles(roles)
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	roles, err := json.Marshal(u.Roles())
	if err != nil {
		return err
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO users (email, username, roles, password, is_active, created_at, updated_at, last_login, profile_picture)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`, u.Email, u.Username, roles, u.Password, u.IsActive, u.CreatedAt, u.UpdatedAt, u.LastLogin, u.ProfilePicture).Scan(&u.ID)
	})
	return mapWriteError(err)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	return u, mapReadError(err)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	return u, mapReadError(err)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	return u, mapReadError(err)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1))`, email).Scan(&ok)
	return ok, err
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&ok)
	return ok, err
}

func (r *UserRepository) ListByIDs(ctx context.Context, ids []int64) (map[int64]*entity.User, error) {
	out := make(map[int64]*entity.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	roles, err := json.Marshal(u.Roles())
	if err != nil {
		return err
	}
	u.UpdatedAt = time.Now()
	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE users
			SET email = $1, username = $2, roles = $3, password = $4, is_active = $5,
			    updated_at = $6, last_login = $7, profile_picture = $8
			WHERE id = $9
		`, u.Email, u.Username, roles, u.Password, u.IsActive, u.UpdatedAt, u.LastLogin, u.ProfilePicture, u.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
	return mapWriteError(err)
}

var _ repository.UserRepository = (*UserRepository)(nil)
