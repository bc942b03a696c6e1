package user

import (
	"context"
	"database/sql"
	"errors"
	c "storefront/internal/core/domain/common"
	e "storefront/internal/core/domain/errors"
	"storefront/internal/core/domain/user"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "users_email_idx"

const userColumns = `id, email, name, password_hash, role, reset_token, reset_token_expires, created_at`

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func NewPgxRepository(db *pgxpool.Pool) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO users (email, name, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		string(input.Email),
		input.Name,
		string(input.PasswordHash),
		string(input.Role),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		string(email),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) SetResetToken(
	ctx context.Context,
	id user.ID,
	fingerprint user.ResetTokenFingerprint,
	expiresAt time.Time,
) error {
	commandTag, err := r.db.Exec(
		ctx,
		`UPDATE users SET reset_token = $2, reset_token_expires = $3 WHERE id = $1`,
		int64(id),
		string(fingerprint),
		expiresAt,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) GetByResetTokenFingerprint(
	ctx context.Context,
	fingerprint user.ResetTokenFingerprint,
	now time.Time,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE reset_token = $1 AND reset_token_expires > $2`,
		string(fingerprint),
		now,
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) SetPasswordAndClearResetToken(
	ctx context.Context,
	id user.ID,
	fingerprint user.ResetTokenFingerprint,
	password user.PasswordHash,
) error {
	// The fingerprint condition makes the redeem race single-winner, the
	// losing update matches zero rows.
	commandTag, err := r.db.Exec(
		ctx,
		`UPDATE users
		 SET password_hash = $3, reset_token = NULL, reset_token_expires = NULL
		 WHERE id = $1 AND reset_token = $2`,
		int64(id),
		string(fingerprint),
		string(password),
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var id int64
	var email, name, passwordHash, role string
	var resetToken sql.NullString
	var resetTokenExpires sql.NullTime
	var createdAt time.Time

	err = row.Scan(&id, &email, &name, &passwordHash, &role, &resetToken, &resetTokenExpires, &createdAt)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:                    user.ID(id),
		Email:                 c.Email(email),
		Name:                  name,
		PasswordHash:          user.PasswordHash(passwordHash),
		Role:                  user.Role(role),
		ResetTokenFingerprint: c.NewOptional(user.ResetTokenFingerprint(resetToken.String), resetToken.Valid),
		ResetTokenExpiresAt:   c.NewOptional(resetTokenExpires.Time, resetTokenExpires.Valid),
		CreatedAt:             createdAt,
	}, nil
}
