package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/videotube/videotube_backend/internal/apperrors"
	"github.com/videotube/videotube_backend/internal/core/domain"
	portsrepo "github.com/videotube/videotube_backend/internal/core/ports/repositories"
)

const uniqueViolationCode = "23505"

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, username, email, full_name, password_hash, avatar_url, cover_image_url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.AvatarURL,
		user.CoverImageURL,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username or email already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// publicColumns excludes password_hash and refresh_token so credential
// material never reaches callers that only need the identity.
const publicColumns = `user_id, username, email, full_name, avatar_url, COALESCE(cover_image_url, ''), created_at, updated_at`

func scanPublicUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.Email,
		&u.FullName,
		&u.AvatarURL,
		&u.CoverImageURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + publicColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanPublicUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + publicColumns + ` FROM users WHERE username = $1;`
	user, err := scanPublicUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, err)
	}
	return user, nil
}

func scanFullUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var refreshToken sql.NullString
	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.Email,
		&u.FullName,
		&u.PasswordHash,
		&u.AvatarURL,
		&u.CoverImageURL,
		&refreshToken,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	u.RefreshToken = refreshToken.String
	return &u, nil
}

const fullColumns = `user_id, username, email, full_name, password_hash, avatar_url, COALESCE(cover_image_url, ''), refresh_token, created_at, updated_at`

func (r *PgxUserRepository) FindUserForLogin(ctx context.Context, username, email string) (*domain.User, error) {
	query := `SELECT ` + fullColumns + ` FROM users WHERE ($1 <> '' AND username = $1) OR ($2 <> '' AND email = $2);`
	user, err := scanFullUser(r.Pool.QueryRow(ctx, query, username, email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user for login: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserWithCredentials(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + fullColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanFullUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user with credentials %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) UpdateAccountDetails(ctx context.Context, userID, fullName, email string) (*domain.User, error) {
	query := `
        UPDATE users
        SET full_name = $1, email = $2, updated_at = now()
        WHERE user_id = $3
        RETURNING ` + publicColumns + `;`
	user, err := scanPublicUser(r.Pool.QueryRow(ctx, query, fullName, email, userID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email already taken: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update account details: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = now() WHERE user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.User, error) {
	query := `
        UPDATE users SET avatar_url = $1, updated_at = now()
        WHERE user_id = $2
        RETURNING ` + publicColumns + `;`
	user, err := scanPublicUser(r.Pool.QueryRow(ctx, query, avatarURL, userID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) UpdateCoverImage(ctx context.Context, userID, coverImageURL string) (*domain.User, error) {
	query := `
        UPDATE users SET cover_image_url = $1, updated_at = now()
        WHERE user_id = $2
        RETURNING ` + publicColumns + `;`
	user, err := scanPublicUser(r.Pool.QueryRow(ctx, query, coverImageURL, userID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update cover image: %w", err)
	}
	return user, nil
}

// UpdateRefreshToken touches only the refresh_token column. No other field
// is read or validated, so legacy records with missing optional fields are
// never rejected by a token write.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error {
	query := `UPDATE users SET refresh_token = $1 WHERE user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, refreshToken, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RotateRefreshToken replaces the stored refresh token only while it still
// equals the presented value. Two concurrent rotations with the same token
// cannot both succeed: the predicate fails for whichever write runs second.
func (r *PgxUserRepository) RotateRefreshToken(ctx context.Context, userID, presented, next string) error {
	query := `UPDATE users SET refresh_token = $1 WHERE user_id = $2 AND refresh_token = $3;`
	cmdTag, err := r.Pool.Exec(ctx, query, next, userID, presented)
	if err != nil {
		return fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUnauthorized
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET refresh_token = NULL WHERE user_id = $1;`
	if _, err := r.Pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
