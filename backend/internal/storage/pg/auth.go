package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/bulletin/shared/domain"
	internal_errors "github.com/itchan-dev/bulletin/shared/errors"
	shared_pg "github.com/itchan-dev/bulletin/shared/storage/pg"
)

// =========================================================================
// Public Methods (satisfy the service.AuthStorage interface)
// =========================================================================

// SaveUser inserts a user row. Profile and token are created by the service afterwards.
func (s *Storage) SaveUser(user domain.User) (domain.UserId, error) {
	return s.saveUser(s.db, user)
}

func (s *Storage) SaveProfile(profile domain.Profile) error {
	return s.saveProfile(s.db, profile)
}

// User fetches a user together with its profile.
func (s *Storage) User(username domain.Username) (domain.User, error) {
	return s.user(s.db, username)
}

// DeleteUser removes the user. Profile, token, boards, threads and posts cascade.
func (s *Storage) DeleteUser(id domain.UserId) error {
	return s.deleteUser(s.db, id)
}

func (s *Storage) Token(userId domain.UserId) (domain.Token, error) {
	return s.token(s.db, userId)
}

func (s *Storage) SaveToken(token domain.Token) error {
	return s.saveToken(s.db, token)
}

func (s *Storage) UserByToken(key domain.TokenKey) (domain.User, error) {
	return s.userByToken(s.db, key)
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

const userColumns = `u.id, u.username, u.email, u.password_hash, u.created_at,
	COALESCE(p.role, ''), p.phone_number`

func scanUser(row *sql.Row) (domain.User, error) {
	var user domain.User
	var phone sql.NullString
	err := row.Scan(&user.Id, &user.Username, &user.Email, &user.PassHash, &user.CreatedAt, &user.Profile.Role, &phone)
	if err != nil {
		return domain.User{}, err
	}
	user.Profile.UserId = user.Id
	if phone.Valid {
		user.Profile.PhoneNumber = &phone.String
	}
	return user, nil
}

func (s *Storage) saveUser(q Querier, user domain.User) (domain.UserId, error) {
	var id domain.UserId
	err := q.QueryRow("INSERT INTO users(username, email, password_hash) VALUES($1, $2, $3) RETURNING id",
		user.Username, user.Email, user.PassHash).Scan(&id)
	if err != nil {
		if shared_pg.IsUniqueViolation(err) {
			return -1, internal_errors.BadRequest("A user with that username already exists.")
		}
		return -1, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *Storage) saveProfile(q Querier, profile domain.Profile) error {
	_, err := q.Exec("INSERT INTO profiles(user_id, role, phone_number) VALUES($1, $2, $3)",
		profile.UserId, profile.Role, profile.PhoneNumber)
	if err != nil {
		if shared_pg.IsUniqueViolation(err) {
			return internal_errors.BadRequest("Profile already exists")
		}
		if shared_pg.IsForeignKeyViolation(err) {
			return internal_errors.NotFound("User not found")
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

func (s *Storage) user(q Querier, username domain.Username) (domain.User, error) {
	user, err := scanUser(q.QueryRow(`SELECT `+userColumns+`
		FROM users u LEFT JOIN profiles p ON p.user_id = u.id
		WHERE u.username = $1`, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *Storage) deleteUser(q Querier, id domain.UserId) error {
	result, err := q.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for user deletion: %w", err)
	}
	if rowsDeleted == 0 {
		return internal_errors.NotFound("User not found")
	}
	return nil
}

func (s *Storage) token(q Querier, userId domain.UserId) (domain.Token, error) {
	var token domain.Token
	err := q.QueryRow("SELECT key, user_id, created_at FROM tokens WHERE user_id = $1", userId).
		Scan(&token.Key, &token.UserId, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Token{}, internal_errors.NotFound("Token not found")
		}
		return domain.Token{}, fmt.Errorf("failed to query token: %w", err)
	}
	return token, nil
}

// saveToken reports a conflict when the user already has a token, so callers can re-read it.
func (s *Storage) saveToken(q Querier, token domain.Token) error {
	_, err := q.Exec("INSERT INTO tokens(key, user_id) VALUES($1, $2)", token.Key, token.UserId)
	if err != nil {
		if shared_pg.IsUniqueViolation(err) {
			return internal_errors.Conflict("Token already exists")
		}
		if shared_pg.IsForeignKeyViolation(err) {
			return internal_errors.NotFound("User not found")
		}
		return fmt.Errorf("failed to insert token: %w", err)
	}
	return nil
}

func (s *Storage) userByToken(q Querier, key domain.TokenKey) (domain.User, error) {
	user, err := scanUser(q.QueryRow(`SELECT `+userColumns+`
		FROM tokens t
		JOIN users u ON u.id = t.user_id
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE t.key = $1`, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("Token not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user by token: %w", err)
	}
	return user, nil
}
