package repository

import (
	"context"
	"errors"
	"fmt"

	"civilregistry/config"
	"civilregistry/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(database *pgxpool.Pool) domain.UserRepo {
	return &userRepository{
		db: database,
	}
}

func (ur *userRepository) FindUserByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT id, email, role, full_name, birth_place, address, profile_image, created_at, updated_at
		FROM users
		WHERE id = $1;
	`

	var user domain.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Role, &user.FullName,
		&user.BirthPlace, &user.Address, &user.ProfileImage, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &user, nil
}

func (ur *userRepository) GetAllUsers(ctx context.Context) (*[]domain.User, error) {
	query := `
		SELECT id, email, role, full_name, birth_place, address, profile_image, created_at, updated_at
		FROM users
		ORDER BY id;
	`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %v", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID, &user.Email, &user.Role, &user.FullName,
			&user.BirthPlace, &user.Address, &user.ProfileImage, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("could not scan user: %v", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list users: %v", err)
	}

	return &users, nil
}

// UpdateProfile is the self-service path. It alone may re-set the password
// and profile image.
func (ur *userRepository) UpdateProfile(ctx context.Context, id int, payload *domain.ProfileUpdatePayload) (*domain.User, error) {
	changes := payload.Changes()
	if payload.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), config.GetBcryptCost())
		if err != nil {
			return nil, fmt.Errorf("could not hash password: %v", err)
		}
		changes["password"] = string(hashedPassword)
	}

	return ur.applyChanges(ctx, id, changes)
}

// UpdateUser is the administrative path: profile metadata and role, never
// the password or profile image.
func (ur *userRepository) UpdateUser(ctx context.Context, id int, payload *domain.AdminUserUpdatePayload) (*domain.User, error) {
	return ur.applyChanges(ctx, id, payload.Changes())
}

func (ur *userRepository) applyChanges(ctx context.Context, id int, changes map[string]interface{}) (*domain.User, error) {
	if len(changes) == 0 {
		return ur.FindUserByID(ctx, id)
	}

	setClause := ""
	args := []interface{}{}
	i := 1
	for column, value := range changes {
		if setClause != "" {
			setClause += ", "
		}
		setClause += fmt.Sprintf("%s = $%d", column, i)
		args = append(args, value)
		i++
	}
	setClause += ", updated_at = NOW()"
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE id = $%d
		RETURNING id, email, role, full_name, birth_place, address, profile_image, created_at, updated_at;
	`, setClause, i)

	var user domain.User
	err := ur.db.QueryRow(ctx, query, args...).Scan(
		&user.ID, &user.Email, &user.Role, &user.FullName,
		&user.BirthPlace, &user.Address, &user.ProfileImage, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("could not update user: %v", err)
	}

	return &user, nil
}

func (ur *userRepository) DeleteUser(ctx context.Context, id int) error {
	tag, err := ur.db.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("could not delete user: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
