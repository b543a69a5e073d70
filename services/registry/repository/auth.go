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

type authRepository struct {
	db *pgxpool.Pool
}

func NewAuthRepository(database *pgxpool.Pool) domain.AuthRepo {
	return &authRepository{
		db: database,
	}
}

func (ar *authRepository) Register(ctx context.Context, payload *domain.RegisterPayload) (*domain.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), config.GetBcryptCost())
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %v", err)
	}

	role := payload.Role
	if role == "" {
		role = domain.RoleUser
	}

	query := `
		INSERT INTO users (email, password, role, full_name, birth_place, address, profile_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at;
	`

	user := domain.User{
		Email:        payload.Email,
		Password:     string(hashedPassword),
		Role:         role,
		FullName:     payload.FullName,
		BirthPlace:   payload.BirthPlace,
		Address:      payload.Address,
		ProfileImage: payload.ProfileImage,
	}

	err = ar.db.QueryRow(ctx, query,
		user.Email, user.Password, user.Role, user.FullName,
		user.BirthPlace, user.Address, user.ProfileImage,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("could not create user: %v", err)
	}

	return &user, nil
}

func (ar *authRepository) Login(ctx context.Context, payload *domain.LoginPayload) (*domain.User, error) {
	query := `
		SELECT id, email, password, role, full_name, birth_place, address, profile_image, created_at, updated_at
		FROM users
		WHERE email = $1;
	`

	var user domain.User
	err := ar.db.QueryRow(ctx, query, payload.Email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role, &user.FullName,
		&user.BirthPlace, &user.Address, &user.ProfileImage, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &user, nil
}
