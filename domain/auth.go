package domain

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

type RegisterPayload struct {
	Email        string `json:"email" valid:"required~Email is required,email~Please include a valid email"`
	Password     string `json:"password" valid:"required~Password is required,stringlength(6|128)~Password must be 6 or more characters"`
	FullName     string `json:"fullName" valid:"required~Please add a full name"`
	BirthPlace   string `json:"birthPlace" valid:"required~Please add a place of birth"`
	Address      string `json:"address" valid:"required~Please add an address"`
	Role         string `json:"role"`
	ProfileImage string `json:"profileImage"`
}

type LoginPayload struct {
	Email    string `json:"email" valid:"required~Email is required,email~Please include a valid email"`
	Password string `json:"password" valid:"required~Password is required"`
}

// AuthResponse is the account summary returned on register, login and
// profile update, with a freshly issued token.
type AuthResponse struct {
	ID           int    `json:"_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	FullName     string `json:"fullName,omitempty"`
	BirthPlace   string `json:"birthPlace,omitempty"`
	Address      string `json:"address,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Token        string `json:"token"`
}

type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthRepo interface {
	Register(ctx context.Context, payload *RegisterPayload) (*User, error)
	Login(ctx context.Context, payload *LoginPayload) (*User, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, payload *RegisterPayload) (*User, error)
	Login(ctx context.Context, payload *LoginPayload) (*User, error)
}
