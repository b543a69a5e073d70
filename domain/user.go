package domain

import (
	"context"
	"time"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

type User struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"_id"`
	Email        string    `gorm:"type:varchar(150);not null;unique" json:"email" valid:"required~Email is required,email~Please include a valid email"`
	Password     string    `gorm:"type:varchar(100);not null" json:"-"`
	Role         string    `gorm:"type:role_enum;not null;default:User" json:"role"`
	FullName     string    `gorm:"type:varchar(150);not null" json:"fullName"`
	BirthPlace   string    `gorm:"type:varchar(150);not null" json:"birthPlace"`
	Address      string    `gorm:"type:varchar(255);not null" json:"address"`
	ProfileImage string    `gorm:"type:text;not null;default:''" json:"profileImage"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProfileUpdatePayload is the self-service update path: the only path that
// may change the password or profile image.
type ProfileUpdatePayload struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	BirthPlace   string `json:"birthPlace"`
	ProfileImage string `json:"profileImage"`
	Password     string `json:"password"`
}

// Changes returns only the supplied profile columns. Password is excluded
// here, it is hashed separately by the repository.
func (p *ProfileUpdatePayload) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.FullName != "" {
		changes["full_name"] = p.FullName
	}
	if p.Email != "" {
		changes["email"] = p.Email
	}
	if p.Address != "" {
		changes["address"] = p.Address
	}
	if p.BirthPlace != "" {
		changes["birth_place"] = p.BirthPlace
	}
	if p.ProfileImage != "" {
		changes["profile_image"] = p.ProfileImage
	}
	return changes
}

// AdminUserUpdatePayload is the administrative update path: role and profile
// metadata only, no password and no profile image.
type AdminUserUpdatePayload struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	BirthPlace string `json:"birthPlace"`
	Role       string `json:"role"`
}

func (p *AdminUserUpdatePayload) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.FullName != "" {
		changes["full_name"] = p.FullName
	}
	if p.Email != "" {
		changes["email"] = p.Email
	}
	if p.Address != "" {
		changes["address"] = p.Address
	}
	if p.BirthPlace != "" {
		changes["birth_place"] = p.BirthPlace
	}
	if p.Role != "" {
		changes["role"] = p.Role
	}
	return changes
}

type UserRepo interface {
	FindUserByID(ctx context.Context, id int) (*User, error)
	GetAllUsers(ctx context.Context) (*[]User, error)
	UpdateProfile(ctx context.Context, id int, payload *ProfileUpdatePayload) (*User, error)
	UpdateUser(ctx context.Context, id int, payload *AdminUserUpdatePayload) (*User, error)
	DeleteUser(ctx context.Context, id int) error
}

type UserUseCase interface {
	GetSelf(ctx context.Context, actor *Claims) (*User, error)
	GetAllUsers(ctx context.Context, actor *Claims) (*[]User, error)
	UpdateProfile(ctx context.Context, actor *Claims, payload *ProfileUpdatePayload) (*User, error)
	UpdateUser(ctx context.Context, actor *Claims, id int, payload *AdminUserUpdatePayload) (*User, error)
	DeleteUser(ctx context.Context, actor *Claims, id int) error
}
