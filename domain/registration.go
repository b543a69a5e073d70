package domain

import (
	"context"
	"time"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

const (
	RegistrationPending  = "Pending"
	RegistrationApproved = "Approved"
	RegistrationRejected = "Rejected"
)

func ValidGender(gender string) bool {
	return gender == GenderMale || gender == GenderFemale
}

func ValidRegistrationStatus(status string) bool {
	switch status {
	case RegistrationPending, RegistrationApproved, RegistrationRejected:
		return true
	}
	return false
}

type Registration struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"_id"`
	UserID        int       `gorm:"not null;index" json:"user"`
	ChildFullName string    `gorm:"type:varchar(150);not null" json:"childFullName" valid:"required~Child name is required"`
	DOB           string    `gorm:"type:varchar(30);not null" json:"dob" valid:"required~Date of birth is required"`
	Gender        string    `gorm:"type:gender_enum;not null" json:"gender" valid:"required~Gender is required,in(Male|Female)~Invalid gender"`
	PlaceOfBirth  string    `gorm:"type:varchar(150);not null" json:"placeOfBirth" valid:"required~Place of birth is required"`
	FatherName    string    `gorm:"type:varchar(150);not null" json:"fatherName" valid:"required~Father name is required"`
	MotherName    string    `gorm:"type:varchar(150);not null" json:"motherName" valid:"required~Mother name is required"`
	Status        string    `gorm:"type:registration_status_enum;not null;default:Pending" json:"status"`
	OwnerEmail    string    `gorm:"->;-:migration" json:"ownerEmail,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// RegistrationUpdatePayload carries the owner-or-admin partial update. Status
// sits here alongside the other fields on purpose: the owner may set any
// status on their own registration, including Approved. Flagged as a product
// question, kept as the system behaves.
type RegistrationUpdatePayload struct {
	ChildFullName string `json:"childFullName"`
	DOB           string `json:"dob"`
	Gender        string `json:"gender"`
	PlaceOfBirth  string `json:"placeOfBirth"`
	FatherName    string `json:"fatherName"`
	MotherName    string `json:"motherName"`
	Status        string `json:"status"`
}

// Changes returns only the supplied columns, so unspecified fields keep
// their stored values.
func (p *RegistrationUpdatePayload) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.ChildFullName != "" {
		changes["child_full_name"] = p.ChildFullName
	}
	if p.DOB != "" {
		changes["dob"] = p.DOB
	}
	if p.Gender != "" {
		changes["gender"] = p.Gender
	}
	if p.PlaceOfBirth != "" {
		changes["place_of_birth"] = p.PlaceOfBirth
	}
	if p.FatherName != "" {
		changes["father_name"] = p.FatherName
	}
	if p.MotherName != "" {
		changes["mother_name"] = p.MotherName
	}
	if p.Status != "" {
		changes["status"] = p.Status
	}
	return changes
}

type RegistrationRepo interface {
	CreateRegistration(ctx context.Context, registration *Registration) error
	GetRegistrations(ctx context.Context, actor *Claims) (*[]Registration, error)
	UpdateRegistration(ctx context.Context, actor *Claims, id string, payload *RegistrationUpdatePayload) (*Registration, error)
	DeleteRegistration(ctx context.Context, actor *Claims, id string) error
}

type RegistrationUseCase interface {
	CreateRegistration(ctx context.Context, actor *Claims, registration *Registration) error
	GetRegistrations(ctx context.Context, actor *Claims) (*[]Registration, error)
	UpdateRegistration(ctx context.Context, actor *Claims, id string, payload *RegistrationUpdatePayload) (*Registration, error)
	DeleteRegistration(ctx context.Context, actor *Claims, id string) error
}
