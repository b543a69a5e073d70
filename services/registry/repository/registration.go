package repository

import (
	"context"
	"errors"
	"fmt"

	"civilregistry/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(database *gorm.DB) domain.RegistrationRepo {
	return &registrationRepository{
		db: database,
	}
}

func (rr *registrationRepository) CreateRegistration(ctx context.Context, registration *domain.Registration) error {
	registration.ID = uuid.NewString()
	registration.Status = domain.RegistrationPending

	err := rr.db.WithContext(ctx).Create(registration).Error
	if err != nil {
		return fmt.Errorf("failed to create registration: %v", err)
	}

	return nil
}

func (rr *registrationRepository) GetRegistrations(ctx context.Context, actor *domain.Claims) (*[]domain.Registration, error) {
	var registrations []domain.Registration

	query := rr.db.WithContext(ctx).Model(&domain.Registration{})
	query = domain.ScopeListing(actor, query)
	if actor != nil && actor.Role == domain.RoleAdmin {
		// Admin listings carry the owner's email resolved in the same query.
		query = query.
			Select("registrations.*, users.email AS owner_email").
			Joins("LEFT JOIN users ON users.id = registrations.user_id")
	}

	if err := query.Find(&registrations).Error; err != nil {
		return nil, fmt.Errorf("failed to list registrations: %v", err)
	}

	return &registrations, nil
}

// fetch resolves the record before any ownership verdict, so an absent id is
// reported as not found even to callers who would lack rights on it.
func (rr *registrationRepository) fetch(ctx context.Context, id string) (*domain.Registration, error) {
	var registration domain.Registration
	err := rr.db.WithContext(ctx).Where("id = ?", id).First(&registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find registration: %v", err)
	}
	return &registration, nil
}

func (rr *registrationRepository) UpdateRegistration(ctx context.Context, actor *domain.Claims, id string, payload *domain.RegistrationUpdatePayload) (*domain.Registration, error) {
	registration, err := rr.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanAccess(actor, registration.UserID) {
		return nil, domain.ErrNotAuthorized
	}

	changes := payload.Changes()
	if len(changes) == 0 {
		return registration, nil
	}

	err = rr.db.WithContext(ctx).Model(registration).Updates(changes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update registration: %v", err)
	}

	return rr.fetch(ctx, id)
}

func (rr *registrationRepository) DeleteRegistration(ctx context.Context, actor *domain.Claims, id string) error {
	registration, err := rr.fetch(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanAccess(actor, registration.UserID) {
		return domain.ErrNotAuthorized
	}

	err = rr.db.WithContext(ctx).Delete(registration).Error
	if err != nil {
		return fmt.Errorf("failed to delete registration: %v", err)
	}

	return nil
}
