package usecase

import (
	"context"
	"time"

	"civilregistry/domain"
)

type registrationUC struct {
	registrationRepo domain.RegistrationRepo
	TimeOut          time.Duration
}

func NewRegistrationUseCase(repo domain.RegistrationRepo, timeOut time.Duration) domain.RegistrationUseCase {
	return &registrationUC{
		registrationRepo: repo,
		TimeOut:          timeOut,
	}
}

func (rUC *registrationUC) CreateRegistration(ctx context.Context, actor *domain.Claims, registration *domain.Registration) error {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	registration.UserID = actor.UserID

	err := rUC.registrationRepo.CreateRegistration(ctx, registration)
	if err != nil {
		return err
	}
	return nil
}

func (rUC *registrationUC) GetRegistrations(ctx context.Context, actor *domain.Claims) (*[]domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	registrations, err := rUC.registrationRepo.GetRegistrations(ctx, actor)
	if err != nil {
		return nil, err
	}
	return registrations, nil
}

func (rUC *registrationUC) UpdateRegistration(ctx context.Context, actor *domain.Claims, id string, payload *domain.RegistrationUpdatePayload) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	registration, err := rUC.registrationRepo.UpdateRegistration(ctx, actor, id, payload)
	if err != nil {
		return nil, err
	}
	return registration, nil
}

func (rUC *registrationUC) DeleteRegistration(ctx context.Context, actor *domain.Claims, id string) error {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	err := rUC.registrationRepo.DeleteRegistration(ctx, actor, id)
	if err != nil {
		return err
	}
	return nil
}
