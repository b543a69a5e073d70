package usecase

import (
	"context"
	"time"

	"civilregistry/domain"
)

type authUC struct {
	authRepo domain.AuthRepo
	TimeOut  time.Duration
}

func NewAuthUseCase(repo domain.AuthRepo, timeOut time.Duration) domain.AuthUseCase {
	return &authUC{
		authRepo: repo,
		TimeOut:  timeOut,
	}
}

func (aUC *authUC) Register(ctx context.Context, payload *domain.RegisterPayload) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	user, err := aUC.authRepo.Register(ctx, payload)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (aUC *authUC) Login(ctx context.Context, payload *domain.LoginPayload) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	user, err := aUC.authRepo.Login(ctx, payload)
	if err != nil {
		return nil, err
	}
	return user, nil
}
