package usecase

import (
	"context"
	"time"

	"civilregistry/domain"
)

type userUC struct {
	userRepo domain.UserRepo
	TimeOut  time.Duration
}

func NewUserUseCase(repo domain.UserRepo, timeOut time.Duration) domain.UserUseCase {
	return &userUC{
		userRepo: repo,
		TimeOut:  timeOut,
	}
}

func (uUC *userUC) GetSelf(ctx context.Context, actor *domain.Claims) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	user, err := uUC.userRepo.FindUserByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uUC *userUC) GetAllUsers(ctx context.Context, actor *domain.Claims) (*[]domain.User, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	users, err := uUC.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (uUC *userUC) UpdateProfile(ctx context.Context, actor *domain.Claims, payload *domain.ProfileUpdatePayload) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	user, err := uUC.userRepo.UpdateProfile(ctx, actor.UserID, payload)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uUC *userUC) UpdateUser(ctx context.Context, actor *domain.Claims, id int, payload *domain.AdminUserUpdatePayload) (*domain.User, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	user, err := uUC.userRepo.UpdateUser(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uUC *userUC) DeleteUser(ctx context.Context, actor *domain.Claims, id int) error {
	if err := domain.RequireAdmin(actor); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	err := uUC.userRepo.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	return nil
}
