package usecase

import (
	"context"
	"time"

	"civilregistry/domain"
)

type requestUC struct {
	requestRepo domain.RequestRepo
	TimeOut     time.Duration
}

func NewRequestUseCase(repo domain.RequestRepo, timeOut time.Duration) domain.RequestUseCase {
	return &requestUC{
		requestRepo: repo,
		TimeOut:     timeOut,
	}
}

// CreateRequest always opens the lifecycle at Starting, whatever the caller
// supplied.
func (rUC *requestUC) CreateRequest(ctx context.Context, actor *domain.Claims, payload *domain.CreateRequestPayload) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	request := &domain.Request{
		UserID:  actor.UserID,
		Type:    payload.Type,
		Details: payload.Details,
		Status:  domain.RequestStarting,
	}

	err := rUC.requestRepo.CreateRequest(ctx, request)
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (rUC *requestUC) GetMyRequests(ctx context.Context, actor *domain.Claims) (*[]domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	requests, err := rUC.requestRepo.GetMyRequests(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (rUC *requestUC) GetAllRequests(ctx context.Context, actor *domain.Claims) (*[]domain.Request, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	requests, err := rUC.requestRepo.GetAllRequests(ctx)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateRequestStatus is the only mutation a request record ever sees after
// creation, and it is administrator-only.
func (rUC *requestUC) UpdateRequestStatus(ctx context.Context, actor *domain.Claims, id string, payload *domain.RequestStatusUpdatePayload) (*domain.Request, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	request, err := rUC.requestRepo.UpdateRequestStatus(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	return request, nil
}
