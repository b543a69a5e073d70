package repository

import (
	"context"
	"errors"
	"fmt"

	"civilregistry/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(database *gorm.DB) domain.RequestRepo {
	return &requestRepository{
		db: database,
	}
}

func (rr *requestRepository) CreateRequest(ctx context.Context, request *domain.Request) error {
	request.ID = uuid.NewString()
	request.Status = domain.RequestStarting

	err := rr.db.WithContext(ctx).Create(request).Error
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	return nil
}

func (rr *requestRepository) GetMyRequests(ctx context.Context, userID int) (*[]domain.Request, error) {
	var requests []domain.Request

	err := rr.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %v", err)
	}

	return &requests, nil
}

func (rr *requestRepository) GetAllRequests(ctx context.Context) (*[]domain.Request, error) {
	var requests []domain.Request

	err := rr.db.WithContext(ctx).Model(&domain.Request{}).
		Select("requests.*, users.full_name AS owner_full_name, users.email AS owner_email").
		Joins("LEFT JOIN users ON users.id = requests.user_id").
		Order("requests.created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %v", err)
	}

	return &requests, nil
}

func (rr *requestRepository) fetch(ctx context.Context, id string) (*domain.Request, error) {
	var request domain.Request
	err := rr.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find request: %v", err)
	}
	return &request, nil
}

func (rr *requestRepository) UpdateRequestStatus(ctx context.Context, id string, payload *domain.RequestStatusUpdatePayload) (*domain.Request, error) {
	request, err := rr.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := payload.Changes()
	if len(changes) == 0 {
		return request, nil
	}

	err = rr.db.WithContext(ctx).Model(request).Updates(changes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update request: %v", err)
	}

	return rr.fetch(ctx, id)
}
