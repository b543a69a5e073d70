package usecase

import (
	"context"
	"testing"
	"time"

	"civilregistry/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestRepo struct {
	created     *domain.Request
	updated     map[string]*domain.RequestStatusUpdatePayload
	listAllHits int
	stored      map[string]*domain.Request
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{
		updated: map[string]*domain.RequestStatusUpdatePayload{},
		stored:  map[string]*domain.Request{},
	}
}

func (f *fakeRequestRepo) CreateRequest(ctx context.Context, request *domain.Request) error {
	request.ID = "req-1"
	f.created = request
	return nil
}

func (f *fakeRequestRepo) GetMyRequests(ctx context.Context, userID int) (*[]domain.Request, error) {
	var out []domain.Request
	for _, r := range f.stored {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return &out, nil
}

func (f *fakeRequestRepo) GetAllRequests(ctx context.Context) (*[]domain.Request, error) {
	f.listAllHits++
	var out []domain.Request
	for _, r := range f.stored {
		out = append(out, *r)
	}
	return &out, nil
}

func (f *fakeRequestRepo) UpdateRequestStatus(ctx context.Context, id string, payload *domain.RequestStatusUpdatePayload) (*domain.Request, error) {
	request, ok := f.stored[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	f.updated[id] = payload
	if payload.Status != "" {
		request.Status = payload.Status
	}
	if payload.AdminNote != "" {
		request.AdminNote = payload.AdminNote
	}
	return request, nil
}

func TestCreateRequestAlwaysStartsAtStarting(t *testing.T) {
	repo := newFakeRequestRepo()
	uc := NewRequestUseCase(repo, time.Second)
	actor := &domain.Claims{UserID: 5, Email: "citizen@x.com", Role: domain.RoleUser}

	request, err := uc.CreateRequest(context.Background(), actor, &domain.CreateRequestPayload{
		Type:    domain.RequestTypeNationalID,
		Details: domain.JSONMap{"fullName": "A"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RequestStarting, request.Status)
	assert.Equal(t, 5, request.UserID, "owner comes from the caller's claims")
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.RequestStarting, repo.created.Status)
}

func TestUpdateRequestStatusRequiresAdmin(t *testing.T) {
	repo := newFakeRequestRepo()
	repo.stored["req-9"] = &domain.Request{ID: "req-9", UserID: 5, Status: domain.RequestStarting}
	uc := NewRequestUseCase(repo, time.Second)

	owner := &domain.Claims{UserID: 5, Role: domain.RoleUser}
	_, err := uc.UpdateRequestStatus(context.Background(), owner, "req-9", &domain.RequestStatusUpdatePayload{Status: domain.RequestCompleted})
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.updated, "repo must not be touched on a forbidden call")
	assert.Equal(t, domain.RequestStarting, repo.stored["req-9"].Status, "status unchanged")

	admin := &domain.Claims{UserID: 1, Role: domain.RoleAdmin}
	request, err := uc.UpdateRequestStatus(context.Background(), admin, "req-9", &domain.RequestStatusUpdatePayload{Status: domain.RequestCompleted})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestCompleted, request.Status)
}

func TestUpdateRequestStatusNotFoundBeforeAnythingElse(t *testing.T) {
	repo := newFakeRequestRepo()
	uc := NewRequestUseCase(repo, time.Second)
	admin := &domain.Claims{UserID: 1, Role: domain.RoleAdmin}

	_, err := uc.UpdateRequestStatus(context.Background(), admin, "missing", &domain.RequestStatusUpdatePayload{Status: domain.RequestRejected})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetAllRequestsRequiresAdmin(t *testing.T) {
	repo := newFakeRequestRepo()
	uc := NewRequestUseCase(repo, time.Second)

	user := &domain.Claims{UserID: 5, Role: domain.RoleUser}
	_, err := uc.GetAllRequests(context.Background(), user)
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, repo.listAllHits)

	admin := &domain.Claims{UserID: 1, Role: domain.RoleAdmin}
	_, err = uc.GetAllRequests(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listAllHits)
}

func TestGetMyRequestsScopedToCaller(t *testing.T) {
	repo := newFakeRequestRepo()
	repo.stored["a"] = &domain.Request{ID: "a", UserID: 5}
	repo.stored["b"] = &domain.Request{ID: "b", UserID: 6}
	uc := NewRequestUseCase(repo, time.Second)

	requests, err := uc.GetMyRequests(context.Background(), &domain.Claims{UserID: 5, Role: domain.RoleUser})
	require.NoError(t, err)
	require.Len(t, *requests, 1)
	assert.Equal(t, 5, (*requests)[0].UserID)
}
