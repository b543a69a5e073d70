package domain

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
)

const (
	RequestTypeNationalID       = "National ID"
	RequestTypeBirthCertificate = "Birth Certificate"
)

const (
	RequestStarting   = "Starting"
	RequestInProgress = "In Progress"
	RequestCompleted  = "Completed"
	RequestRejected   = "Rejected"
)

func ValidRequestType(requestType string) bool {
	return requestType == RequestTypeNationalID || requestType == RequestTypeBirthCertificate
}

func ValidRequestStatus(status string) bool {
	switch status {
	case RequestStarting, RequestInProgress, RequestCompleted, RequestRejected:
		return true
	}
	return false
}

// JSONMap is the open-ended details bag persisted as jsonb. Its internal
// shape varies by request type and is deliberately not validated.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return sonic.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
	return sonic.Unmarshal(raw, m)
}

type Request struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"_id"`
	UserID        int       `gorm:"not null;index" json:"user"`
	Type          string    `gorm:"type:varchar(50);not null" json:"type" valid:"required~Please add type and details"`
	Status        string    `gorm:"type:varchar(20);not null;default:Starting" json:"status"`
	Details       JSONMap   `gorm:"type:jsonb;not null" json:"details"`
	AdminNote     string    `gorm:"type:text" json:"adminNote,omitempty"`
	OwnerFullName string    `gorm:"->;-:migration" json:"ownerFullName,omitempty"`
	OwnerEmail    string    `gorm:"->;-:migration" json:"ownerEmail,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CreateRequestPayload struct {
	Type    string  `json:"type" valid:"required~Please add type and details"`
	Details JSONMap `json:"details"`
}

// RequestStatusUpdatePayload is the admin-only mutation: status and note,
// each optional and merged over the stored record.
type RequestStatusUpdatePayload struct {
	Status    string `json:"status"`
	AdminNote string `json:"adminNote"`
}

func (p *RequestStatusUpdatePayload) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Status != "" {
		changes["status"] = p.Status
	}
	if p.AdminNote != "" {
		changes["admin_note"] = p.AdminNote
	}
	return changes
}

type RequestRepo interface {
	CreateRequest(ctx context.Context, request *Request) error
	GetMyRequests(ctx context.Context, userID int) (*[]Request, error)
	GetAllRequests(ctx context.Context) (*[]Request, error)
	UpdateRequestStatus(ctx context.Context, id string, payload *RequestStatusUpdatePayload) (*Request, error)
}

type RequestUseCase interface {
	CreateRequest(ctx context.Context, actor *Claims, payload *CreateRequestPayload) (*Request, error)
	GetMyRequests(ctx context.Context, actor *Claims) (*[]Request, error)
	GetAllRequests(ctx context.Context, actor *Claims) (*[]Request, error)
	UpdateRequestStatus(ctx context.Context, actor *Claims, id string, payload *RequestStatusUpdatePayload) (*Request, error)
}
