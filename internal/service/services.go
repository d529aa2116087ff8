// Package service declares the entity pipelines and their side-effect
// collaborators. Implementations live in service/impl.
package service

import (
	"context"

	"orgadmin/internal/dto"
	"orgadmin/internal/form"

	"github.com/google/uuid"
)

// DeviceService runs the device submission pipeline:
// extract -> validate -> resolve side effects -> persist -> respond.
type DeviceService interface {
	Create(ctx context.Context, sub *form.Submission) (*dto.DeviceResponse, error)
	List(ctx context.Context) ([]dto.DeviceResponse, error)
}

type UserService interface {
	Create(ctx context.Context, sub *form.Submission) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserSummary, error)
}

type InstitutionService interface {
	Create(ctx context.Context, sub *form.Submission) (*dto.InstitutionResponse, error)
	List(ctx context.Context) ([]dto.InstitutionResponse, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*dto.InstitutionResponse, error)
}

type OfferRequestService interface {
	Get(ctx context.Context, id uuid.UUID) (*dto.OfferRequestResponse, error)
}

// CatalogService backs the dashboard's select dropdowns.
type CatalogService interface {
	Services(ctx context.Context) ([]dto.Option, error)
	Roles(ctx context.Context) ([]dto.Option, error)
}

// PhotoStore persists an uploaded binary asset and returns a stable
// reference to it.
type PhotoStore interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

// CodeGenerator derives a scannable code from a unique business key.
// Must be deterministic for the same key.
type CodeGenerator interface {
	Generate(key string) (string, error)
}

type PasswordService interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
