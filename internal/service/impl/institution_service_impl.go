package impl

import (
	"context"
	"errors"

	"orgadmin/internal/domain"
	"orgadmin/internal/dto"
	"orgadmin/internal/form"
	"orgadmin/internal/service"
	"orgadmin/internal/store"

	"github.com/google/uuid"
)

var _ service.InstitutionService = (*InstitutionServiceImpl)(nil)

type InstitutionServiceImpl struct {
	store *store.Store
}

func NewInstitutionService(st *store.Store) *InstitutionServiceImpl {
	return &InstitutionServiceImpl{store: st}
}

var institutionSchema = form.Schema{
	{Name: "name", Kind: form.String, Required: true},
	{Name: "address", Kind: form.String, Required: true},
	{Name: "email", Kind: form.Email, Required: true},
	{Name: "phone", Kind: form.String, Required: true},
	{Name: "registrationDate", Kind: form.Date},
}

func (s *InstitutionServiceImpl) Create(ctx context.Context, sub *form.Submission) (*dto.InstitutionResponse, error) {
	rec, err := form.Decode(sub, institutionSchema)
	if err != nil {
		return nil, err
	}

	inst := &domain.Institution{
		Name:             rec.String("name"),
		Address:          rec.String("address"),
		Email:            rec.String("email"),
		Phone:            rec.String("phone"),
		RegistrationDate: rec.DatePtr("registrationDate"),
	}

	err = s.store.WithTx(ctx, func(tx *store.Store) error {
		return tx.Institutions().Create(ctx, inst)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewInstitutionResponse(inst)
	return &resp, nil
}

func (s *InstitutionServiceImpl) List(ctx context.Context) ([]dto.InstitutionResponse, error) {
	institutions, err := s.store.Institutions().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InstitutionResponse, 0, len(institutions))
	for i := range institutions {
		out = append(out, dto.NewInstitutionResponse(&institutions[i]))
	}
	return out, nil
}

func (s *InstitutionServiceImpl) GetByUser(ctx context.Context, userID uuid.UUID) (*dto.InstitutionResponse, error) {
	inst, err := s.store.Institutions().GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	resp := dto.NewInstitutionResponse(inst)
	return &resp, nil
}
