package impl

import (
	"context"
	"errors"

	"orgadmin/internal/domain"
	"orgadmin/internal/dto"
	"orgadmin/internal/service"
	"orgadmin/internal/store"

	"github.com/google/uuid"
)

var _ service.OfferRequestService = (*OfferRequestServiceImpl)(nil)

type OfferRequestServiceImpl struct {
	store *store.Store
}

func NewOfferRequestService(st *store.Store) *OfferRequestServiceImpl {
	return &OfferRequestServiceImpl{store: st}
}

func (s *OfferRequestServiceImpl) Get(ctx context.Context, id uuid.UUID) (*dto.OfferRequestResponse, error) {
	req, err := s.store.OfferRequests().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	resp := dto.NewOfferRequestResponse(req)
	return &resp, nil
}
