package impl

import (
	"context"

	"orgadmin/internal/dto"
	"orgadmin/internal/service"
	"orgadmin/internal/store"
)

var _ service.CatalogService = (*CatalogServiceImpl)(nil)

type CatalogServiceImpl struct {
	store *store.Store
}

func NewCatalogService(st *store.Store) *CatalogServiceImpl {
	return &CatalogServiceImpl{store: st}
}

func (s *CatalogServiceImpl) Services(ctx context.Context) ([]dto.Option, error) {
	services, err := s.store.Lookups().Services(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Option, 0, len(services))
	for _, svc := range services {
		out = append(out, dto.Option{ID: svc.ID.String(), Name: svc.Name})
	}
	return out, nil
}

func (s *CatalogServiceImpl) Roles(ctx context.Context) ([]dto.Option, error) {
	roles, err := s.store.Lookups().Roles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Option, 0, len(roles))
	for _, role := range roles {
		out = append(out, dto.Option{ID: role.ID.String(), Name: role.Name})
	}
	return out, nil
}
