package store

import (
	"context"

	"orgadmin/internal/domain"

	"gorm.io/gorm"
)

// LookupStore serves the dropdown collaborators (service/role selects).
type LookupStore struct{ db *gorm.DB }

func (s *Store) Lookups() *LookupStore { return &LookupStore{db: s.DB} }

func (l *LookupStore) Services(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	err := l.db.WithContext(ctx).Order("name ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (l *LookupStore) Roles(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	err := l.db.WithContext(ctx).Order("name ASC").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
