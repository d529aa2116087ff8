package store

import (
	"context"
	"errors"

	"orgadmin/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstitutionStore struct{ db *gorm.DB }

func (s *Store) Institutions() *InstitutionStore { return &InstitutionStore{db: s.DB} }

func (i *InstitutionStore) Create(ctx context.Context, inst *domain.Institution) error {
	if inst.ID == uuid.Nil {
		inst.ID = uuid.New()
	}
	return i.db.WithContext(ctx).Create(inst).Error
}

func (i *InstitutionStore) List(ctx context.Context) ([]domain.Institution, error) {
	var institutions []domain.Institution
	err := i.db.WithContext(ctx).Order("name ASC").Find(&institutions).Error
	if err != nil {
		return nil, err
	}
	return institutions, nil
}

// GetByUserID resolves the institution a user is assigned to via a
// single-row join through users.
func (i *InstitutionStore) GetByUserID(ctx context.Context, userID domain.UserID) (*domain.Institution, error) {
	var inst domain.Institution
	err := i.db.WithContext(ctx).
		Joins("JOIN users ON users.institution_id = institutions.id").
		Where("users.id = ?", userID).
		First(&inst).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &inst, nil
}
