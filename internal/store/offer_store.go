package store

import (
	"context"
	"errors"

	"orgadmin/internal/domain"

	"gorm.io/gorm"
)

type OfferRequestStore struct{ db *gorm.DB }

func (s *Store) OfferRequests() *OfferRequestStore { return &OfferRequestStore{db: s.DB} }

// GetByID loads an offer request with its line items and their services
// expanded in one read.
func (o *OfferRequestStore) GetByID(ctx context.Context, id domain.OfferRequestID) (*domain.OfferRequest, error) {
	var req domain.OfferRequest
	err := o.db.WithContext(ctx).
		Preload("Subs.Service").
		First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &req, nil
}
