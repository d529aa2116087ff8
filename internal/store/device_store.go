package store

import (
	"context"
	"errors"

	"orgadmin/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeviceStore struct{ db *gorm.DB }

func (s *Store) Devices() *DeviceStore { return &DeviceStore{db: s.DB} }

// deviceExpansions are the immediate relations returned alongside a device
// so responses need no follow-up query.
var deviceExpansions = []string{
	"Type", "Feature", "Owner", "OwnerIns", "Provider", "ProviderIns", "IsgMember",
}

func (d *DeviceStore) expanded(ctx context.Context) *gorm.DB {
	q := d.db.WithContext(ctx)
	for _, rel := range deviceExpansions {
		q = q.Preload(rel)
	}
	return q
}

// Create commits the device and reloads it with all expansions.
func (d *DeviceStore) Create(ctx context.Context, dev *domain.Device) error {
	if dev.ID == uuid.Nil {
		dev.ID = uuid.New()
	}
	if err := d.db.WithContext(ctx).Create(dev).Error; err != nil {
		return err
	}
	return d.expanded(ctx).First(dev, "id = ?", dev.ID).Error
}

func (d *DeviceStore) GetByID(ctx context.Context, id domain.DeviceID) (*domain.Device, error) {
	var dev domain.Device
	if err := d.expanded(ctx).First(&dev, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &dev, nil
}

func (d *DeviceStore) List(ctx context.Context) ([]domain.Device, error) {
	var devices []domain.Device
	err := d.expanded(ctx).Order("serial_number ASC").Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}
