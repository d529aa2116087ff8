package domain

import (
	"time"

	"github.com/google/uuid"
)

type Device struct {
	ID              DeviceID     `gorm:"type:uuid;primaryKey" json:"id"`
	SerialNumber    string       `gorm:"uniqueIndex:ux_devices_serial;not null" json:"serialNumber"`
	QRCode          string       `gorm:"column:qrcode;type:text;not null" json:"qrcode"`
	ProductionDate  time.Time    `gorm:"not null" json:"productionDate"`
	LastControlDate time.Time    `gorm:"not null" json:"lastControlDate"`
	ExpirationDate  time.Time    `gorm:"not null" json:"expirationDate"`
	NextControlDate time.Time    `gorm:"not null" json:"nextControlDate"`
	Location        string       `gorm:"not null" json:"location"`
	Photo           *string      `json:"photo"`
	CurrentStatus   DeviceStatus `gorm:"type:text;not null" json:"currentStatus"`
	TypeID          uuid.UUID    `gorm:"type:uuid;not null" json:"typeId"`
	FeatureID       uuid.UUID    `gorm:"type:uuid;not null" json:"featureId"`
	OwnerID         UserID       `gorm:"type:uuid;not null" json:"ownerId"`
	OwnerInstID     InstitutionID `gorm:"type:uuid;not null" json:"ownerInstId"`
	ProviderID      UserID        `gorm:"type:uuid;not null" json:"providerId"`
	ProviderInstID  InstitutionID `gorm:"type:uuid;not null" json:"providerInstId"`
	IsgMemberID     uuid.UUID     `gorm:"type:uuid;not null" json:"isgMemberId"`
	Details         string        `gorm:"type:text;not null" json:"details"`
	CreatedAt       time.Time     `gorm:"not null" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"not null" json:"updatedAt"`

	Type        *DeviceType    `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	Feature     *DeviceFeature `gorm:"foreignKey:FeatureID" json:"feature,omitempty"`
	Owner       *User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	OwnerIns    *Institution   `gorm:"foreignKey:OwnerInstID" json:"ownerIns,omitempty"`
	Provider    *User          `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	ProviderIns *Institution   `gorm:"foreignKey:ProviderInstID" json:"providerIns,omitempty"`
	IsgMember   *IsgMember     `gorm:"foreignKey:IsgMemberID" json:"isgMember,omitempty"`
}

func (Device) TableName() string { return "devices" }

type DeviceType struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (DeviceType) TableName() string { return "device_types" }

type DeviceFeature struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (DeviceFeature) TableName() string { return "device_features" }

// IsgMember is a workplace-safety (ISG) membership record devices reference.
type IsgMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	IsgNumber string    `gorm:"not null" json:"isgNumber"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (IsgMember) TableName() string { return "isg_members" }
