package domain

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (Service) TableName() string { return "services"}

type OfferRequest struct {
	ID           OfferRequestID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatorID    UserID         `gorm:"type:uuid;not null" json:"creatorId"`
	CreatorInsID InstitutionID  `gorm:"type:uuid;not null" json:"creatorInsId"`
	Start        time.Time      `gorm:"not null" json:"start"`
	End          time.Time      `gorm:"not null" json:"end"`
	Status       string         `gorm:"not null" json:"status"`
	Details      string         `gorm:"type:text" json:"details"`
	CreatedAt    time.Time      `gorm:"not null" json:"createdAt"`

	Subs []RequestSub `gorm:"foreignKey:RequestID" json:"subs,omitempty"`
}

func (OfferRequest) TableName() string { return "offer_requests" }

// RequestSub is a single line item of an offer request.
type RequestSub struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	RequestID OfferRequestID `gorm:"type:uuid;not null" json:"requestId"`
	ServiceID uuid.UUID      `gorm:"type:uuid;not null" json:"serviceId"`
	Date      time.Time      `gorm:"not null" json:"date"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Detail    *string        `json:"detail"`

	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (RequestSub) TableName() string { return "request_subs" }
