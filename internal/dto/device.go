package dto

import (
	"time"

	"orgadmin/internal/domain"
)

// DeviceEnvelope is the write-success response shape.
type DeviceEnvelope struct {
	Success bool           `json:"success"`
	Data    DeviceResponse `json:"data"`
}

type DeviceResponse struct {
	ID              string    `json:"id"`
	SerialNumber    string    `json:"serialNumber"`
	QRCode          string    `json:"qrcode"`
	ProductionDate  time.Time `json:"productionDate"`
	LastControlDate time.Time `json:"lastControlDate"`
	ExpirationDate  time.Time `json:"expirationDate"`
	NextControlDate time.Time `json:"nextControlDate"`
	Location        string    `json:"location"`
	Photo           *string   `json:"photo"`
	CurrentStatus   string    `json:"currentStatus"`
	TypeID          string    `json:"typeId"`
	FeatureID       string    `json:"featureId"`
	OwnerID         string    `json:"ownerId"`
	OwnerInstID     string    `json:"ownerInstId"`
	ProviderID      string    `json:"providerId"`
	ProviderInstID  string    `json:"providerInstId"`
	IsgMemberID     string    `json:"isgMemberId"`
	Details         string    `json:"details"`
	CreatedAt       time.Time `json:"createdAt"`

	Type        *Option           `json:"type,omitempty"`
	Feature     *Option           `json:"feature,omitempty"`
	Owner       *UserSummary      `json:"owner,omitempty"`
	OwnerIns    *Option           `json:"ownerIns,omitempty"`
	Provider    *UserSummary      `json:"provider,omitempty"`
	ProviderIns *Option           `json:"providerIns,omitempty"`
	IsgMember   *IsgMemberSummary `json:"isgMember,omitempty"`
}

func NewDeviceResponse(d *domain.Device) DeviceResponse {
	resp := DeviceResponse{
		ID:              d.ID.String(),
		SerialNumber:    d.SerialNumber,
		QRCode:          d.QRCode,
		ProductionDate:  d.ProductionDate,
		LastControlDate: d.LastControlDate,
		ExpirationDate:  d.ExpirationDate,
		NextControlDate: d.NextControlDate,
		Location:        d.Location,
		Photo:           d.Photo,
		CurrentStatus:   string(d.CurrentStatus),
		TypeID:          d.TypeID.String(),
		FeatureID:       d.FeatureID.String(),
		OwnerID:         d.OwnerID.String(),
		OwnerInstID:     d.OwnerInstID.String(),
		ProviderID:      d.ProviderID.String(),
		ProviderInstID:  d.ProviderInstID.String(),
		IsgMemberID:     d.IsgMemberID.String(),
		Details:         d.Details,
		CreatedAt:       d.CreatedAt,
	}
	if d.Type != nil {
		resp.Type = &Option{ID: d.Type.ID.String(), Name: d.Type.Name}
	}
	if d.Feature != nil {
		resp.Feature = &Option{ID: d.Feature.ID.String(), Name: d.Feature.Name}
	}
	if d.Owner != nil {
		resp.Owner = newUserSummary(d.Owner)
	}
	if d.OwnerIns != nil {
		resp.OwnerIns = &Option{ID: d.OwnerIns.ID.String(), Name: d.OwnerIns.Name}
	}
	if d.Provider != nil {
		resp.Provider = newUserSummary(d.Provider)
	}
	if d.ProviderIns != nil {
		resp.ProviderIns = &Option{ID: d.ProviderIns.ID.String(), Name: d.ProviderIns.Name}
	}
	if d.IsgMember != nil {
		resp.IsgMember = &IsgMemberSummary{
			ID:        d.IsgMember.ID.String(),
			Name:      d.IsgMember.Name,
			IsgNumber: d.IsgMember.IsgNumber,
		}
	}
	return resp
}

func newUserSummary(u *domain.User) *UserSummary {
	return &UserSummary{
		ID:        u.ID.String(),
		UserName:  u.UserName,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
