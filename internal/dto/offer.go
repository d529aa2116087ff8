package dto

import (
	"time"

	"orgadmin/internal/domain"
)

type OfferRequestResponse struct {
	ID           string    `json:"id"`
	CreatorID    string    `json:"creatorId"`
	CreatorInsID string    `json:"creatorInsId"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Status       string    `json:"status"`
	Details      string    `json:"details"`

	Subs []RequestSubResponse `json:"subs"`
}

type RequestSubResponse struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"serviceId"`
	Date      time.Time `json:"date"`
	Quantity  int       `json:"quantity"`
	Detail    *string   `json:"detail"`
	Service   *Option   `json:"service,omitempty"`
}

func NewOfferRequestResponse(o *domain.OfferRequest) OfferRequestResponse {
	resp := OfferRequestResponse{
		ID:           o.ID.String(),
		CreatorID:    o.CreatorID.String(),
		CreatorInsID: o.CreatorInsID.String(),
		Start:        o.Start,
		End:          o.End,
		Status:       o.Status,
		Details:      o.Details,
		Subs:         make([]RequestSubResponse, 0, len(o.Subs)),
	}
	for _, sub := range o.Subs {
		item := RequestSubResponse{
			ID:        sub.ID.String(),
			ServiceID: sub.ServiceID.String(),
			Date:      sub.Date,
			Quantity:  sub.Quantity,
			Detail:    sub.Detail,
		}
		if sub.Service != nil {
			item.Service = &Option{ID: sub.Service.ID.String(), Name: sub.Service.Name}
		}
		resp.Subs = append(resp.Subs, item)
	}
	return resp
}
