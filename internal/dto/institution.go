package dto

import (
	"time"

	"orgadmin/internal/domain"
)

// InstitutionResponse is the {id, name, address, email, phone} projection of
// the institutions list, plus the optional registration date on writes.
type InstitutionResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Address          string     `json:"address"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	RegistrationDate *time.Time `json:"registrationDate,omitempty"`
}

func NewInstitutionResponse(i *domain.Institution) InstitutionResponse {
	return InstitutionResponse{
		ID:               i.ID.String(),
		Name:             i.Name,
		Address:          i.Address,
		Email:            i.Email,
		Phone:            i.Phone,
		RegistrationDate: i.RegistrationDate,
	}
}
