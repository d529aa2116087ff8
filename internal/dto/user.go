package dto

import (
	"time"

	"orgadmin/internal/domain"
)

// UserResponse deliberately carries no password field.
type UserResponse struct {
	ID            string     `json:"id"`
	UserName      string     `json:"userName"`
	Email         string     `json:"email"`
	FirstName     *string    `json:"firstName"`
	LastName      *string    `json:"lastName"`
	BloodType     *string    `json:"bloodType"`
	Birthday      *time.Time `json:"birthday"`
	Sex           *string    `json:"sex"`
	Phone         *string    `json:"phone"`
	Photo         *string    `json:"photo"`
	InstitutionID string     `json:"institutionId"`
	RoleID        string     `json:"roleId"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func NewUserResponse(u *domain.User) UserResponse {
	resp := UserResponse{
		ID:            u.ID.String(),
		UserName:      u.UserName,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Birthday:      u.Birthday,
		Phone:         u.Phone,
		Photo:         u.Photo,
		InstitutionID: u.InstitutionID.String(),
		RoleID:        u.RoleID.String(),
		CreatedAt:     u.CreatedAt,
	}
	if u.BloodType != nil {
		v := string(*u.BloodType)
		resp.BloodType = &v
	}
	if u.Sex != nil {
		v := string(*u.Sex)
		resp.Sex = &v
	}
	return resp
}

func NewUserSummary(u *domain.User) UserSummary {
	return *newUserSummary(u)
}
