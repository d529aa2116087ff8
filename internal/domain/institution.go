package domain

import "time"

type Institution struct {
	ID               InstitutionID `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string        `gorm:"not null" json:"name"`
	Address          string        `gorm:"not null" json:"address"`
	Email            string        `gorm:"not null" json:"email"`
	Phone            string        `gorm:"not null" json:"phone"`
	RegistrationDate *time.Time    `json:"registrationDate"`
	CreatedAt        time.Time     `gorm:"not null" json:"createdAt"`
	UpdatedAt        time.Time     `gorm:"not null" json:"updatedAt"`
}

func (Institution) TableName() string { return "institutions" }
