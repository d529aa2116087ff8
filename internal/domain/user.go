package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            UserID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserName      string     `gorm:"not null" json:"userName"`
	Email         string     `gorm:"uniqueIndex:ux_users_email;not null" json:"email"`
	Password      string     `gorm:"not null" json:"-"` // bcrypt hash, never plaintext
	FirstName     *string    `json:"firstName"`
	LastName      *string    `json:"lastName"`
	BloodType     *BloodType `gorm:"type:text" json:"bloodType"`
	Birthday      *time.Time `json:"birthday"`
	Sex           *Sex       `gorm:"type:text" json:"sex"`
	Phone         *string    `json:"phone"`
	Photo         *string    `json:"photo"`
	InstitutionID InstitutionID `gorm:"type:uuid;not null" json:"institutionId"`
	RoleID        uuid.UUID     `gorm:"type:uuid;not null" json:"roleId"`
	CreatedAt     time.Time     `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"not null" json:"updatedAt"`

	Institution *Institution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
	Role        *Role        `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string { return "users" }

type Role struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (Role) TableName() string { return "roles" }
