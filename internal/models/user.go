package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User merepresentasikan tabel 'users' (customer aplikasi SmartCare)
type User struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	Nama              string    `gorm:"column:nama;size:100;not null" json:"nama"`
	Email             string    `gorm:"size:100;not null" json:"email"`
	PhoneNumber       *string   `gorm:"column:phone_number;size:20" json:"phone_number"`
	ProfilePictureURL *string   `gorm:"column:profile_picture_url" json:"profile_picture_url"`
	Saldo             float64   `gorm:"default:0" json:"saldo"` // Invariant saldo >= 0 dijaga di database
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// AdminCredential hanya dibaca, tidak pernah diubah dari dashboard
type AdminCredential struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Role      string    `gorm:"size:30" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AdminCredential) TableName() string { return "admin_credentials" }
