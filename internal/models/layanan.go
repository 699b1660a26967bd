package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Layanan adalah katalog jasa SmartCare
type Layanan struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	NamaLayanan string    `gorm:"column:nama_layanan;size:100;not null" json:"nama_layanan"`
	Description *string   `gorm:"type:text" json:"description"`
	BasePrice   *float64  `gorm:"column:base_price" json:"base_price"`
	IconURL     *string   `gorm:"column:icon_url" json:"icon_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Layanan) TableName() string { return "layanan" }

func (l *Layanan) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// LayananInput dipakai untuk tambah & edit layanan
type LayananInput struct {
	NamaLayanan string   `json:"nama_layanan" binding:"required"`
	Description string   `json:"description"`
	BasePrice   *float64 `json:"base_price" binding:"required,gte=0"`
	IconURL     string   `json:"icon_url" binding:"omitempty,url"`
}
