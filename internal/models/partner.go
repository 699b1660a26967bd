package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mitra adalah penyedia jasa (tabel 'mitra')
type Mitra struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	NamaToko    string    `gorm:"column:nama_toko;size:100;not null" json:"nama_toko"`
	Email       string    `gorm:"size:100;not null" json:"email"`
	Alamat      string    `gorm:"type:text;not null" json:"alamat"`
	PhoneNumber string    `gorm:"column:phone_number;size:20;not null" json:"phone_number"`
	Status      string    `gorm:"size:20;default:pending" json:"status"`
	Saldo       float64   `gorm:"default:0" json:"saldo"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Mitra) TableName() string { return "mitra" }

func (m *Mitra) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MitraView adalah Mitra plus tombol aksi yang valid dari status sekarang
type MitraView struct {
	Mitra
	AvailableActions []Action `json:"available_actions"`
}

func NewMitraViews(list []Mitra) []MitraView {
	views := make([]MitraView, 0, len(list))
	for _, m := range list {
		views = append(views, MitraView{Mitra: m, AvailableActions: MitraActions(m.Status)})
	}
	return views
}

// MitraLayanan: harga & ketersediaan layanan per mitra (many-to-many)
type MitraLayanan struct {
	MitraID     string    `gorm:"primaryKey;column:mitra_id;size:36" json:"mitra_id"`
	LayananID   string    `gorm:"primaryKey;column:layanan_id;size:36" json:"layanan_id"`
	Price       float64   `gorm:"not null" json:"price"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Layanan *Layanan `gorm:"foreignKey:LayananID" json:"layanan,omitempty"`
}

func (MitraLayanan) TableName() string { return "mitra_layanan" }

type UpdateMitraStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending terverifikasi ditolak suspended"`
}

type SetAvailabilityInput struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}
