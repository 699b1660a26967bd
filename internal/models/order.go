package models

import "time"

// Tagihan adalah order layanan: user memesan layanan ke mitra
type Tagihan struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	UserID         string     `gorm:"size:36;not null" json:"user_id"`
	MitraID        string     `gorm:"size:36;not null" json:"mitra_id"`
	LayananID      string     `gorm:"size:36;not null" json:"layanan_id"`
	Nominal        float64    `gorm:"not null" json:"nominal"`
	Status         string     `gorm:"size:20;default:pending" json:"status"`
	OrderDate      time.Time  `json:"order_date"`
	CompletionDate *time.Time `json:"completion_date"` // Terisi otomatis saat status -> completed
	PaymentMethod  *string    `json:"payment_method"`
	Rating         *float64   `json:"rating"`
	Review         *string    `gorm:"type:text" json:"review"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relasi (Preload) biar admin langsung liat nama user, toko & layanan
	User    *User    `gorm:"foreignKey:UserID" json:"users,omitempty"`
	Mitra   *Mitra   `gorm:"foreignKey:MitraID" json:"mitra,omitempty"`
	Layanan *Layanan `gorm:"foreignKey:LayananID" json:"layanan,omitempty"`
}

func (Tagihan) TableName() string { return "tagihan" }

type TagihanView struct {
	Tagihan
	AvailableActions []Action `json:"available_actions"`
}

func NewTagihanViews(list []Tagihan) []TagihanView {
	views := make([]TagihanView, 0, len(list))
	for _, t := range list {
		views = append(views, TagihanView{Tagihan: t, AvailableActions: TagihanActions(t.Status)})
	}
	return views
}

type UpdateTagihanStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending processing completed cancelled"`
}
