package models

import "time"

// TopUp adalah permintaan isi saldo user yang menunggu konfirmasi admin
type TopUp struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"size:36;not null" json:"user_id"`
	Nominal         float64   `gorm:"not null" json:"nominal"`
	PaymentMethod   string    `gorm:"size:50;not null" json:"payment_method"`
	Status          string    `gorm:"size:20;default:pending" json:"status"`
	TransactionCode *string   `gorm:"size:100" json:"transaction_code"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"users,omitempty"`
}

func (TopUp) TableName() string { return "topup" }

type TopUpView struct {
	TopUp
	AvailableActions []Action `json:"available_actions"`
}

func NewTopUpViews(list []TopUp) []TopUpView {
	views := make([]TopUpView, 0, len(list))
	for _, t := range list {
		views = append(views, TopUpView{TopUp: t, AvailableActions: TopUpActions(t.Status)})
	}
	return views
}

// Target saldo manual
const (
	TargetUser  = "user"
	TargetMitra = "mitra"
)

type KirimSaldoInput struct {
	TargetType string  `json:"target_type" binding:"required,oneof=user mitra"`
	TargetID   string  `json:"target_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
}

// SaldoTarget adalah baris pilihan di form kirim saldo
type SaldoTarget struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Saldo float64 `json:"saldo"`
}

// PaymentStatus hasil cek ke payment gateway
type PaymentStatus struct {
	TransactionCode string `json:"transaction_code"`
	GatewayStatus   string `json:"gateway_status"`
	FraudStatus     string `json:"fraud_status,omitempty"`
	GrossAmount     string `json:"gross_amount,omitempty"`
	Status          string `json:"status"` // paid, pending, failed
}
