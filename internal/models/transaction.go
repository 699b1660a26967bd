package models

import "time"

// Jenis transaksi di riwayat
const (
	TransactionTopUp   = "topup"
	TransactionTagihan = "tagihan"
)

// Transaction adalah baris gabungan top up & tagihan untuk riwayat transaksi
type Transaction struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	UserID          string    `json:"user_id"`
	Nominal         float64   `json:"nominal"`
	PaymentMethod   string    `json:"payment_method"`
	Status          string    `json:"status"`
	TransactionCode string    `json:"transaction_code"`
	CreatedAt       time.Time `json:"created_at"`
	UserName        string    `json:"user_name,omitempty"`
	UserEmail       string    `json:"user_email,omitempty"`
	MitraName       string    `json:"mitra_name,omitempty"`
	LayananName     string    `json:"layanan_name,omitempty"`
}

// TransactionFilter diisi dari query ?status=&type=&q=. Type kosong berarti semua.
type TransactionFilter struct {
	Status string `form:"status"`
	Type   string `form:"type" binding:"omitempty,oneof=topup tagihan all"`
	Search string `form:"q"`
}

func TransactionFromTopUp(t TopUp) Transaction {
	trx := Transaction{
		ID:            t.ID,
		Type:          TransactionTopUp,
		UserID:        t.UserID,
		Nominal:       t.Nominal,
		PaymentMethod: t.PaymentMethod,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
	}
	if t.TransactionCode != nil {
		trx.TransactionCode = *t.TransactionCode
	}
	if t.User != nil {
		trx.UserName, trx.UserEmail = t.User.Nama, t.User.Email
	}
	return trx
}

// TransactionFromTagihan memakai order_date sebagai waktu transaksi
func TransactionFromTagihan(t Tagihan) Transaction {
	trx := Transaction{
		ID:            t.ID,
		Type:          TransactionTagihan,
		UserID:        t.UserID,
		Nominal:       t.Nominal,
		PaymentMethod: "Unknown",
		Status:        t.Status,
		CreatedAt:     t.OrderDate,
	}
	if t.PaymentMethod != nil {
		trx.PaymentMethod = *t.PaymentMethod
	}
	if t.User != nil {
		trx.UserName, trx.UserEmail = t.User.Nama, t.User.Email
	}
	if t.Mitra != nil {
		trx.MitraName = t.Mitra.NamaToko
	}
	if t.Layanan != nil {
		trx.LayananName = t.Layanan.NamaLayanan
	}
	return trx
}
