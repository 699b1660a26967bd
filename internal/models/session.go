package models

import "time"

// Session adalah sesi admin hasil login kode akses
type Session struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type LoginInput struct {
	AccessCode string `json:"access_code" binding:"required"`
}

// MenuItem adalah satu menu di dashboard admin
type MenuItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var DashboardMenu = []MenuItem{
	{ID: "verifikasi-mitra", Title: "Verifikasi Mitra Baru", Description: "Verifikasi data mitra baru"},
	{ID: "konfirmasi-topup", Title: "Konfirmasi Top Up", Description: "Setujui permintaan top up"},
	{ID: "kirim-saldo", Title: "Kirim Saldo Manual", Description: "Transfer saldo manual"},
	{ID: "live-chat", Title: "Live Chat", Description: "Chat dengan pengguna"},
	{ID: "kelola-tagihan", Title: "Kelola Tagihan", Description: "Atur tagihan layanan"},
	{ID: "kelola-layanan", Title: "Kelola Layanan", Description: "Atur layanan SmartCare"},
	{ID: "riwayat-transaksi", Title: "Riwayat Transaksi", Description: "Log transaksi keuangan"},
	{ID: "kelola-pengguna", Title: "Kelola Pengguna", Description: "Atur data pengguna"},
	{ID: "laporan-statistik", Title: "Laporan & Statistik", Description: "Data dan analitik"},
	{ID: "kelola-notifikasi", Title: "Kelola Notifikasi", Description: "Kirim pengumuman"},
	{ID: "pengaturan", Title: "Pengaturan Aplikasi", Description: "Konfigurasi sistem"},
	{ID: "logout", Title: "Logout", Description: "Keluar dari sistem"},
}
