package models

import "time"

// Audience notifikasi
const (
	AudienceUsers  = "users"
	AudienceMitras = "mitras"
	AudienceAll    = "all"
)

// NotificationTemplate disimpan sebagai satu dokumen JSON (list) di store lokal
type NotificationTemplate struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationInput struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=users mitras all"`
}

type RecipientStats struct {
	TotalUsers  int64 `json:"total_users"`
	TotalMitras int64 `json:"total_mitras"`
	All         int64 `json:"all"`
}

// Count menghitung jumlah penerima untuk audience tertentu
func (r RecipientStats) Count(audience string) int64 {
	switch audience {
	case AudienceUsers:
		return r.TotalUsers
	case AudienceMitras:
		return r.TotalMitras
	default:
		return r.TotalUsers + r.TotalMitras
	}
}
