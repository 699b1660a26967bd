// Package store menyimpan dokumen kecil non-otoritatif: template notifikasi,
// pengaturan aplikasi, dan daftar token yang sudah logout.
// Isinya bukan state sistem; hilang kalau store dikosongkan.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Key dokumen yang dipakai dashboard
const (
	KeyAppSettings           = "app_settings"
	KeyNotificationTemplates = "notification_templates"
	revokedPrefix            = "session:revoked:"
)

var ErrNotFound = errors.New("store: key tidak ditemukan")

// Store adalah key-value sederhana; nilai ditulis & dibaca utuh per dokumen.
// ttl 0 berarti tidak kadaluarsa.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// GetJSON membaca dokumen & decode ke out. Mengembalikan ErrNotFound kalau belum ada.
func GetJSON(ctx context.Context, s Store, key string, out interface{}) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// SetJSON menulis seluruh dokumen sekaligus
func SetJSON(ctx context.Context, s Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw, 0)
}

// RevokedKey adalah key penanda sesi yang sudah logout
func RevokedKey(sessionID string) string { return revokedPrefix + sessionID }
