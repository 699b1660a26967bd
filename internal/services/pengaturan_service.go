package services

import (
	"context"
	"errors"
	"fmt"

	"smartcare-admin/internal/models"
	"smartcare-admin/internal/store"

	"github.com/go-playground/validator/v10"
)

// PengaturanService membaca & menulis pengaturan aplikasi sebagai satu dokumen.
// Pengaturan hanya kosmetik, tidak ada bagian service yang menegakkannya.
type PengaturanService struct {
	store    store.Store
	validate *validator.Validate
}

func NewPengaturanService(st store.Store) *PengaturanService {
	return &PengaturanService{store: st, validate: validator.New()}
}

// Get mengembalikan default yang ditimpa dokumen tersimpan
func (s *PengaturanService) Get(ctx context.Context) (*models.AppSettings, error) {
	settings := models.DefaultAppSettings()
	err := store.GetJSON(ctx, s.store, store.KeyAppSettings, &settings)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("baca pengaturan: %w", err)
	}
	return &settings, nil
}

// Save memvalidasi lalu menulis seluruh record sekaligus
func (s *PengaturanService) Save(ctx context.Context, settings models.AppSettings) (*models.AppSettings, error) {
	if err := s.validate.Struct(settings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := store.SetJSON(ctx, s.store, store.KeyAppSettings, settings); err != nil {
		return nil, fmt.Errorf("simpan pengaturan: %w", err)
	}
	return s.Get(ctx)
}

// Reset menghapus dokumen tersimpan sehingga pembacaan berikutnya kembali ke default
func (s *PengaturanService) Reset(ctx context.Context) (*models.AppSettings, error) {
	if err := s.store.Delete(ctx, store.KeyAppSettings); err != nil {
		return nil, fmt.Errorf("reset pengaturan: %w", err)
	}
	return s.Get(ctx)
}
