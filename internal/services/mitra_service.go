package services

import (
	"context"

	"smartcare-admin/internal/events"
	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/logger"
)

// MitraService untuk layar verifikasi mitra & perubahan status mitra
type MitraService struct {
	repo      MitraRepository
	publisher events.Publisher
}

func NewMitraService(repo MitraRepository, publisher events.Publisher) *MitraService {
	return &MitraService{repo: repo, publisher: publisher}
}

// ListPending memuat mitra yang menunggu verifikasi, terbaru dulu
func (s *MitraService) ListPending(ctx context.Context) ([]models.MitraView, error) {
	list, err := s.repo.FindAll(ctx, models.MitraStatusPending)
	if err != nil {
		return nil, err
	}
	return models.NewMitraViews(list), nil
}

// ChangeStatus memvalidasi transisi lalu mengupdate status secara kondisional.
// Kalau status sudah diubah sesi lain, repo mengembalikan ErrInvalidTransition.
func (s *MitraService) ChangeStatus(ctx context.Context, id, to string) error {
	mitra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !models.CanTransitionMitra(mitra.Status, to) {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, mitra.Status, to); err != nil {
		return err
	}

	logger.Op("mitra.change_status").WithFields(map[string]interface{}{
		"mitra_id": id,
		"from":     mitra.Status,
		"to":       to,
	}).Info("Status mitra diubah")
	s.publisher.Publish(ctx, events.MitraStatusChanged, id, map[string]string{
		"mitra_id": id,
		"from":     mitra.Status,
		"to":       to,
	})
	return nil
}

// Verify & Reject dipakai layar verifikasi; hasilnya daftar pending terbaru
func (s *MitraService) Verify(ctx context.Context, id string) ([]models.MitraView, error) {
	if err := s.ChangeStatus(ctx, id, models.MitraStatusVerified); err != nil {
		return nil, err
	}
	return s.ListPending(ctx)
}

func (s *MitraService) Reject(ctx context.Context, id string) ([]models.MitraView, error) {
	if err := s.ChangeStatus(ctx, id, models.MitraStatusRejected); err != nil {
		return nil, err
	}
	return s.ListPending(ctx)
}

// Offerings memuat layanan yang ditawarkan seorang mitra
func (s *MitraService) Offerings(ctx context.Context, mitraID string) ([]models.MitraLayanan, error) {
	if _, err := s.repo.FindByID(ctx, mitraID); err != nil {
		return nil, err
	}
	return s.repo.FindOfferings(ctx, mitraID)
}

func (s *MitraService) SetOfferingAvailability(ctx context.Context, mitraID, layananID string, available bool) ([]models.MitraLayanan, error) {
	if err := s.repo.SetOfferingAvailability(ctx, mitraID, layananID, available); err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, events.LayananChanged, layananID, map[string]interface{}{
		"mitra_id":     mitraID,
		"layanan_id":   layananID,
		"is_available": available,
	})
	return s.repo.FindOfferings(ctx, mitraID)
}
