package services

import (
	"context"

	"smartcare-admin/internal/events"
	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"
)

// LayananService untuk katalog layanan
type LayananService struct {
	repo      LayananRepository
	publisher events.Publisher
}

func NewLayananService(repo LayananRepository, publisher events.Publisher) *LayananService {
	return &LayananService{repo: repo, publisher: publisher}
}

func (s *LayananService) List(ctx context.Context) ([]models.Layanan, error) {
	return s.repo.FindAll(ctx)
}

func (s *LayananService) Create(ctx context.Context, input models.LayananInput) ([]models.Layanan, error) {
	layanan := fromLayananInput(input)
	if err := s.repo.Create(ctx, layanan); err != nil {
		return nil, err
	}
	s.publish(ctx, "created", layanan.ID)
	return s.repo.FindAll(ctx)
}

func (s *LayananService) Update(ctx context.Context, id string, input models.LayananInput) ([]models.Layanan, error) {
	layanan := fromLayananInput(input)
	layanan.ID = id
	if err := s.repo.Update(ctx, layanan); err != nil {
		return nil, err
	}
	s.publish(ctx, "updated", id)
	return s.repo.FindAll(ctx)
}

// Delete ditolak repo dengan ErrConflict kalau layanan masih dipakai tagihan
func (s *LayananService) Delete(ctx context.Context, id string) ([]models.Layanan, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.publish(ctx, "deleted", id)
	return s.repo.FindAll(ctx)
}

func (s *LayananService) publish(ctx context.Context, action, id string) {
	s.publisher.Publish(ctx, events.LayananChanged, id, map[string]string{
		"layanan_id": id,
		"action":     action,
	})
}

func fromLayananInput(input models.LayananInput) *models.Layanan {
	layanan := &models.Layanan{
		NamaLayanan: input.NamaLayanan,
		BasePrice:   input.BasePrice,
	}
	// string kosong disimpan sebagai NULL
	if input.Description != "" {
		layanan.Description = utils.StringPtr(input.Description)
	}
	if input.IconURL != "" {
		layanan.IconURL = utils.StringPtr(input.IconURL)
	}
	return layanan
}
