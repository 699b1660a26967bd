package services

import (
	"context"
	"time"

	"smartcare-admin/internal/events"
	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/logger"
)

// TagihanService untuk layar kelola tagihan
type TagihanService struct {
	repo      TagihanRepository
	publisher events.Publisher
	now       func() time.Time
}

func NewTagihanService(repo TagihanRepository, publisher events.Publisher) *TagihanService {
	return &TagihanService{repo: repo, publisher: publisher, now: time.Now}
}

func (s *TagihanService) List(ctx context.Context, status string) ([]models.TagihanView, error) {
	list, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}
	return models.NewTagihanViews(list), nil
}

// UpdateStatus memindahkan tagihan sesuai tabel transisi.
// Status completed sekalian mengisi completion_date.
func (s *TagihanService) UpdateStatus(ctx context.Context, id, to, listStatus string) ([]models.TagihanView, error) {
	tagihan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransitionTagihan(tagihan.Status, to) {
		return nil, ErrInvalidStatus
	}

	var completionDate *time.Time
	if to == models.TagihanStatusCompleted {
		now := s.now()
		completionDate = &now
	}
	if err := s.repo.UpdateStatus(ctx, id, tagihan.Status, to, completionDate); err != nil {
		return nil, err
	}

	logger.Op("tagihan.update_status").WithFields(map[string]interface{}{
		"tagihan_id": id,
		"from":       tagihan.Status,
		"to":         to,
	}).Info("Status tagihan diubah")
	s.publisher.Publish(ctx, events.TagihanStatusChanged, id, map[string]string{
		"tagihan_id": id,
		"user_id":    tagihan.UserID,
		"mitra_id":   tagihan.MitraID,
		"from":       tagihan.Status,
		"to":         to,
	})
	return s.List(ctx, listStatus)
}
