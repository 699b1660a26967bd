package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartcare-admin/internal/events"
	"smartcare-admin/internal/models"
	"smartcare-admin/internal/store"
	"smartcare-admin/pkg/logger"

	"github.com/google/uuid"
)

// NotifikasiService untuk broadcast pengumuman & template notifikasi.
// Template disimpan sebagai satu dokumen list di store lokal.
type NotifikasiService struct {
	users       UserRepository
	mitras      MitraRepository
	store       store.Store
	broadcaster Broadcaster
	publisher   events.Publisher
	now         func() time.Time
}

func NewNotifikasiService(users UserRepository, mitras MitraRepository, st store.Store, broadcaster Broadcaster, publisher events.Publisher) *NotifikasiService {
	return &NotifikasiService{
		users:       users,
		mitras:      mitras,
		store:       st,
		broadcaster: broadcaster,
		publisher:   publisher,
		now:         time.Now,
	}
}

// Templates membaca seluruh template; dokumen belum ada = list kosong
func (s *NotifikasiService) Templates(ctx context.Context) ([]models.NotificationTemplate, error) {
	var templates []models.NotificationTemplate
	err := store.GetJSON(ctx, s.store, store.KeyNotificationTemplates, &templates)
	if errors.Is(err, store.ErrNotFound) {
		return []models.NotificationTemplate{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("baca template: %w", err)
	}
	if templates == nil {
		templates = []models.NotificationTemplate{}
	}
	return templates, nil
}

// SaveTemplate menambah template di posisi paling atas
func (s *NotifikasiService) SaveTemplate(ctx context.Context, input models.NotificationInput) ([]models.NotificationTemplate, error) {
	templates, err := s.Templates(ctx)
	if err != nil {
		return nil, err
	}

	tmpl := models.NotificationTemplate{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Message:   input.Message,
		Type:      audienceOrDefault(input.Type),
		CreatedAt: s.now(),
	}
	templates = append([]models.NotificationTemplate{tmpl}, templates...)

	if err := store.SetJSON(ctx, s.store, store.KeyNotificationTemplates, templates); err != nil {
		return nil, fmt.Errorf("simpan template: %w", err)
	}
	return templates, nil
}

// DeleteTemplate menghapus template berdasarkan id; id tidak dikenal diabaikan
func (s *NotifikasiService) DeleteTemplate(ctx context.Context, id string) ([]models.NotificationTemplate, error) {
	templates, err := s.Templates(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]models.NotificationTemplate, 0, len(templates))
	for _, t := range templates {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if err := store.SetJSON(ctx, s.store, store.KeyNotificationTemplates, kept); err != nil {
		return nil, fmt.Errorf("simpan template: %w", err)
	}
	return kept, nil
}

// Recipients menghitung calon penerima: semua user & mitra terverifikasi
func (s *NotifikasiService) Recipients(ctx context.Context) (*models.RecipientStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	mitras, err := s.mitras.Count(ctx, models.MitraStatusVerified)
	if err != nil {
		return nil, err
	}
	return &models.RecipientStats{TotalUsers: users, TotalMitras: mitras, All: users + mitras}, nil
}

// SendResult adalah hasil broadcast
type SendResult struct {
	Audience   string                        `json:"audience"`
	Recipients int64                         `json:"recipients"`
	Templates  []models.NotificationTemplate `json:"templates"`
}

// Send mengirim notifikasi ke audience lalu menyimpan isinya sebagai template
func (s *NotifikasiService) Send(ctx context.Context, input models.NotificationInput) (*SendResult, error) {
	audience := audienceOrDefault(input.Type)

	stats, err := s.Recipients(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.broadcaster.Broadcast(ctx, audience, input.Title, input.Message, map[string]string{"type": audience}); err != nil {
		return nil, err
	}

	recipients := stats.Count(audience)
	logger.Op("notifikasi.send").WithFields(map[string]interface{}{
		"audience":   audience,
		"recipients": recipients,
	}).Info("Notifikasi dikirim")
	s.publisher.Publish(ctx, events.NotificationSent, audience, map[string]interface{}{
		"title":      input.Title,
		"audience":   audience,
		"recipients": recipients,
	})

	input.Type = audience
	templates, err := s.SaveTemplate(ctx, input)
	if err != nil {
		return nil, err
	}
	return &SendResult{Audience: audience, Recipients: recipients, Templates: templates}, nil
}

func audienceOrDefault(audience string) string {
	switch audience {
	case models.AudienceUsers, models.AudienceMitras:
		return audience
	default:
		return models.AudienceAll
	}
}
