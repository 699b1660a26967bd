package repository

import (
	"context"
	"time"

	"smartcare-admin/internal/models"

	"gorm.io/gorm"
)

type TagihanRepository struct {
	db *gorm.DB
}

func NewTagihanRepository(db *gorm.DB) *TagihanRepository {
	return &TagihanRepository{db: db}
}

// FindAll: tagihan lengkap dengan nama user, toko & layanan, order_date terbaru dulu
func (r *TagihanRepository) FindAll(ctx context.Context, status string) ([]models.Tagihan, error) {
	var list []models.Tagihan
	query := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select("id", "nama", "email") }).
		Preload("Mitra", func(db *gorm.DB) *gorm.DB { return db.Select("id", "nama_toko") }).
		Preload("Layanan", func(db *gorm.DB) *gorm.DB { return db.Select("id", "nama_layanan") }).
		Order("order_date desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&list).Error
	return list, translate(err)
}

func (r *TagihanRepository) FindByID(ctx context.Context, id string) (*models.Tagihan, error) {
	var tagihan models.Tagihan
	if err := r.db.WithContext(ctx).First(&tagihan, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &tagihan, nil
}

// UpdateStatus: conditional update dari status 'from'. completionDate diisi kalau tidak nil.
func (r *TagihanRepository) UpdateStatus(ctx context.Context, id, from, to string, completionDate *time.Time) error {
	updates := map[string]interface{}{"status": to}
	if completionDate != nil {
		updates["completion_date"] = *completionDate
	}

	res := r.db.WithContext(ctx).Model(&models.Tagihan{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}
