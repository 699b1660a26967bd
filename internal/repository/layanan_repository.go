package repository

import (
	"context"

	"smartcare-admin/internal/models"

	"gorm.io/gorm"
)

type LayananRepository struct {
	db *gorm.DB
}

func NewLayananRepository(db *gorm.DB) *LayananRepository {
	return &LayananRepository{db: db}
}

func (r *LayananRepository) FindAll(ctx context.Context) ([]models.Layanan, error) {
	var list []models.Layanan
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error
	return list, translate(err)
}

func (r *LayananRepository) Create(ctx context.Context, layanan *models.Layanan) error {
	return translate(r.db.WithContext(ctx).Create(layanan).Error)
}

// Update menimpa kolom yang bisa diedit dari form (termasuk yang dikosongkan)
func (r *LayananRepository) Update(ctx context.Context, layanan *models.Layanan) error {
	res := r.db.WithContext(ctx).Model(&models.Layanan{}).
		Where("id = ?", layanan.ID).
		Updates(map[string]interface{}{
			"nama_layanan": layanan.NamaLayanan,
			"description":  layanan.Description,
			"base_price":   layanan.BasePrice,
			"icon_url":     layanan.IconURL,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete gagal dengan ErrConflict kalau layanan masih dipakai tagihan
func (r *LayananRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Layanan{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
