package repository

import (
	"context"

	"smartcare-admin/internal/models"

	"gorm.io/gorm"
)

type MitraRepository struct {
	db *gorm.DB
}

func NewMitraRepository(db *gorm.DB) *MitraRepository {
	return &MitraRepository{db: db}
}

// FindAll: status kosong = semua mitra; filter status dilakukan di database
func (r *MitraRepository) FindAll(ctx context.Context, status string) ([]models.Mitra, error) {
	var mitras []models.Mitra
	query := r.db.WithContext(ctx).Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&mitras).Error
	return mitras, translate(err)
}

// FindVerifiedByName dipakai form kirim saldo
func (r *MitraRepository) FindVerifiedByName(ctx context.Context) ([]models.Mitra, error) {
	var mitras []models.Mitra
	err := r.db.WithContext(ctx).
		Select("id", "nama_toko", "email", "saldo").
		Where("status = ?", models.MitraStatusVerified).
		Order("nama_toko").
		Find(&mitras).Error
	return mitras, translate(err)
}

func (r *MitraRepository) FindByID(ctx context.Context, id string) (*models.Mitra, error) {
	var mitra models.Mitra
	if err := r.db.WithContext(ctx).First(&mitra, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &mitra, nil
}

func (r *MitraRepository) Count(ctx context.Context, status string) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.Mitra{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&total).Error
	return total, translate(err)
}

// UpdateStatus mengubah status hanya kalau status sekarang masih 'from'.
// Kalau ada admin lain yang lebih dulu mengubah, hasilnya ErrInvalidTransition.
func (r *MitraRepository) UpdateStatus(ctx context.Context, id, from, to string) error {
	res := r.db.WithContext(ctx).Model(&models.Mitra{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// AddSaldo: increment atomik, sama seperti saldo user
func (r *MitraRepository) AddSaldo(ctx context.Context, id string, amount float64) error {
	return addSaldo(r.db.WithContext(ctx), &models.Mitra{}, id, amount)
}

func (r *MitraRepository) FindOfferings(ctx context.Context, mitraID string) ([]models.MitraLayanan, error) {
	var offerings []models.MitraLayanan
	err := r.db.WithContext(ctx).
		Preload("Layanan").
		Where("mitra_id = ?", mitraID).
		Order("created_at desc").
		Find(&offerings).Error
	return offerings, translate(err)
}

func (r *MitraRepository) SetOfferingAvailability(ctx context.Context, mitraID, layananID string, available bool) error {
	res := r.db.WithContext(ctx).Model(&models.MitraLayanan{}).
		Where("mitra_id = ? AND layanan_id = ?", mitraID, layananID).
		Update("is_available", available)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
