package repository

import (
	"context"

	"smartcare-admin/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindAll: semua user, terbaru dulu
func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&users).Error
	return users, translate(err)
}

// FindAllByName dipakai form kirim saldo (urut nama)
func (r *UserRepository) FindAllByName(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Select("id", "nama", "email", "saldo").
		Order("nama").
		Find(&users).Error
	return users, translate(err)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error
	return total, translate(err)
}

// AddSaldo menambah saldo secara atomik di satu statement UPDATE,
// jadi tidak ada celah lost-update antara baca & tulis
func (r *UserRepository) AddSaldo(ctx context.Context, id string, amount float64) error {
	return addSaldo(r.db.WithContext(ctx), &models.User{}, id, amount)
}

func addSaldo(tx *gorm.DB, model interface{}, id string, amount float64) error {
	res := tx.Model(model).
		Where("id = ?", id).
		Update("saldo", gorm.Expr("saldo + ?", amount))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) FindAll(ctx context.Context) ([]models.AdminCredential, error) {
	var admins []models.AdminCredential
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&admins).Error
	return admins, translate(err)
}
