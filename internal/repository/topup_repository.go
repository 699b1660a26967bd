package repository

import (
	"context"

	"smartcare-admin/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TopUpRepository struct {
	db *gorm.DB
}

func NewTopUpRepository(db *gorm.DB) *TopUpRepository {
	return &TopUpRepository{db: db}
}

func (r *TopUpRepository) FindAll(ctx context.Context, status string) ([]models.TopUp, error) {
	var list []models.TopUp
	query := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select("id", "nama", "email") }).
		Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&list).Error
	return list, translate(err)
}

func (r *TopUpRepository) FindByID(ctx context.Context, id string) (*models.TopUp, error) {
	var topup models.TopUp
	if err := r.db.WithContext(ctx).First(&topup, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &topup, nil
}

// Approve menyetujui top up & menambah saldo user dalam SATU transaksi database.
// Kalau salah satu langkah gagal, keduanya di-rollback.
// Top up yang sudah approved mengembalikan ErrAlreadyProcessed tanpa menambah saldo lagi.
func (r *TopUpRepository) Approve(ctx context.Context, id string) (*models.TopUp, error) {
	var topup models.TopUp

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Kunci baris top up biar approve ganda dari sesi lain antri
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&topup, "id = ?", id).Error; err != nil {
			return err
		}

		// 2. Cek status
		switch topup.Status {
		case models.TopUpStatusApproved:
			return ErrAlreadyProcessed
		case models.TopUpStatusPending:
		default:
			return ErrInvalidTransition
		}

		// 3. Update status
		if err := tx.Model(&topup).Update("status", models.TopUpStatusApproved).Error; err != nil {
			return err
		}

		// 4. Tambah saldo user
		return addSaldo(tx, &models.User{}, topup.UserID, topup.Nominal)
	})
	if err != nil {
		return &topup, translate(err)
	}
	return &topup, nil
}

// Reject hanya berlaku untuk top up pending
func (r *TopUpRepository) Reject(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&models.TopUp{}).
		Where("id = ? AND status = ?", id, models.TopUpStatusPending).
		Update("status", models.TopUpStatusRejected)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return ErrInvalidTransition
	}
	return nil
}
