package repository

import (
	"context"
	"math"
	"time"

	"smartcare-admin/internal/models"

	"gorm.io/gorm"
)

// StatistikRepository menghitung agregat langsung di database (COUNT/SUM/AVG),
// bukan menarik seluruh tabel ke aplikasi
type StatistikRepository struct {
	db *gorm.DB
}

func NewStatistikRepository(db *gorm.DB) *StatistikRepository {
	return &StatistikRepository{db: db}
}

func (r *StatistikRepository) Aggregate(ctx context.Context, since time.Time) (*models.Statistics, error) {
	db := r.db.WithContext(ctx)
	stats := &models.Statistics{}

	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, translate(err)
	}
	if err := db.Model(&models.Mitra{}).Count(&stats.TotalMitras).Error; err != nil {
		return nil, translate(err)
	}

	// Top up per status
	var topups struct {
		Approved int64
		Pending  int64
	}
	err := db.Model(&models.TopUp{}).
		Select("COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS approved, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending",
			models.TopUpStatusApproved, models.TopUpStatusPending).
		Scan(&topups).Error
	if err != nil {
		return nil, translate(err)
	}

	// Tagihan completed: jumlah & total pendapatan. Pakai COALESCE biar null jadi 0
	var completed struct {
		Total   int64
		Revenue float64
	}
	err = db.Model(&models.Tagihan{}).
		Where("status = ?", models.TagihanStatusCompleted).
		Select("COUNT(*) AS total, COALESCE(SUM(nominal), 0) AS revenue").
		Scan(&completed).Error
	if err != nil {
		return nil, translate(err)
	}

	var rating struct{ Avg float64 }
	err = db.Model(&models.Tagihan{}).
		Where("rating IS NOT NULL").
		Select("COALESCE(AVG(rating), 0) AS avg").
		Scan(&rating).Error
	if err != nil {
		return nil, translate(err)
	}

	// Pertumbuhan 30 hari terakhir
	if err := db.Model(&models.User{}).Where("created_at >= ?", since).Count(&stats.MonthlyGrowth.Users).Error; err != nil {
		return nil, translate(err)
	}
	var recent struct{ Revenue float64 }
	err = db.Model(&models.Tagihan{}).
		Where("status = ? AND order_date >= ?", models.TagihanStatusCompleted, since).
		Select("COALESCE(SUM(nominal), 0) AS revenue").
		Scan(&recent).Error
	if err != nil {
		return nil, translate(err)
	}

	stats.PendingTopups = topups.Pending
	stats.CompletedServices = completed.Total
	stats.TotalTransactions = topups.Approved + completed.Total
	stats.TotalRevenue = completed.Revenue
	stats.AverageRating = RoundRating(rating.Avg)
	stats.MonthlyGrowth.Revenue = recent.Revenue
	return stats, nil
}

// RoundRating membulatkan rata-rata rating ke satu angka di belakang koma
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
