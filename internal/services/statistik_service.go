package services

import (
	"context"
	"sync"
	"time"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/logger"
)

// growthWindow adalah jendela "pertumbuhan bulanan"
const growthWindow = 30 * 24 * time.Hour

// StatistikService menyimpan snapshot statistik terakhir.
// Snapshot diperbarui oleh cron job atau saat diminta refresh.
type StatistikService struct {
	repo StatistikRepository
	now  func() time.Time

	mu       sync.RWMutex
	snapshot *models.Statistics
}

func NewStatistikService(repo StatistikRepository) *StatistikService {
	return &StatistikService{repo: repo, now: time.Now}
}

// Get mengembalikan snapshot; kalau belum ada atau refresh=true dihitung ulang
func (s *StatistikService) Get(ctx context.Context, refresh bool) (*models.Statistics, error) {
	if !refresh {
		s.mu.RLock()
		snap := s.snapshot
		s.mu.RUnlock()
		if snap != nil {
			cp := *snap
			return &cp, nil
		}
	}
	return s.Refresh(ctx)
}

// Refresh menghitung ulang statistik dengan query agregat lalu menyimpan snapshot
func (s *StatistikService) Refresh(ctx context.Context) (*models.Statistics, error) {
	now := s.now()
	stats, err := s.repo.Aggregate(ctx, now.Add(-growthWindow))
	if err != nil {
		return nil, err
	}
	stats.GeneratedAt = now

	s.mu.Lock()
	s.snapshot = stats
	s.mu.Unlock()

	logger.Op("statistik.refresh").WithField("total_transactions", stats.TotalTransactions).Debug("Snapshot statistik diperbarui")
	cp := *stats
	return &cp, nil
}
