package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartcare-admin/internal/models"
	"smartcare-admin/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rating(v float64) *float64 { return &v }

func TestStatistikService_Aggregates(t *testing.T) {
	db := repotest.New()
	u1 := db.AddUser(models.User{Nama: "Lama", CreatedAt: ago(60 * 24 * time.Hour)})
	db.AddUser(models.User{Nama: "Baru", CreatedAt: ago(24 * time.Hour)})
	db.AddMitra(models.Mitra{NamaToko: "A"})

	db.AddTopUp(models.TopUp{UserID: u1.ID, Nominal: 1, Status: models.TopUpStatusApproved})
	db.AddTopUp(models.TopUp{UserID: u1.ID, Nominal: 1})
	db.AddTopUp(models.TopUp{UserID: u1.ID, Nominal: 1})

	db.AddTagihan(models.Tagihan{Nominal: 100000, Status: models.TagihanStatusCompleted, OrderDate: ago(40 * 24 * time.Hour), Rating: rating(4)})
	db.AddTagihan(models.Tagihan{Nominal: 50000, Status: models.TagihanStatusCompleted, OrderDate: ago(time.Hour), Rating: rating(5)})
	db.AddTagihan(models.Tagihan{Nominal: 70000, Status: models.TagihanStatusPending, Rating: rating(4)})

	s := NewStatistikService(db.Statistik)
	stats, err := s.Get(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalMitras)
	assert.Equal(t, int64(3), stats.TotalTransactions, "1 top up approved + 2 tagihan completed")
	assert.Equal(t, 150000.0, stats.TotalRevenue)
	assert.Equal(t, int64(2), stats.PendingTopups)
	assert.Equal(t, int64(2), stats.CompletedServices)
	assert.Equal(t, 4.3, stats.AverageRating)
	assert.Equal(t, int64(1), stats.MonthlyGrowth.Users)
	assert.Equal(t, 50000.0, stats.MonthlyGrowth.Revenue)
	assert.False(t, stats.GeneratedAt.IsZero())
}

func TestStatistikService_NoRatingsIsZero(t *testing.T) {
	db := repotest.New()
	s := NewStatistikService(db.Statistik)

	stats, err := s.Get(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, int64(0), stats.TotalTransactions)
}

func TestStatistikService_SnapshotAndRefresh(t *testing.T) {
	db := repotest.New()
	db.AddUser(models.User{Nama: "A"})
	s := NewStatistikService(db.Statistik)
	ctx := context.Background()

	first, err := s.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.TotalUsers)

	db.AddUser(models.User{Nama: "B"})

	cached, err := s.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cached.TotalUsers, "snapshot dipakai selama belum refresh")

	fresh, err := s.Get(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fresh.TotalUsers)
}

func TestStatistikService_ErrorKeepsOldSnapshot(t *testing.T) {
	db := repotest.New()
	db.AddUser(models.User{Nama: "A"})
	s := NewStatistikService(db.Statistik)
	ctx := context.Background()

	_, err := s.Refresh(ctx)
	require.NoError(t, err)

	db.FailReads = errors.New("database down")
	_, err = s.Refresh(ctx)
	require.Error(t, err)

	cached, err := s.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cached.TotalUsers)
}
