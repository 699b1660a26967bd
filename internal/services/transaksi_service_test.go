package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"smartcare-admin/internal/models"
	"smartcare-admin/internal/repository/repotest"
	"smartcare-admin/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func seedTransaksi(t *testing.T) (*repotest.DB, *TransaksiService) {
	t.Helper()
	db := repotest.New()
	budi := db.AddUser(models.User{Nama: "Budi", Email: "budi@mail.com"})
	siti := db.AddUser(models.User{Nama: "Siti", Email: "siti@care.id"})

	db.AddTopUp(models.TopUp{ID: "topup-1", UserID: budi.ID, Nominal: 50000, PaymentMethod: "bca", CreatedAt: ago(3 * time.Hour), TransactionCode: utils.StringPtr("TRX-1")})
	db.AddTopUp(models.TopUp{ID: "topup-2", UserID: siti.ID, Nominal: 10000, PaymentMethod: "gopay", Status: models.TopUpStatusApproved, CreatedAt: ago(time.Hour)})
	db.AddTagihan(models.Tagihan{ID: "tagihan-1", UserID: siti.ID, Nominal: 75000, OrderDate: ago(2 * time.Hour)})
	db.AddTagihan(models.Tagihan{ID: "tagihan-2", UserID: budi.ID, Nominal: 90000, OrderDate: ago(30 * time.Minute), Status: models.TagihanStatusCompleted})

	return db, NewTransaksiService(db.TopUps, db.Tagihans)
}

func ids(list []models.Transaction) []string {
	out := make([]string, 0, len(list))
	for _, trx := range list {
		out = append(out, trx.ID)
	}
	return out
}

func TestTransaksiService_MergedNewestFirst(t *testing.T) {
	_, s := seedTransaksi(t)

	list, err := s.List(context.Background(), models.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"tagihan-2", "topup-2", "tagihan-1", "topup-1"}, ids(list))
	assert.Equal(t, "Unknown", list[0].PaymentMethod)
	assert.Equal(t, "TRX-1", list[3].TransactionCode)
}

func TestTransaksiService_Filters(t *testing.T) {
	_, s := seedTransaksi(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter models.TransactionFilter
		want   []string
	}{
		{"type topup", models.TransactionFilter{Type: models.TransactionTopUp}, []string{"topup-2", "topup-1"}},
		{"type tagihan", models.TransactionFilter{Type: models.TransactionTagihan}, []string{"tagihan-2", "tagihan-1"}},
		{"type all", models.TransactionFilter{Type: "all"}, []string{"tagihan-2", "topup-2", "tagihan-1", "topup-1"}},
		{"status pending", models.TransactionFilter{Status: "pending"}, []string{"tagihan-1", "topup-1"}},
		{"search name", models.TransactionFilter{Search: "SITI"}, []string{"topup-2", "tagihan-1"}},
		{"search email", models.TransactionFilter{Search: "mail.com"}, []string{"tagihan-2", "topup-1"}},
		{"search id", models.TransactionFilter{Search: "tagihan-1"}, []string{"tagihan-1"}},
		{"no match", models.TransactionFilter{Search: "joko"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := s.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(list))
		})
	}
}

func TestTransaksiService_Export(t *testing.T) {
	_, s := seedTransaksi(t)

	var buf bytes.Buffer
	require.NoError(t, s.Export(context.Background(), models.TransactionFilter{Type: models.TransactionTopUp}, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transaksi")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "topup-2", rows[1][0])
	assert.Equal(t, "Siti", rows[1][3])
	assert.Equal(t, "TRX-1", rows[2][10])
}

func TestTransaksiService_ExportHeaderOnlyWhenEmpty(t *testing.T) {
	_, s := seedTransaksi(t)

	var buf bytes.Buffer
	require.NoError(t, s.Export(context.Background(), models.TransactionFilter{Search: "tidak-ada"}, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transaksi")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, exportHeaders, rows[0])
}
