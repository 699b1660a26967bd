package services

import (
	"context"
	"fmt"
	"io"
	"sort"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"

	"github.com/xuri/excelize/v2"
)

// TransaksiService menggabungkan top up & tagihan jadi satu riwayat transaksi
type TransaksiService struct {
	topups   TopUpRepository
	tagihans TagihanRepository
}

func NewTransaksiService(topups TopUpRepository, tagihans TagihanRepository) *TransaksiService {
	return &TransaksiService{topups: topups, tagihans: tagihans}
}

// List memuat riwayat terbaru dulu. Type "topup"/"tagihan" membatasi sumber,
// selain itu keduanya digabung. Search mencocokkan nama user, email, atau id.
func (s *TransaksiService) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	var result []models.Transaction

	if filter.Type != models.TransactionTagihan {
		topups, err := s.topups.FindAll(ctx, filter.Status)
		if err != nil {
			return nil, err
		}
		for _, t := range topups {
			result = append(result, models.TransactionFromTopUp(t))
		}
	}

	if filter.Type != models.TransactionTopUp {
		tagihans, err := s.tagihans.FindAll(ctx, filter.Status)
		if err != nil {
			return nil, err
		}
		for _, t := range tagihans {
			result = append(result, models.TransactionFromTagihan(t))
		}
	}

	filtered := make([]models.Transaction, 0, len(result))
	for _, trx := range result {
		if utils.MatchAny(filter.Search, trx.UserName, trx.UserEmail, trx.ID) {
			filtered = append(filtered, trx)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

var exportHeaders = []string{"ID", "Jenis", "Tanggal", "Nama User", "Email", "Mitra", "Layanan", "Metode Pembayaran", "Nominal", "Status", "Kode Transaksi"}

// Export menulis riwayat transaksi (dengan filter yang sama) sebagai file xlsx
func (s *TransaksiService) Export(ctx context.Context, filter models.TransactionFilter, w io.Writer) error {
	list, err := s.List(ctx, filter)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transaksi"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("siapkan sheet export: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return fmt.Errorf("tulis header export: %w", err)
	}

	for r, trx := range list {
		row := []interface{}{
			trx.ID,
			trx.Type,
			trx.CreatedAt.Format("2006-01-02 15:04:05"),
			trx.UserName,
			trx.UserEmail,
			trx.MitraName,
			trx.LayananName,
			trx.PaymentMethod,
			trx.Nominal,
			trx.Status,
			trx.TransactionCode,
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("posisi baris export: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("tulis baris export: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("tulis file export: %w", err)
	}
	return nil
}
