package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// bindTransactionFilter membaca filter dari query string. Jenis di luar
// topup|tagihan|all langsung dijawab 400.
func bindTransactionFilter(c *gin.Context) (models.TransactionFilter, bool) {
	var filter models.TransactionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badInput(c, err)
		return filter, false
	}
	return filter, true
}

// GetTransaksi riwayat gabungan top up & tagihan. Filter ?status=&type=topup|tagihan|all&q=
func (h *Handler) GetTransaksi(c *gin.Context) {
	filter, ok := bindTransactionFilter(c)
	if !ok {
		return
	}

	list, err := h.Transaksi.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "transaksi.list", "Gagal memuat riwayat transaksi", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Riwayat Transaksi", list)
}

// ExportTransaksi mengunduh riwayat transaksi sebagai file Excel
func (h *Handler) ExportTransaksi(c *gin.Context) {
	filter, ok := bindTransactionFilter(c)
	if !ok {
		return
	}

	// Tulis ke buffer dulu supaya kalau gagal masih bisa jawab JSON
	var buf bytes.Buffer
	if err := h.Transaksi.Export(c.Request.Context(), filter, &buf); err != nil {
		respondError(c, "transaksi.export", "Gagal export riwayat transaksi", err)
		return
	}

	filename := fmt.Sprintf("transaksi-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
