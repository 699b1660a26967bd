package handlers

import (
	"errors"
	"net/http"

	"smartcare-admin/internal/repository"
	"smartcare-admin/internal/services"
	"smartcare-admin/pkg/logger"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Handler mengumpulkan semua service yang dipakai route dashboard
type Handler struct {
	Auth       *services.AuthService
	Mitra      *services.MitraService
	TopUp      *services.TopUpService
	Saldo      *services.SaldoService
	Chat       *services.ChatService
	Tagihan    *services.TagihanService
	Layanan    *services.LayananService
	Transaksi  *services.TransaksiService
	Pengguna   *services.PenggunaService
	Statistik  *services.StatistikService
	Notifikasi *services.NotifikasiService
	Pengaturan *services.PengaturanService
}

// respondError memetakan error service ke status HTTP.
// Error yang tidak dikenal di-log dengan nama operasi lalu dijawab 500 dengan pesan layar.
func respondError(c *gin.Context, op, message string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.APIResponse(c, http.StatusNotFound, false, "Data tidak ditemukan", nil)
	case errors.Is(err, repository.ErrInvalidTransition), errors.Is(err, services.ErrInvalidStatus):
		utils.APIResponse(c, http.StatusConflict, false, "Status sudah berubah atau aksi tidak diizinkan", nil)
	case errors.Is(err, repository.ErrConflict):
		utils.APIResponse(c, http.StatusConflict, false, "Data masih digunakan data lain", nil)
	case errors.Is(err, services.ErrEmptyMessage),
		errors.Is(err, services.ErrInvalidTarget),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidSettings):
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, services.ErrNoTransactionCode):
		utils.APIResponse(c, http.StatusUnprocessableEntity, false, err.Error(), nil)
	case errors.Is(err, utils.ErrGatewayDisabled):
		utils.APIResponse(c, http.StatusServiceUnavailable, false, err.Error(), nil)
	default:
		logger.Op(op).WithError(err).Error(message)
		utils.APIResponse(c, http.StatusInternalServerError, false, message, nil)
	}
}

func badInput(c *gin.Context, err error) {
	utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
}
