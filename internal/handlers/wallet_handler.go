package handlers

import (
	"net/http"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// === KONFIRMASI TOP UP ===

// GetTopUps melihat permintaan top up. Filter ?status= (default pending)
func (h *Handler) GetTopUps(c *gin.Context) {
	list, err := h.TopUp.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, "topup.list", "Gagal memuat data top up", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar Top Up", list)
}

// ApproveTopUp menyetujui top up & menambah saldo user sekaligus
func (h *Handler) ApproveTopUp(c *gin.Context) {
	list, err := h.TopUp.Approve(c.Request.Context(), c.Param("id"), c.Query("status"))
	if err != nil {
		respondError(c, "topup.approve", "Gagal menyetujui top up", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Top Up Disetujui", list)
}

func (h *Handler) RejectTopUp(c *gin.Context) {
	list, err := h.TopUp.Reject(c.Request.Context(), c.Param("id"), c.Query("status"))
	if err != nil {
		respondError(c, "topup.reject", "Gagal menolak top up", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Top Up Ditolak", list)
}

// === KIRIM SALDO MANUAL ===

// GetSaldoTargets menampilkan pilihan user & mitra untuk form kirim saldo
func (h *Handler) GetSaldoTargets(c *gin.Context) {
	targets, err := h.Saldo.Targets(c.Request.Context())
	if err != nil {
		respondError(c, "saldo.targets", "Gagal memuat data pengguna", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar Tujuan Saldo", targets)
}

func (h *Handler) KirimSaldo(c *gin.Context) {
	var input models.KirimSaldoInput

	// 1. Validasi Input (amount harus > 0)
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}

	// 2. Tambah saldo di database
	targets, err := h.Saldo.Kirim(c.Request.Context(), input)
	if err != nil {
		respondError(c, "saldo.kirim", "Gagal mengirim saldo", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Saldo Berhasil Dikirim", targets)
}
