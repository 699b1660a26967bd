package handlers

import (
	"net/http"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// === VERIFIKASI MITRA ===

// GetPendingMitra melihat daftar mitra yang belum diverifikasi
func (h *Handler) GetPendingMitra(c *gin.Context) {
	list, err := h.Mitra.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, "mitra.list_pending", "Gagal memuat data mitra", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar Mitra Pending", list)
}

// VerifyMitra menyetujui mitra, response berisi daftar pending terbaru
func (h *Handler) VerifyMitra(c *gin.Context) {
	list, err := h.Mitra.Verify(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "mitra.verify", "Gagal memverifikasi mitra", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Mitra Berhasil Diverifikasi", list)
}

func (h *Handler) RejectMitra(c *gin.Context) {
	list, err := h.Mitra.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "mitra.reject", "Gagal menolak mitra", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Mitra Ditolak", list)
}

// === LAYANAN MILIK MITRA ===

func (h *Handler) GetMitraLayanan(c *gin.Context) {
	list, err := h.Mitra.Offerings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "mitra.offerings", "Gagal memuat layanan mitra", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Layanan Mitra", list)
}

// SetMitraLayananAvailability menyalakan / mematikan satu layanan mitra
func (h *Handler) SetMitraLayananAvailability(c *gin.Context) {
	var input models.SetAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}

	list, err := h.Mitra.SetOfferingAvailability(c.Request.Context(), c.Param("id"), c.Param("layananId"), *input.IsAvailable)
	if err != nil {
		respondError(c, "mitra.set_offering", "Gagal menyimpan layanan mitra", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Ketersediaan Layanan Diupdate", list)
}
