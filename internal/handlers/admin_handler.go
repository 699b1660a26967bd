package handlers

import (
	"net/http"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// === LAPORAN & STATISTIK ===

// GetStatistik menampilkan ringkasan performa bisnis.
// Default memakai snapshot terakhir, ?refresh=true untuk hitung ulang.
func (h *Handler) GetStatistik(c *gin.Context) {
	stats, err := h.Statistik.Get(c.Request.Context(), c.Query("refresh") == "true")
	if err != nil {
		respondError(c, "statistik.get", "Gagal memuat statistik", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Laporan Statistik", stats)
}

// === PENGATURAN APLIKASI ===

func (h *Handler) GetPengaturan(c *gin.Context) {
	settings, err := h.Pengaturan.Get(c.Request.Context())
	if err != nil {
		respondError(c, "pengaturan.get", "Gagal memuat pengaturan", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Pengaturan Aplikasi", settings)
}

// SavePengaturan menyimpan seluruh pengaturan sekaligus
func (h *Handler) SavePengaturan(c *gin.Context) {
	var input models.AppSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}

	settings, err := h.Pengaturan.Save(c.Request.Context(), input)
	if err != nil {
		respondError(c, "pengaturan.save", "Gagal menyimpan pengaturan", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Pengaturan Disimpan", settings)
}

// ResetPengaturan mengembalikan pengaturan ke nilai bawaan
func (h *Handler) ResetPengaturan(c *gin.Context) {
	settings, err := h.Pengaturan.Reset(c.Request.Context())
	if err != nil {
		respondError(c, "pengaturan.reset", "Gagal reset pengaturan", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Pengaturan Direset", settings)
}
