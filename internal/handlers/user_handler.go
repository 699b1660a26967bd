package handlers

import (
	"net/http"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// === KELOLA PENGGUNA ===
// Pencarian ?q= tidak peka huruf besar/kecil, kosong berarti semua.

func (h *Handler) GetUsers(c *gin.Context) {
	list, err := h.Pengguna.Users(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, "pengguna.users", "Gagal memuat data pengguna", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Data Pengguna", list)
}

// GetMitras filter ?status= dilakukan di database, ?q= di service
func (h *Handler) GetMitras(c *gin.Context) {
	list, err := h.Pengguna.Mitras(c.Request.Context(), c.Query("status"), c.Query("q"))
	if err != nil {
		respondError(c, "pengguna.mitras", "Gagal memuat data mitra", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Data Mitra", list)
}

func (h *Handler) GetAdmins(c *gin.Context) {
	list, err := h.Pengguna.Admins(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, "pengguna.admins", "Gagal memuat data admin", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Data Admin", list)
}

// UpdateMitraStatus suspend / aktifkan ulang mitra dari layar kelola pengguna
func (h *Handler) UpdateMitraStatus(c *gin.Context) {
	var input models.UpdateMitraStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}

	list, err := h.Pengguna.UpdateMitraStatus(c.Request.Context(), c.Param("id"), input.Status, c.Query("status"), c.Query("q"))
	if err != nil {
		respondError(c, "pengguna.update_mitra_status", "Gagal mengubah status mitra", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Status Mitra Diupdate", list)
}
