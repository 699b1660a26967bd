package handlers

import (
	"net/http"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetTagihan melihat semua tagihan. Filter status opsional ?status=pending
func (h *Handler) GetTagihan(c *gin.Context) {
	list, err := h.Tagihan.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, "tagihan.list", "Gagal memuat data tagihan", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar Tagihan", list)
}

// UpdateTagihanStatus memindahkan status tagihan sesuai alur yang diizinkan
func (h *Handler) UpdateTagihanStatus(c *gin.Context) {
	var input models.UpdateTagihanStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}

	list, err := h.Tagihan.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status, c.Query("status"))
	if err != nil {
		respondError(c, "tagihan.update_status", "Gagal mengubah status tagihan", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Status Tagihan Diupdate", list)
}
