package handlers

import (
	"net/http"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetLayanan(c *gin.Context) {
	list, err := h.Layanan.List(c.Request.Context())
	if err != nil {
		respondError(c, "layanan.list", "Gagal memuat data layanan", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar Layanan", list)
}

func (h *Handler) CreateLayanan(c *gin.Context) {
	var input models.LayananInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}

	list, err := h.Layanan.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, "layanan.create", "Gagal menyimpan layanan", err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Layanan Ditambahkan", list)
}

func (h *Handler) UpdateLayanan(c *gin.Context) {
	var input models.LayananInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}

	list, err := h.Layanan.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, "layanan.update", "Gagal menyimpan layanan", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Layanan Diupdate", list)
}

// DeleteLayanan gagal 409 kalau layanan masih dipakai tagihan
func (h *Handler) DeleteLayanan(c *gin.Context) {
	list, err := h.Layanan.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "layanan.delete", "Gagal menghapus layanan", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Layanan Dihapus", list)
}
