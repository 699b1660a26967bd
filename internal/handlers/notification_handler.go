package handlers

import (
	"net/http"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetNotificationTemplates(c *gin.Context) {
	list, err := h.Notifikasi.Templates(c.Request.Context())
	if err != nil {
		respondError(c, "notifikasi.templates", "Gagal memuat template", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Template Notifikasi", list)
}

func (h *Handler) CreateNotificationTemplate(c *gin.Context) {
	var input models.NotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}

	list, err := h.Notifikasi.SaveTemplate(c.Request.Context(), input)
	if err != nil {
		respondError(c, "notifikasi.save_template", "Gagal menyimpan template", err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Template Disimpan", list)
}

func (h *Handler) DeleteNotificationTemplate(c *gin.Context) {
	list, err := h.Notifikasi.DeleteTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "notifikasi.delete_template", "Gagal menghapus template", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Template Dihapus", list)
}

// GetNotificationRecipients jumlah penerima per audience
func (h *Handler) GetNotificationRecipients(c *gin.Context) {
	stats, err := h.Notifikasi.Recipients(c.Request.Context())
	if err != nil {
		respondError(c, "notifikasi.recipients", "Gagal memuat jumlah penerima", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Jumlah Penerima", stats)
}

// SendNotification broadcast pengumuman lewat FCM lalu menyimpannya sebagai template
func (h *Handler) SendNotification(c *gin.Context) {
	var input models.NotificationInput

	// 1. Judul & pesan wajib diisi
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}

	// 2. Kirim
	result, err := h.Notifikasi.Send(c.Request.Context(), input)
	if err != nil {
		respondError(c, "notifikasi.send", "Gagal mengirim notifikasi", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Notifikasi Terkirim", result)
}
