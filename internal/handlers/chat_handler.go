package handlers

import (
	"net/http"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetChatRooms menampilkan daftar room chat (user dulu, lalu mitra)
func (h *Handler) GetChatRooms(c *gin.Context) {
	rooms, err := h.Chat.Rooms(c.Request.Context())
	if err != nil {
		respondError(c, "chat.rooms", "Gagal memuat daftar chat", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar Chat", rooms)
}

// GetChatMessages menampilkan isi percakapan & menandai pesan sudah dibaca
func (h *Handler) GetChatMessages(c *gin.Context) {
	messages, err := h.Chat.Messages(c.Request.Context(), c.Param("type"), c.Param("id"))
	if err != nil {
		respondError(c, "chat.messages", "Gagal memuat pesan", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Isi Percakapan", messages)
}

func (h *Handler) SendChatMessage(c *gin.Context) {
	var input models.SendChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badInput(c, err)
		return
	}

	messages, err := h.Chat.Send(c.Request.Context(), c.Param("type"), c.Param("id"), input.Message)
	if err != nil {
		respondError(c, "chat.send", "Gagal mengirim pesan", err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Pesan Terkirim", messages)
}
