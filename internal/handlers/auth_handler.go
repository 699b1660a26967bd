package handlers

import (
	"errors"
	"net/http"

	"smartcare-admin/internal/middleware"
	"smartcare-admin/internal/models"
	"smartcare-admin/internal/services"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LOGIN dengan kode akses admin
func (h *Handler) Login(c *gin.Context) {
	var input models.LoginInput

	// 1. Validasi Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Kode akses wajib diisi", nil)
		return
	}

	// 2. Cocokkan kode akses & buat token sesi
	token, session, err := h.Auth.Login(c.Request.Context(), input.AccessCode)
	if errors.Is(err, services.ErrWrongAccessCode) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Kode akses salah", nil)
		return
	}
	if err != nil {
		respondError(c, "auth.login", "Gagal login", err)
		return
	}

	// 3. Sukses
	utils.APIResponse(c, http.StatusOK, true, "Login Berhasil", gin.H{
		"token":   token,
		"session": session,
	})
}

// LOGOUT mencabut sesi yang sedang dipakai
func (h *Handler) Logout(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)
	if err := h.Auth.Logout(c.Request.Context(), session); err != nil {
		respondError(c, "auth.logout", "Gagal logout", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Logout Berhasil", nil)
}

// GetSession menampilkan sesi yang sedang aktif
func (h *Handler) GetSession(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)
	utils.APIResponse(c, http.StatusOK, true, "Sesi Aktif", session)
}
