package handlers

import (
	"net/http"

	"smartcare-admin/internal/middleware"
	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboard menampilkan menu dashboard admin
func (h *Handler) GetDashboard(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)
	utils.APIResponse(c, http.StatusOK, true, "Dashboard Admin", gin.H{
		"menu":               models.DashboardMenu,
		"session_expires_at": session.ExpiresAt,
	})
}
