package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/logger"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// sessionKey adalah key gin.Context tempat sesi admin disimpan
const sessionKey = "session"

// SessionValidator memeriksa token sesi (diimplementasikan AuthService)
type SessionValidator interface {
	Validate(ctx context.Context, token string) (*models.Session, error)
}

func AuthMiddleware(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Ambil Header Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.AbortResponse(c, http.StatusUnauthorized, "Token tidak ditemukan")
			return
		}

		// 2. Format harus "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.AbortResponse(c, http.StatusUnauthorized, "Format token salah")
			return
		}

		// 3. Validasi Token (tanda tangan, kadaluarsa, sudah logout atau belum)
		session, err := sessions.Validate(c.Request.Context(), parts[1])
		if err != nil {
			if !errors.Is(err, utils.ErrInvalidToken) {
				logger.Op("auth.validate").WithError(err).Warn("Sesi ditolak")
			}
			utils.AbortResponse(c, http.StatusUnauthorized, "Sesi tidak valid, silakan login ulang")
			return
		}

		// 4. Simpan sesi di context request
		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionFrom mengambil sesi yang sudah dipasang AuthMiddleware
func SessionFrom(c *gin.Context) (*models.Session, bool) {
	val, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	session, ok := val.(*models.Session)
	return session, ok
}
