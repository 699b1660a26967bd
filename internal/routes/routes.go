package routes

import (
	"smartcare-admin/internal/config"
	"smartcare-admin/internal/handlers"
	"smartcare-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, h *handlers.Handler) {

	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	// Grouping API dengan Versi (v1)
	api := r.Group("/api/v1")
	{
		// Login dengan kode akses (satu-satunya route publik)
		api.POST("/auth/login", h.Login)

		// PROTECTED ROUTES (Harus punya token sesi admin)
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(h.Auth))
		{
			protected.POST("/auth/logout", h.Logout)
			protected.GET("/auth/session", h.GetSession)
			protected.GET("/dashboard", h.GetDashboard)

			// VERIFIKASI MITRA & LAYANAN MITRA
			mitra := protected.Group("/mitra")
			{
				mitra.GET("/pending", h.GetPendingMitra)
				mitra.POST("/:id/verify", h.VerifyMitra)
				mitra.POST("/:id/reject", h.RejectMitra)
				mitra.GET("/:id/layanan", h.GetMitraLayanan)
				mitra.PATCH("/:id/layanan/:layananId", h.SetMitraLayananAvailability)
			}

			// KONFIRMASI TOP UP
			topup := protected.Group("/topup")
			{
				topup.GET("", h.GetTopUps)
				topup.POST("/:id/approve", h.ApproveTopUp)
				topup.POST("/:id/reject", h.RejectTopUp)
				topup.GET("/:id/payment-status", h.GetTopUpPaymentStatus)
			}

			// KIRIM SALDO MANUAL
			protected.GET("/saldo/targets", h.GetSaldoTargets)
			protected.POST("/saldo/kirim", h.KirimSaldo)

			// LIVE CHAT
			chat := protected.Group("/chat")
			{
				chat.GET("/rooms", h.GetChatRooms)
				chat.GET("/rooms/:type/:id/messages", h.GetChatMessages)
				chat.POST("/rooms/:type/:id/messages", h.SendChatMessage)
			}

			// KELOLA TAGIHAN
			protected.GET("/tagihan", h.GetTagihan)
			protected.PATCH("/tagihan/:id/status", h.UpdateTagihanStatus)

			// KELOLA LAYANAN
			layanan := protected.Group("/layanan")
			{
				layanan.GET("", h.GetLayanan)
				layanan.POST("", h.CreateLayanan)
				layanan.PUT("/:id", h.UpdateLayanan)
				layanan.DELETE("/:id", h.DeleteLayanan)
			}

			// RIWAYAT TRANSAKSI
			protected.GET("/transaksi", h.GetTransaksi)
			protected.GET("/transaksi/export", h.ExportTransaksi)

			// KELOLA PENGGUNA
			pengguna := protected.Group("/pengguna")
			{
				pengguna.GET("/users", h.GetUsers)
				pengguna.GET("/mitra", h.GetMitras)
				pengguna.GET("/admins", h.GetAdmins)
				pengguna.PATCH("/mitra/:id/status", h.UpdateMitraStatus)
			}

			// LAPORAN & STATISTIK
			protected.GET("/statistik", h.GetStatistik)

			// KELOLA NOTIFIKASI
			notifikasi := protected.Group("/notifikasi")
			{
				notifikasi.GET("/templates", h.GetNotificationTemplates)
				notifikasi.POST("/templates", h.CreateNotificationTemplate)
				notifikasi.DELETE("/templates/:id", h.DeleteNotificationTemplate)
				notifikasi.GET("/recipients", h.GetNotificationRecipients)
				notifikasi.POST("/send", h.SendNotification)
			}

			// PENGATURAN APLIKASI
			protected.GET("/pengaturan", h.GetPengaturan)
			protected.PUT("/pengaturan", h.SavePengaturan)
			protected.DELETE("/pengaturan", h.ResetPengaturan)
		}
	}
}
