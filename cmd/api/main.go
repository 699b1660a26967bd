package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartcare-admin/internal/config"
	"smartcare-admin/internal/events"
	"smartcare-admin/internal/handlers"
	"smartcare-admin/internal/jobs"
	"smartcare-admin/internal/repository"
	"smartcare-admin/internal/routes"
	"smartcare-admin/internal/services"
	"smartcare-admin/pkg/logger"
	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Env & Config
	cfg := config.LoadConfig()
	logger.Init(cfg.AppName, cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Log.WithError(err).Fatal("Konfigurasi tidak aman")
	}

	// 2. Connect DB
	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Database tidak bisa dipakai")
	}

	// 3. Store lokal (Redis / memory), event publisher, FCM, Midtrans
	st, closeStore := config.NewStore(cfg)
	defer closeStore()

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopicPrefix)
		if err != nil {
			logger.Log.WithError(err).Warn("Kafka tidak bisa dihubungi, event tidak dikirim")
		} else {
			defer kafka.Close()
			publisher = kafka
		}
	}

	fcm, err := utils.InitFCM(context.Background(), cfg.FirebaseCredentials)
	if err != nil {
		logger.Log.WithError(err).Fatal("Gagal inisialisasi Firebase")
	}
	gateway := utils.NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransEnv)

	// 4. Repository & Service
	userRepo := repository.NewUserRepository(db)
	mitraRepo := repository.NewMitraRepository(db)
	topupRepo := repository.NewTopUpRepository(db)
	tagihanRepo := repository.NewTagihanRepository(db)

	authService, err := services.NewAuthService(cfg.AdminAccessCode, cfg.JWTSecret, cfg.SessionTTL, st)
	if err != nil {
		logger.Log.WithError(err).Fatal("Gagal menyiapkan sesi admin")
	}
	mitraService := services.NewMitraService(mitraRepo, publisher)
	statistikService := services.NewStatistikService(repository.NewStatistikRepository(db))

	h := &handlers.Handler{
		Auth:       authService,
		Mitra:      mitraService,
		TopUp:      services.NewTopUpService(topupRepo, gateway, publisher),
		Saldo:      services.NewSaldoService(userRepo, mitraRepo, publisher),
		Chat:       services.NewChatService(repository.NewChatRepository(db)),
		Tagihan:    services.NewTagihanService(tagihanRepo, publisher),
		Layanan:    services.NewLayananService(repository.NewLayananRepository(db), publisher),
		Transaksi:  services.NewTransaksiService(topupRepo, tagihanRepo),
		Pengguna:   services.NewPenggunaService(userRepo, mitraRepo, repository.NewAdminRepository(db), mitraService),
		Statistik:  statistikService,
		Notifikasi: services.NewNotifikasiService(userRepo, mitraRepo, st, fcm, publisher),
		Pengaturan: services.NewPengaturanService(st),
	}

	// 5. Cron refresh snapshot statistik
	scheduler := jobs.NewScheduler()
	err = scheduler.Register("statistik_refresh", cfg.StatsCron, time.Minute, jobs.RefresherFunc(func(ctx context.Context) error {
		_, err := statistikService.Refresh(ctx)
		return err
	}))
	if err != nil {
		logger.Log.WithError(err).Fatal("STATS_CRON tidak valid")
	}
	scheduler.Start()
	defer scheduler.Stop()

	// 6. Init Router & Routes
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r, cfg, h)

	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, http.StatusOK, true, "Server OK!", nil)
	})

	// 7. Run Server dengan graceful shutdown
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server berjalan di port " + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("Server berhenti")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Mematikan server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Shutdown tidak bersih")
	}
}
