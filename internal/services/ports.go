package services

import (
	"context"
	"time"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"
)

// Interface repository yang dipakai service. Implementasi gorm ada di
// internal/repository, implementasi in-memory di internal/repository/repotest.

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindAllByName(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
	AddSaldo(ctx context.Context, id string, amount float64) error
}

type AdminRepository interface {
	FindAll(ctx context.Context) ([]models.AdminCredential, error)
}

type MitraRepository interface {
	FindAll(ctx context.Context, status string) ([]models.Mitra, error)
	FindVerifiedByName(ctx context.Context) ([]models.Mitra, error)
	FindByID(ctx context.Context, id string) (*models.Mitra, error)
	Count(ctx context.Context, status string) (int64, error)
	UpdateStatus(ctx context.Context, id, from, to string) error
	AddSaldo(ctx context.Context, id string, amount float64) error
	FindOfferings(ctx context.Context, mitraID string) ([]models.MitraLayanan, error)
	SetOfferingAvailability(ctx context.Context, mitraID, layananID string, available bool) error
}

type LayananRepository interface {
	FindAll(ctx context.Context) ([]models.Layanan, error)
	Create(ctx context.Context, layanan *models.Layanan) error
	Update(ctx context.Context, layanan *models.Layanan) error
	Delete(ctx context.Context, id string) error
}

type TagihanRepository interface {
	FindAll(ctx context.Context, status string) ([]models.Tagihan, error)
	FindByID(ctx context.Context, id string) (*models.Tagihan, error)
	UpdateStatus(ctx context.Context, id, from, to string, completionDate *time.Time) error
}

type TopUpRepository interface {
	FindAll(ctx context.Context, status string) ([]models.TopUp, error)
	FindByID(ctx context.Context, id string) (*models.TopUp, error)
	Approve(ctx context.Context, id string) (*models.TopUp, error)
	Reject(ctx context.Context, id string) error
}

type ChatRepository interface {
	FindRooms(ctx context.Context, senderType string) ([]models.ChatRoom, error)
	FindConversation(ctx context.Context, peerID, peerType string) ([]models.Chat, error)
	MarkRead(ctx context.Context, peerID, peerType string) error
	Create(ctx context.Context, chat *models.Chat) error
}

type StatistikRepository interface {
	Aggregate(ctx context.Context, since time.Time) (*models.Statistics, error)
}

// PaymentGateway cek status pembayaran top up (Midtrans)
type PaymentGateway interface {
	CheckStatus(transactionCode string) (*utils.GatewayStatus, error)
}

// Broadcaster mengirim push notification ke audience (FCM)
type Broadcaster interface {
	Broadcast(ctx context.Context, audience, title, body string, data map[string]string) error
}
