package services

import (
	"context"
	"errors"

	"smartcare-admin/internal/events"
	"smartcare-admin/internal/models"
	"smartcare-admin/internal/repository"
	"smartcare-admin/pkg/logger"
	"smartcare-admin/pkg/utils"
)

// TopUpService untuk layar konfirmasi top up
type TopUpService struct {
	repo      TopUpRepository
	gateway   PaymentGateway
	publisher events.Publisher
}

func NewTopUpService(repo TopUpRepository, gateway PaymentGateway, publisher events.Publisher) *TopUpService {
	return &TopUpService{repo: repo, gateway: gateway, publisher: publisher}
}

// List memuat top up dengan status tertentu (default pending) beserta nama & email user
func (s *TopUpService) List(ctx context.Context, status string) ([]models.TopUpView, error) {
	if status == "" {
		status = models.TopUpStatusPending
	}
	list, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}
	return models.NewTopUpViews(list), nil
}

// Approve menyetujui top up & menambah saldo user dalam satu transaksi.
// Top up yang sudah approved dianggap sukses tanpa kredit ulang.
func (s *TopUpService) Approve(ctx context.Context, id, listStatus string) ([]models.TopUpView, error) {
	topup, err := s.repo.Approve(ctx, id)
	switch {
	case errors.Is(err, repository.ErrAlreadyProcessed):
		logger.Op("topup.approve").WithField("topup_id", id).Info("Top up sudah disetujui sebelumnya, saldo tidak ditambah lagi")
	case err != nil:
		return nil, err
	default:
		logger.Op("topup.approve").WithFields(map[string]interface{}{
			"topup_id": id,
			"user_id":  topup.UserID,
			"nominal":  topup.Nominal,
		}).Info("Top up disetujui")
		s.publisher.Publish(ctx, events.TopUpApproved, topup.UserID, map[string]interface{}{
			"topup_id": topup.ID,
			"user_id":  topup.UserID,
			"nominal":  topup.Nominal,
		})
	}
	return s.List(ctx, listStatus)
}

func (s *TopUpService) Reject(ctx context.Context, id, listStatus string) ([]models.TopUpView, error) {
	if err := s.repo.Reject(ctx, id); err != nil {
		return nil, err
	}

	logger.Op("topup.reject").WithField("topup_id", id).Info("Top up ditolak")
	s.publisher.Publish(ctx, events.TopUpRejected, id, map[string]string{"topup_id": id})
	return s.List(ctx, listStatus)
}

// PaymentStatus cek status pembayaran top up ke payment gateway
func (s *TopUpService) PaymentStatus(ctx context.Context, id string) (*models.PaymentStatus, error) {
	topup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	code := utils.StringValue(topup.TransactionCode)
	if code == "" {
		return nil, ErrNoTransactionCode
	}

	resp, err := s.gateway.CheckStatus(code)
	if err != nil {
		return nil, err
	}

	return &models.PaymentStatus{
		TransactionCode: code,
		GatewayStatus:   resp.TransactionStatus,
		FraudStatus:     resp.FraudStatus,
		GrossAmount:     resp.GrossAmount,
		Status:          utils.MapPaymentStatus(resp.TransactionStatus, resp.FraudStatus),
	}, nil
}
