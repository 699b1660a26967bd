package services

import (
	"context"

	"smartcare-admin/internal/events"
	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/logger"
)

// SaldoService untuk kirim saldo manual ke user atau mitra
type SaldoService struct {
	users     UserRepository
	mitras    MitraRepository
	publisher events.Publisher
}

func NewSaldoService(users UserRepository, mitras MitraRepository, publisher events.Publisher) *SaldoService {
	return &SaldoService{users: users, mitras: mitras, publisher: publisher}
}

// SaldoTargets adalah isi pilihan form kirim saldo
type SaldoTargets struct {
	Users  []models.SaldoTarget `json:"users"`
	Mitras []models.SaldoTarget `json:"mitras"`
}

// Targets memuat user (urut nama) & mitra terverifikasi (urut nama toko)
func (s *SaldoService) Targets(ctx context.Context) (*SaldoTargets, error) {
	users, err := s.users.FindAllByName(ctx)
	if err != nil {
		return nil, err
	}
	mitras, err := s.mitras.FindVerifiedByName(ctx)
	if err != nil {
		return nil, err
	}

	targets := &SaldoTargets{
		Users:  make([]models.SaldoTarget, 0, len(users)),
		Mitras: make([]models.SaldoTarget, 0, len(mitras)),
	}
	for _, u := range users {
		targets.Users = append(targets.Users, models.SaldoTarget{ID: u.ID, Name: u.Nama, Email: u.Email, Saldo: u.Saldo})
	}
	for _, m := range mitras {
		targets.Mitras = append(targets.Mitras, models.SaldoTarget{ID: m.ID, Name: m.NamaToko, Email: m.Email, Saldo: m.Saldo})
	}
	return targets, nil
}

// Kirim menambah saldo target dengan increment di sisi database
func (s *SaldoService) Kirim(ctx context.Context, input models.KirimSaldoInput) (*SaldoTargets, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var err error
	switch input.TargetType {
	case models.TargetUser:
		err = s.users.AddSaldo(ctx, input.TargetID, input.Amount)
	case models.TargetMitra:
		err = s.mitras.AddSaldo(ctx, input.TargetID, input.Amount)
	default:
		return nil, ErrInvalidTarget
	}
	if err != nil {
		return nil, err
	}

	logger.Op("saldo.kirim").WithFields(map[string]interface{}{
		"target_type": input.TargetType,
		"target_id":   input.TargetID,
		"amount":      input.Amount,
	}).Info("Saldo manual terkirim")
	s.publisher.Publish(ctx, events.SaldoCredited, input.TargetID, input)
	return s.Targets(ctx)
}
