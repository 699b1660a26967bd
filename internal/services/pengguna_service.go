package services

import (
	"context"

	"smartcare-admin/internal/models"
	"smartcare-admin/pkg/utils"
)

// PenggunaService untuk layar kelola pengguna (user, mitra, admin)
type PenggunaService struct {
	users  UserRepository
	mitras MitraRepository
	admins AdminRepository
	mitra  *MitraService
}

func NewPenggunaService(users UserRepository, mitras MitraRepository, admins AdminRepository, mitraService *MitraService) *PenggunaService {
	return &PenggunaService{users: users, mitras: mitras, admins: admins, mitra: mitraService}
}

// Users mencari user berdasarkan nama atau email; query kosong = semua
func (s *PenggunaService) Users(ctx context.Context, query string) ([]models.User, error) {
	list, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(list))
	for _, u := range list {
		if utils.MatchAny(query, u.Nama, u.Email) {
			out = append(out, u)
		}
	}
	return out, nil
}

// Mitras memfilter status di database lalu mencari nama toko / email di sini
func (s *PenggunaService) Mitras(ctx context.Context, status, query string) ([]models.MitraView, error) {
	list, err := s.mitras.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]models.Mitra, 0, len(list))
	for _, m := range list {
		if utils.MatchAny(query, m.NamaToko, m.Email) {
			out = append(out, m)
		}
	}
	return models.NewMitraViews(out), nil
}

// Admins hanya dicocokkan dengan email
func (s *PenggunaService) Admins(ctx context.Context, query string) ([]models.AdminCredential, error) {
	list, err := s.admins.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.AdminCredential, 0, len(list))
	for _, a := range list {
		if utils.MatchAny(query, a.Email) {
			out = append(out, a)
		}
	}
	return out, nil
}

// UpdateMitraStatus mengubah status mitra lalu memuat ulang daftar dengan filter yang sama
func (s *PenggunaService) UpdateMitraStatus(ctx context.Context, id, to, listStatus, query string) ([]models.MitraView, error) {
	if err := s.mitra.ChangeStatus(ctx, id, to); err != nil {
		return nil, err
	}
	return s.Mitras(ctx, listStatus, query)
}
