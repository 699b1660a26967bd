package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartcare-admin/internal/models"
	"smartcare-admin/internal/store"
	"smartcare-admin/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService menangani gerbang sesi admin berbasis kode akses
type AuthService struct {
	codeHash string
	secret   string
	ttl      time.Duration
	store    store.Store
}

// NewAuthService meng-hash kode akses sekali di awal supaya kode asli tidak disimpan di memori service
func NewAuthService(accessCode, secret string, ttl time.Duration, st store.Store) (*AuthService, error) {
	hash, err := utils.HashAccessCode(accessCode)
	if err != nil {
		return nil, fmt.Errorf("hash kode akses: %w", err)
	}
	return &AuthService{codeHash: hash, secret: secret, ttl: ttl, store: st}, nil
}

// Login mengembalikan token sesi kalau kode akses cocok
func (s *AuthService) Login(ctx context.Context, accessCode string) (string, *models.Session, error) {
	if !utils.CheckAccessCode(accessCode, s.codeHash) {
		return "", nil, ErrWrongAccessCode
	}

	token, claims, err := utils.GenerateToken(s.secret, s.ttl)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, sessionFromClaims(claims), nil
}

// Validate memeriksa token & memastikan sesinya belum di-logout
func (s *AuthService) Validate(ctx context.Context, token string) (*models.Session, error) {
	claims, err := utils.ValidateToken(s.secret, token)
	if err != nil {
		return nil, err
	}

	_, err = s.store.Get(ctx, store.RevokedKey(claims.ID))
	switch {
	case err == nil:
		return nil, ErrSessionRevoked
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("cek sesi: %w", err)
	}

	return sessionFromClaims(claims), nil
}

// Logout menandai sesi sebagai dicabut sampai token-nya kadaluarsa
func (s *AuthService) Logout(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.store.Set(ctx, store.RevokedKey(session.ID), []byte("1"), ttl)
}

func sessionFromClaims(claims *jwt.RegisteredClaims) *models.Session {
	session := &models.Session{ID: claims.ID, Subject: claims.Subject}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session
}
