package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("data tidak ditemukan")
	ErrConflict          = errors.New("data bentrok dengan data lain")
	ErrInvalidTransition = errors.New("perubahan status tidak valid")
	ErrAlreadyProcessed  = errors.New("data sudah diproses sebelumnya")
)

// Kode error Postgres yang relevan
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate menyeragamkan error gorm/pgx ke error repository
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrConflict
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation:
			return ErrConflict
		}
	}
	return err
}
