package services

import "errors"

var (
	ErrWrongAccessCode   = errors.New("kode akses salah")
	ErrSessionRevoked    = errors.New("sesi sudah berakhir")
	ErrEmptyMessage      = errors.New("pesan tidak boleh kosong")
	ErrInvalidStatus     = errors.New("perubahan status tidak diizinkan")
	ErrInvalidTarget     = errors.New("target tidak dikenal")
	ErrInvalidAmount     = errors.New("jumlah harus lebih dari 0")
	ErrNoTransactionCode = errors.New("top up tidak memiliki kode transaksi")
	ErrInvalidSettings   = errors.New("pengaturan tidak valid")
)
