package utils

import (
	"errors"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

var ErrGatewayDisabled = errors.New("payment gateway belum dikonfigurasi")

// GatewayStatus adalah status transaksi mentah dari Midtrans
type GatewayStatus struct {
	TransactionStatus string
	FraudStatus       string
	GrossAmount       string
}

// MidtransGateway membungkus Core API untuk cek status transaksi top up
type MidtransGateway struct {
	client  coreapi.Client
	enabled bool
}

func NewMidtransGateway(serverKey, env string) *MidtransGateway {
	g := &MidtransGateway{}
	if serverKey == "" {
		return g
	}

	environment := midtrans.Sandbox
	if env == "production" {
		environment = midtrans.Production
	}
	g.client.New(serverKey, environment)
	g.enabled = true
	return g
}

// CheckStatus menanyakan status transaksi berdasarkan kode transaksi (order id Midtrans)
func (g *MidtransGateway) CheckStatus(transactionCode string) (*GatewayStatus, error) {
	if g == nil || !g.enabled {
		return nil, ErrGatewayDisabled
	}

	resp, mErr := g.client.CheckTransaction(transactionCode)
	if mErr != nil {
		return nil, fmt.Errorf("midtrans check transaction: %s", mErr.GetMessage())
	}

	return &GatewayStatus{
		TransactionStatus: resp.TransactionStatus,
		FraudStatus:       resp.FraudStatus,
		GrossAmount:       resp.GrossAmount,
	}, nil
}

// MapPaymentStatus menerjemahkan status Midtrans ke paid / pending / failed
func MapPaymentStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return "paid" // Sukses CC
		}
		return "pending" // Masih diverifikasi bank
	case "settlement":
		return "paid"
	case "deny", "cancel", "expire", "failure":
		return "failed"
	default:
		return "pending"
	}
}
