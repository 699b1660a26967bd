package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPaymentStatus(t *testing.T) {
	tests := []struct {
		trx, fraud, want string
	}{
		{"capture", "accept", "paid"},
		{"capture", "challenge", "pending"},
		{"settlement", "", "paid"},
		{"pending", "", "pending"},
		{"deny", "", "failed"},
		{"cancel", "", "failed"},
		{"expire", "", "failed"},
		{"failure", "", "failed"},
		{"", "", "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.trx+"/"+tt.fraud, func(t *testing.T) {
			assert.Equal(t, tt.want, MapPaymentStatus(tt.trx, tt.fraud))
		})
	}
}

func TestMidtransGateway_Disabled(t *testing.T) {
	g := NewMidtransGateway("", "sandbox")
	_, err := g.CheckStatus("TRX-1")
	assert.ErrorIs(t, err, ErrGatewayDisabled)
}
