package handlers

import (
	"net/http"

	"smartcare-admin/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetTopUpPaymentStatus cek status pembayaran top up ke Midtrans sebelum admin approve
func (h *Handler) GetTopUpPaymentStatus(c *gin.Context) {
	status, err := h.TopUp.PaymentStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "topup.payment_status", "Gagal cek status pembayaran", err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Status Pembayaran", status)
}
