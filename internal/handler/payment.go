package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tridash/internal/domain"
	"tridash/internal/service"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentResponse is the HTTP response for payment data.
type PaymentResponse struct {
	ID                  string  `json:"id"`
	RideID              string  `json:"ride_id"`
	Amount              float64 `json:"amount"`
	Currency            string  `json:"currency"`
	Status              string  `json:"status"`
	PaymentType         string  `json:"payment_type"`
	Commission          float64 `json:"commission"`
	DriverPayout        float64 `json:"driver_payout"`
	CommissionRate      float64 `json:"commission_rate"`
	CommissionAppliedAt string  `json:"commission_applied_at,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

// ApplyCommissionRequest is the HTTP request body for applying a commission split.
type ApplyCommissionRequest struct {
	Rate     float64 `json:"rate"`
	Override bool    `json:"override"`
}

func toPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:             p.ID,
		RideID:         p.RideID,
		Amount:         p.Amount,
		Currency:       p.Currency,
		Status:         string(p.Status),
		PaymentType:    string(p.PaymentType),
		Commission:     p.Commission,
		DriverPayout:   p.EarningsAmount(),
		CommissionRate: p.CommissionRate,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
	if p.CommissionAppliedAt != nil {
		resp.CommissionAppliedAt = p.CommissionAppliedAt.Format(time.RFC3339)
	}
	return resp
}

// GetAll handles GET /v1/payments
func (h *PaymentHandler) GetAll(c *gin.Context) {
	payments, err := h.paymentService.ListPayments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, toPaymentResponse(p))
	}

	respondJSON(c, http.StatusOK, response)
}

// GetPayment handles GET /v1/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toPaymentResponse(payment))
}

// ApplyCommission handles POST /v1/payments/:id/commission
func (h *PaymentHandler) ApplyCommission(c *gin.Context) {
	var req ApplyCommissionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
	}

	split, err := h.paymentService.ApplyCommission(c.Request.Context(), service.ApplyCommissionRequest{
		PaymentID: c.Param("id"),
		Rate:      req.Rate,
		Override:  req.Override,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if split.AlreadyApplied {
		status = http.StatusOK
	}
	respondJSON(c, status, split)
}

// VerifyPayment handles POST /v1/payments/:id/verify
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	payment, err := h.paymentService.VerifyPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toPaymentResponse(payment))
}
