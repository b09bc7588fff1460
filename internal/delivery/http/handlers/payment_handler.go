package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sellora/order-service/internal/delivery/http/dto"
	"github.com/sellora/order-service/internal/domain"
	paymentdto "github.com/sellora/order-service/internal/usecase/dto/payment"
	paymentusecase "github.com/sellora/order-service/internal/usecase/payment"
)

type PaymentHandler struct {
	uc paymentusecase.PaymentUsecase
}

func NewPaymentHandler(uc paymentusecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := actorFromHeaders(c)
	payment, err := h.uc.CreatePayment(c.Request.Context(), &paymentdto.CreatePaymentInput{
		CustomerID: actor.ID,
		OrderID:    req.OrderID,
		Method:     domain.PaymentMethod(req.Method),
		Amount:     req.Amount,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromDomainPayment(payment))
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.uc.ListPayments(
		c.Request.Context(),
		actorFromHeaders(c),
		c.Query("orderId"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDomainPayments(payments))
}

func (h *PaymentHandler) Get(c *gin.Context) {
	payment, err := h.uc.GetPayment(c.Request.Context(), c.Param("id"), actorFromHeaders(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDomainPayment(payment))
}

// Verify force-settles a payment. Admin only.
func (h *PaymentHandler) Verify(c *gin.Context) {
	if actorFromHeaders(c).Role != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}

	payment, err := h.uc.VerifyPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDomainPayment(payment))
}
