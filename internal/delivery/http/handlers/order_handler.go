package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sellora/order-service/internal/delivery/http/dto"
	"github.com/sellora/order-service/internal/domain"
	orderusecase "github.com/sellora/order-service/internal/usecase/order"
	orderdto "github.com/sellora/order-service/internal/usecase/dto/order"
)

type OrderHandler struct {
	uc orderusecase.OrderUsecase
}

func NewOrderHandler(uc orderusecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := actorFromHeaders(c)
	input := &orderdto.CreateOrderInput{
		CustomerID:        actor.ID,
		StoreID:           req.StoreID,
		ShippingAddressID: req.ShippingAddressID,
		Notes:             req.Notes,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, orderdto.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.uc.CreateOrder(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromDomainOrder(order))
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.uc.ListOrders(c.Request.Context(), actorFromHeaders(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": dto.FromDomainOrders(orders),
		"total": len(orders),
	})
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.uc.GetOrder(c.Request.Context(), c.Param("id"), actorFromHeaders(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDomainOrder(order))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.uc.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		actorFromHeaders(c),
		domain.OrderStatus(req.Status),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDomainOrder(order))
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	actor := actorFromHeaders(c)
	order, err := h.uc.CancelOrder(c.Request.Context(), c.Param("id"), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDomainOrder(order))
}
