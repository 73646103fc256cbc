package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"partnerdesk/internal/service"
)

// OrderHandler serves orders.
type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	o, err := h.svc.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, o)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "order id must be an integer")
		return
	}

	o, err := h.svc.GetOrder(c.Request.Context(), uint(id))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, o)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, orders)
}
