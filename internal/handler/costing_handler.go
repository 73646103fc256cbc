package handler

import (
	"github.com/gin-gonic/gin"

	"partnerdesk/internal/service"
)

// CostingHandler serves derived computations.
type CostingHandler struct {
	svc *service.CostingService
}

func NewCostingHandler(svc *service.CostingService) *CostingHandler {
	return &CostingHandler{svc: svc}
}

func (h *CostingHandler) ServiceCost(c *gin.Context) {
	cost, err := h.svc.ServiceCost(c.Request.Context(), c.Param("code"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, cost)
}

func (h *CostingHandler) PlanMaterialQuantity(c *gin.Context) {
	var req service.PlanMaterialQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	units, err := h.svc.PlanMaterialQuantity(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"units": units})
}
