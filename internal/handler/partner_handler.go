package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"partnerdesk/internal/service"
)

// PartnerHandler serves the partner registry.
type PartnerHandler struct {
	svc *service.PartnerService
}

func NewPartnerHandler(svc *service.PartnerService) *PartnerHandler {
	return &PartnerHandler{svc: svc}
}

func partnerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "partner id must be an integer")
		return 0, false
	}
	return uint(id), true
}

func (h *PartnerHandler) Create(c *gin.Context) {
	var req service.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	p, err := h.svc.CreatePartner(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, p)
}

func (h *PartnerHandler) Update(c *gin.Context) {
	id, ok := partnerID(c)
	if !ok {
		return
	}

	var req service.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	p, err := h.svc.UpdatePartner(c.Request.Context(), id, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, p)
}

func (h *PartnerHandler) Get(c *gin.Context) {
	id, ok := partnerID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetPartner(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, p)
}

func (h *PartnerHandler) List(c *gin.Context) {
	partners, err := h.svc.ListPartners(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, partners)
}

func (h *PartnerHandler) Delete(c *gin.Context) {
	id, ok := partnerID(c)
	if !ok {
		return
	}

	if err := h.svc.DeletePartner(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}

func (h *PartnerHandler) OrderHistory(c *gin.Context) {
	id, ok := partnerID(c)
	if !ok {
		return
	}

	orders, err := h.svc.OrderHistory(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, orders)
}
