package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"partnerdesk/internal/service"
)

// MaterialHandler serves material types and materials.
type MaterialHandler struct {
	svc *service.MaterialService
}

func NewMaterialHandler(svc *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{svc: svc}
}

func (h *MaterialHandler) CreateMaterialType(c *gin.Context) {
	var req service.CreateMaterialTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	mt, err := h.svc.CreateMaterialType(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, mt)
}

func (h *MaterialHandler) ListMaterialTypes(c *gin.Context) {
	types, err := h.svc.ListMaterialTypes(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, types)
}

func (h *MaterialHandler) DeleteMaterialType(c *gin.Context) {
	if err := h.svc.DeleteMaterialType(c.Request.Context(), c.Param("name")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}

func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var req service.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	m, err := h.svc.CreateMaterial(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, m)
}

func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "material id must be an integer")
		return
	}

	m, err := h.svc.GetMaterial(c.Request.Context(), uint(id))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, m)
}

func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	materials, err := h.svc.ListMaterials(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, materials)
}

func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "material id must be an integer")
		return
	}

	if err := h.svc.DeleteMaterial(c.Request.Context(), uint(id)); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}
