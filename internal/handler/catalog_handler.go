package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"partnerdesk/internal/service"
)

// CatalogHandler serves service types, services and material links.
type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) CreateServiceType(c *gin.Context) {
	var req service.CreateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	st, err := h.svc.CreateServiceType(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, st)
}

func (h *CatalogHandler) ListServiceTypes(c *gin.Context) {
	types, err := h.svc.ListServiceTypes(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, types)
}

func (h *CatalogHandler) DeleteServiceType(c *gin.Context) {
	if err := h.svc.DeleteServiceType(c.Request.Context(), c.Param("name")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req service.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	svc, err := h.svc.CreateService(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, svc)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.svc.GetService(c.Request.Context(), c.Param("code"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, svc)
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.svc.ListServices(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, services)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.svc.DeleteService(c.Request.Context(), c.Param("code")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}

func (h *CatalogHandler) LinkMaterial(c *gin.Context) {
	var req service.LinkMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	link, err := h.svc.LinkServiceMaterial(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, link)
}

func (h *CatalogHandler) UnlinkMaterial(c *gin.Context) {
	materialID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "material id must be an integer")
		return
	}

	if err := h.svc.UnlinkServiceMaterial(c.Request.Context(), c.Param("code"), uint(materialID)); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, nil)
}
