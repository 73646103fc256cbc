package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"partnerdesk/internal/repository"
	"partnerdesk/internal/service"
)

// Handlers bundles the HTTP handlers.
type Handlers struct {
	Catalog  *CatalogHandler
	Material *MaterialHandler
	Partner  *PartnerHandler
	Order    *OrderHandler
	Costing  *CostingHandler
}

func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Catalog:  NewCatalogHandler(svc.Catalog),
		Material: NewMaterialHandler(svc.Material),
		Partner:  NewPartnerHandler(svc.Partner),
		Order:    NewOrderHandler(svc.Order),
		Costing:  NewCostingHandler(svc.Costing),
	}
}

// Response is the shared envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{Code: 0, Message: "success", Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{Code: 0, Message: "success", Data: data})
}

func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{Code: code, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// RespondError maps domain errors onto the envelope: validation failures are
// 400, absent targets 404, constraint conflicts 409.
func RespondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		BadRequest(c, verr.Error())
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, "not found")
	case errors.Is(err, repository.ErrForeignKey):
		Error(c, 40901, "referenced record does not exist")
	case errors.Is(err, repository.ErrDuplicateKey):
		Error(c, 40902, "duplicate key")
	default:
		InternalError(c, err.Error())
	}
}

// RegisterRoutes wires the REST surface under /api/v1.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/service-types", h.Catalog.CreateServiceType)
		api.GET("/service-types", h.Catalog.ListServiceTypes)
		api.DELETE("/service-types/:name", h.Catalog.DeleteServiceType)

		api.POST("/services", h.Catalog.CreateService)
		api.GET("/services", h.Catalog.ListServices)
		api.GET("/services/:code", h.Catalog.GetService)
		api.DELETE("/services/:code", h.Catalog.DeleteService)
		api.POST("/services/:code/materials", h.Catalog.LinkMaterial)
		api.DELETE("/services/:code/materials/:id", h.Catalog.UnlinkMaterial)
		api.GET("/services/:code/cost", h.Costing.ServiceCost)

		api.POST("/material-types", h.Material.CreateMaterialType)
		api.GET("/material-types", h.Material.ListMaterialTypes)
		api.DELETE("/material-types/:name", h.Material.DeleteMaterialType)

		api.POST("/materials", h.Material.CreateMaterial)
		api.GET("/materials", h.Material.ListMaterials)
		api.GET("/materials/:id", h.Material.GetMaterial)
		api.DELETE("/materials/:id", h.Material.DeleteMaterial)

		api.POST("/partners", h.Partner.Create)
		api.GET("/partners", h.Partner.List)
		api.GET("/partners/:id", h.Partner.Get)
		api.PUT("/partners/:id", h.Partner.Update)
		api.DELETE("/partners/:id", h.Partner.Delete)
		api.GET("/partners/:id/orders", h.Partner.OrderHistory)

		api.POST("/orders", h.Order.Create)
		api.GET("/orders", h.Order.List)
		api.GET("/orders/:id", h.Order.Get)

		api.POST("/planning/material-quantity", h.Costing.PlanMaterialQuantity)
	}
}
