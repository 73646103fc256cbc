package service

import (
	"partnerdesk/internal/repository"
)

// Services bundles the domain services.
type Services struct {
	Catalog  *CatalogService
	Material *MaterialService
	Partner  *PartnerService
	Order    *OrderService
	Costing  *CostingService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Catalog:  NewCatalogService(repos.ServiceType, repos.Service, repos.Material),
		Material: NewMaterialService(repos.MaterialType, repos.Material),
		Partner:  NewPartnerService(repos.Partner, repos.Order),
		Order:    NewOrderService(repos.Order, repos.Service, repos.Partner),
		Costing:  NewCostingService(repos.Service, repos.ServiceType, repos.MaterialType),
	}
}
