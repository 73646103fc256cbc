package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"partnerdesk/internal/model/entity"
	"partnerdesk/internal/repository"
)

// CreateServiceTypeRequest creates a service category.
type CreateServiceTypeRequest struct {
	TypeName              string          `json:"type_name" binding:"required"`
	ComplexityCoefficient decimal.Decimal `json:"complexity_coefficient"`
}

// CreateServiceRequest creates a catalog service.
type CreateServiceRequest struct {
	ServiceCode   string          `json:"service_code" binding:"required"`
	TypeName      string          `json:"type_name" binding:"required"`
	ServiceName   string          `json:"service_name" binding:"required"`
	MinCost       decimal.Decimal `json:"min_cost"`
	TimeNormHours decimal.Decimal `json:"time_norm_hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
}

// LinkMaterialRequest attaches a material to a service.
type LinkMaterialRequest struct {
	MaterialID      uint            `json:"material_id" binding:"required"`
	ConsumptionNorm decimal.Decimal `json:"consumption_norm"`
}

// CatalogService manages service types, services and their material links.
type CatalogService struct {
	typeRepo     *repository.ServiceTypeRepository
	serviceRepo  *repository.ServiceRepository
	materialRepo *repository.MaterialRepository
}

func NewCatalogService(
	typeRepo *repository.ServiceTypeRepository,
	serviceRepo *repository.ServiceRepository,
	materialRepo *repository.MaterialRepository,
) *CatalogService {
	return &CatalogService{
		typeRepo:     typeRepo,
		serviceRepo:  serviceRepo,
		materialRepo: materialRepo,
	}
}

func (s *CatalogService) CreateServiceType(ctx context.Context, req *CreateServiceTypeRequest) (*entity.ServiceType, error) {
	if !req.ComplexityCoefficient.IsPositive() {
		return nil, invalid("complexity_coefficient", "must be greater than zero")
	}

	st := &entity.ServiceType{
		TypeName:              req.TypeName,
		ComplexityCoefficient: req.ComplexityCoefficient,
	}
	if err := s.typeRepo.Create(ctx, st); err != nil {
		return nil, fmt.Errorf("create service type: %w", err)
	}
	return st, nil
}

func (s *CatalogService) ListServiceTypes(ctx context.Context) ([]entity.ServiceType, error) {
	return s.typeRepo.List(ctx)
}

// DeleteServiceType cascades to the type's services and, transitively, to
// their orders and material links.
func (s *CatalogService) DeleteServiceType(ctx context.Context, name string) error {
	return s.typeRepo.Delete(ctx, name)
}

func (s *CatalogService) CreateService(ctx context.Context, req *CreateServiceRequest) (*entity.Service, error) {
	switch {
	case req.MinCost.IsNegative():
		return nil, invalid("min_cost", "must not be negative")
	case req.TimeNormHours.IsNegative():
		return nil, invalid("time_norm_hours", "must not be negative")
	case req.HourlyRate.IsNegative():
		return nil, invalid("hourly_rate", "must not be negative")
	}

	// Resolve the type up front so an absent category surfaces as a
	// foreign-key failure even on drivers that defer constraint checks.
	if _, err := s.typeRepo.FindByName(ctx, req.TypeName); err != nil {
		if err == repository.ErrNotFound {
			return nil, repository.ErrForeignKey
		}
		return nil, fmt.Errorf("resolve service type: %w", err)
	}

	svc := &entity.Service{
		ServiceCode:   req.ServiceCode,
		TypeName:      req.TypeName,
		ServiceName:   req.ServiceName,
		MinCost:       req.MinCost,
		TimeNormHours: req.TimeNormHours,
		HourlyRate:    req.HourlyRate,
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (s *CatalogService) GetService(ctx context.Context, code string) (*entity.Service, error) {
	return s.serviceRepo.FindByCode(ctx, code)
}

func (s *CatalogService) ListServices(ctx context.Context) ([]entity.Service, error) {
	return s.serviceRepo.List(ctx)
}

// DeleteService cascades to the service's orders and material links.
func (s *CatalogService) DeleteService(ctx context.Context, code string) error {
	return s.serviceRepo.Delete(ctx, code)
}

func (s *CatalogService) LinkServiceMaterial(ctx context.Context, serviceCode string, req *LinkMaterialRequest) (*entity.ServiceMaterial, error) {
	if req.ConsumptionNorm.IsNegative() {
		return nil, invalid("consumption_norm", "must not be negative")
	}

	if _, err := s.serviceRepo.FindByCode(ctx, serviceCode); err != nil {
		if err == repository.ErrNotFound {
			return nil, repository.ErrForeignKey
		}
		return nil, fmt.Errorf("resolve service: %w", err)
	}
	if _, err := s.materialRepo.FindByID(ctx, req.MaterialID); err != nil {
		if err == repository.ErrNotFound {
			return nil, repository.ErrForeignKey
		}
		return nil, fmt.Errorf("resolve material: %w", err)
	}

	link := &entity.ServiceMaterial{
		ServiceCode:     serviceCode,
		MaterialID:      req.MaterialID,
		ConsumptionNorm: req.ConsumptionNorm,
	}
	if err := s.serviceRepo.LinkMaterial(ctx, link); err != nil {
		return nil, fmt.Errorf("link service material: %w", err)
	}
	return link, nil
}

func (s *CatalogService) UnlinkServiceMaterial(ctx context.Context, serviceCode string, materialID uint) error {
	return s.serviceRepo.UnlinkMaterial(ctx, serviceCode, materialID)
}
