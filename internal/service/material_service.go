package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"partnerdesk/internal/model/entity"
	"partnerdesk/internal/repository"
)

// CreateMaterialTypeRequest creates a material category.
type CreateMaterialTypeRequest struct {
	TypeName               string          `json:"type_name" binding:"required"`
	OverconsumptionPercent decimal.Decimal `json:"overconsumption_percent"`
}

// CreateMaterialRequest creates a material catalog item.
type CreateMaterialRequest struct {
	TypeName     string          `json:"type_name" binding:"required"`
	MaterialName string          `json:"material_name" binding:"required"`
	CurrentPrice decimal.Decimal `json:"current_price"`
}

// MaterialService manages material types and materials.
type MaterialService struct {
	typeRepo     *repository.MaterialTypeRepository
	materialRepo *repository.MaterialRepository
}

func NewMaterialService(
	typeRepo *repository.MaterialTypeRepository,
	materialRepo *repository.MaterialRepository,
) *MaterialService {
	return &MaterialService{typeRepo: typeRepo, materialRepo: materialRepo}
}

func (s *MaterialService) CreateMaterialType(ctx context.Context, req *CreateMaterialTypeRequest) (*entity.MaterialType, error) {
	// Stored as a fraction: 0.10 means ten percent expected waste.
	if req.OverconsumptionPercent.IsNegative() || req.OverconsumptionPercent.GreaterThan(one) {
		return nil, invalid("overconsumption_percent", "must be within [0, 1]")
	}

	mt := &entity.MaterialType{
		TypeName:               req.TypeName,
		OverconsumptionPercent: req.OverconsumptionPercent,
	}
	if err := s.typeRepo.Create(ctx, mt); err != nil {
		return nil, fmt.Errorf("create material type: %w", err)
	}
	return mt, nil
}

func (s *MaterialService) ListMaterialTypes(ctx context.Context) ([]entity.MaterialType, error) {
	return s.typeRepo.List(ctx)
}

// DeleteMaterialType cascades to the type's materials and their service links.
func (s *MaterialService) DeleteMaterialType(ctx context.Context, name string) error {
	return s.typeRepo.Delete(ctx, name)
}

func (s *MaterialService) CreateMaterial(ctx context.Context, req *CreateMaterialRequest) (*entity.Material, error) {
	if req.CurrentPrice.IsNegative() {
		return nil, invalid("current_price", "must not be negative")
	}

	if _, err := s.typeRepo.FindByName(ctx, req.TypeName); err != nil {
		if err == repository.ErrNotFound {
			return nil, repository.ErrForeignKey
		}
		return nil, fmt.Errorf("resolve material type: %w", err)
	}

	m := &entity.Material{
		TypeName:     req.TypeName,
		MaterialName: req.MaterialName,
		CurrentPrice: req.CurrentPrice,
	}
	if err := s.materialRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create material: %w", err)
	}
	return m, nil
}

func (s *MaterialService) GetMaterial(ctx context.Context, id uint) (*entity.Material, error) {
	return s.materialRepo.FindByID(ctx, id)
}

func (s *MaterialService) ListMaterials(ctx context.Context) ([]entity.Material, error) {
	return s.materialRepo.List(ctx)
}

// DeleteMaterial cascades to the material's service links.
func (s *MaterialService) DeleteMaterial(ctx context.Context, id uint) error {
	return s.materialRepo.Delete(ctx, id)
}
