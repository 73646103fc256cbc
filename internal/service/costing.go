package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"partnerdesk/internal/model/entity"
	"partnerdesk/internal/repository"
)

var one = decimal.NewFromInt(1)

// CostBreakdown is the result of costing one service.
type CostBreakdown struct {
	ServiceCode  string          `json:"service_code"`
	ServiceName  string          `json:"service_name"`
	MaterialCost decimal.Decimal `json:"material_cost"`
	LaborCost    decimal.Decimal `json:"labor_cost"`
	TotalCost    decimal.Decimal `json:"total_cost"`
}

// PlanMaterialQuantityRequest asks how many units of a material type a batch
// of services of a given type will consume.
type PlanMaterialQuantityRequest struct {
	ServiceType   string          `json:"service_type" binding:"required"`
	MaterialType  string          `json:"material_type" binding:"required"`
	Quantity      int             `json:"quantity"`
	ServiceParams decimal.Decimal `json:"service_params"`
}

// CostingService derives costs and material demand from the catalog.
type CostingService struct {
	serviceRepo      *repository.ServiceRepository
	serviceTypeRepo  *repository.ServiceTypeRepository
	materialTypeRepo *repository.MaterialTypeRepository
}

func NewCostingService(
	serviceRepo *repository.ServiceRepository,
	serviceTypeRepo *repository.ServiceTypeRepository,
	materialTypeRepo *repository.MaterialTypeRepository,
) *CostingService {
	return &CostingService{
		serviceRepo:      serviceRepo,
		serviceTypeRepo:  serviceTypeRepo,
		materialTypeRepo: materialTypeRepo,
	}
}

// ServiceCost computes material cost plus labor cost, floored at the
// service's min_cost. The overconsumption fraction comes from each
// material's own type, not the service's.
func (s *CostingService) ServiceCost(ctx context.Context, code string) (*CostBreakdown, error) {
	svc, err := s.serviceRepo.FindWithMaterials(ctx, code)
	if err != nil {
		return nil, err
	}
	return costService(svc), nil
}

// costService prices a service whose material links carry their materials
// and material types.
func costService(svc *entity.Service) *CostBreakdown {
	materialCost := decimal.Zero
	for _, link := range svc.Materials {
		unit := link.ConsumptionNorm.Mul(link.Material.CurrentPrice)
		waste := one.Add(link.Material.Type.OverconsumptionPercent)
		materialCost = materialCost.Add(unit.Mul(waste))
	}
	materialCost = materialCost.Round(2)

	laborCost := svc.TimeNormHours.Mul(svc.HourlyRate).Round(2)

	total := materialCost.Add(laborCost)
	if total.LessThan(svc.MinCost) {
		total = svc.MinCost
	}

	return &CostBreakdown{
		ServiceCode:  svc.ServiceCode,
		ServiceName:  svc.ServiceName,
		MaterialCost: materialCost,
		LaborCost:    laborCost,
		TotalCost:    total.Round(2),
	}
}

// PlanMaterialQuantity estimates demand for a material type across a batch:
// ceil(service_params × complexity_coefficient × quantity × (1 + overconsumption)).
func (s *CostingService) PlanMaterialQuantity(ctx context.Context, req *PlanMaterialQuantityRequest) (int64, error) {
	if req.Quantity <= 0 {
		return 0, invalid("quantity", "must be greater than zero")
	}
	if !req.ServiceParams.IsPositive() {
		return 0, invalid("service_params", "must be greater than zero")
	}

	st, err := s.serviceTypeRepo.FindByName(ctx, req.ServiceType)
	if err != nil {
		return 0, fmt.Errorf("resolve service type: %w", err)
	}
	mt, err := s.materialTypeRepo.FindByName(ctx, req.MaterialType)
	if err != nil {
		return 0, fmt.Errorf("resolve material type: %w", err)
	}

	return plannedQuantity(req.ServiceParams, st.ComplexityCoefficient, int64(req.Quantity), mt.OverconsumptionPercent), nil
}

// plannedQuantity rounds up to whole units; partial units still have to be
// purchased.
func plannedQuantity(serviceParams, complexity decimal.Decimal, quantity int64, overconsumption decimal.Decimal) int64 {
	total := serviceParams.
		Mul(complexity).
		Mul(decimal.NewFromInt(quantity)).
		Mul(one.Add(overconsumption))
	return total.Ceil().IntPart()
}
