package service

import (
	"context"
	"fmt"
	"time"

	"partnerdesk/internal/model/entity"
	"partnerdesk/internal/repository"
)

// CreateOrderRequest places an order for a service on behalf of a partner.
type CreateOrderRequest struct {
	ServiceCode   string    `json:"service_code" binding:"required"`
	PartnerID     uint      `json:"partner_id" binding:"required"`
	Quantity      int       `json:"quantity"`
	ExecutionDate time.Time `json:"execution_date" binding:"required"`
}

// OrderService manages orders.
type OrderService struct {
	orderRepo   *repository.OrderRepository
	serviceRepo *repository.ServiceRepository
	partnerRepo *repository.PartnerRepository
}

func NewOrderService(
	orderRepo *repository.OrderRepository,
	serviceRepo *repository.ServiceRepository,
	partnerRepo *repository.PartnerRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		serviceRepo: serviceRepo,
		partnerRepo: partnerRepo,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*entity.Order, error) {
	if req.Quantity <= 0 {
		return nil, invalid("quantity", "must be greater than zero")
	}

	if _, err := s.serviceRepo.FindByCode(ctx, req.ServiceCode); err != nil {
		if err == repository.ErrNotFound {
			return nil, repository.ErrForeignKey
		}
		return nil, fmt.Errorf("resolve service: %w", err)
	}
	if _, err := s.partnerRepo.FindByID(ctx, req.PartnerID); err != nil {
		if err == repository.ErrNotFound {
			return nil, repository.ErrForeignKey
		}
		return nil, fmt.Errorf("resolve partner: %w", err)
	}

	o := &entity.Order{
		ServiceCode:   req.ServiceCode,
		PartnerID:     req.PartnerID,
		Quantity:      req.Quantity,
		ExecutionDate: req.ExecutionDate,
	}
	if err := s.orderRepo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.orderRepo.List(ctx)
}
