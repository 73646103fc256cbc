package service

import (
	"context"
	"fmt"
	"regexp"

	"partnerdesk/internal/model/entity"
	"partnerdesk/internal/repository"
)

// PartnerRequest carries the full partner record; used for create and update.
type PartnerRequest struct {
	PartnerType string `json:"partner_type" binding:"required"`
	PartnerName string `json:"partner_name" binding:"required"`
	Manager     string `json:"manager" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address" binding:"required"`
	INN         string `json:"inn" binding:"required"`
	Rating      int    `json:"rating"`
}

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	innPattern   = regexp.MustCompile(`^\d{10,12}$`)
)

// PartnerService manages the partner registry.
type PartnerService struct {
	partnerRepo *repository.PartnerRepository
	orderRepo   *repository.OrderRepository
}

func NewPartnerService(partnerRepo *repository.PartnerRepository, orderRepo *repository.OrderRepository) *PartnerService {
	return &PartnerService{partnerRepo: partnerRepo, orderRepo: orderRepo}
}

func validatePartner(req *PartnerRequest) error {
	if req.Rating < 0 {
		return invalid("rating", "must not be negative")
	}
	if !emailPattern.MatchString(req.Email) {
		return invalid("email", "malformed address")
	}
	if !innPattern.MatchString(req.INN) {
		return invalid("inn", "must be 10 to 12 digits")
	}
	return nil
}

func (s *PartnerService) CreatePartner(ctx context.Context, req *PartnerRequest) (*entity.Partner, error) {
	if err := validatePartner(req); err != nil {
		return nil, err
	}

	p := &entity.Partner{
		PartnerType: req.PartnerType,
		PartnerName: req.PartnerName,
		Manager:     req.Manager,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		INN:         req.INN,
		Rating:      req.Rating,
	}
	if err := s.partnerRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create partner: %w", err)
	}
	return p, nil
}

func (s *PartnerService) UpdatePartner(ctx context.Context, id uint, req *PartnerRequest) (*entity.Partner, error) {
	if err := validatePartner(req); err != nil {
		return nil, err
	}

	p := &entity.Partner{
		PartnerID:   id,
		PartnerType: req.PartnerType,
		PartnerName: req.PartnerName,
		Manager:     req.Manager,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		INN:         req.INN,
		Rating:      req.Rating,
	}
	if err := s.partnerRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update partner: %w", err)
	}
	return p, nil
}

func (s *PartnerService) GetPartner(ctx context.Context, id uint) (*entity.Partner, error) {
	return s.partnerRepo.FindByID(ctx, id)
}

func (s *PartnerService) ListPartners(ctx context.Context) ([]entity.Partner, error) {
	return s.partnerRepo.List(ctx)
}

// DeletePartner cascades to the partner's orders.
func (s *PartnerService) DeletePartner(ctx context.Context, id uint) error {
	return s.partnerRepo.Delete(ctx, id)
}

// OrderHistory returns a partner's orders newest-first.
func (s *PartnerService) OrderHistory(ctx context.Context, partnerID uint) ([]entity.Order, error) {
	if _, err := s.partnerRepo.FindByID(ctx, partnerID); err != nil {
		return nil, err
	}
	return s.orderRepo.ListByPartner(ctx, partnerID)
}
