package repository

import (
	"context"

	"gorm.io/gorm"

	"partnerdesk/internal/model/entity"
)

// ServiceTypeRepository persists service type categories.
type ServiceTypeRepository struct {
	db *gorm.DB
}

func NewServiceTypeRepository(db *gorm.DB) *ServiceTypeRepository {
	return &ServiceTypeRepository{db: db}
}

func (r *ServiceTypeRepository) Create(ctx context.Context, st *entity.ServiceType) error {
	return translate(r.db.WithContext(ctx).Create(st).Error)
}

func (r *ServiceTypeRepository) FindByName(ctx context.Context, name string) (*entity.ServiceType, error) {
	var st entity.ServiceType
	err := r.db.WithContext(ctx).Where("type_name = ?", name).First(&st).Error
	if err != nil {
		return nil, translate(err)
	}
	return &st, nil
}

func (r *ServiceTypeRepository) List(ctx context.Context) ([]entity.ServiceType, error) {
	var types []entity.ServiceType
	err := r.db.WithContext(ctx).Order("type_name").Find(&types).Error
	return types, translate(err)
}

// Delete removes a service type. Dependent services, their orders and
// service_materials rows go with it through the database cascade, all
// inside one transaction.
func (r *ServiceTypeRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("type_name = ?", name).Delete(&entity.ServiceType{})
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ServiceRepository persists services and their material links.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *entity.Service) error {
	return translate(r.db.WithContext(ctx).Create(svc).Error)
}

func (r *ServiceRepository) FindByCode(ctx context.Context, code string) (*entity.Service, error) {
	var svc entity.Service
	err := r.db.WithContext(ctx).Where("service_code = ?", code).First(&svc).Error
	if err != nil {
		return nil, translate(err)
	}
	return &svc, nil
}

// FindWithMaterials loads a service together with its material links, each
// link carrying the material and the material's type (for the
// overconsumption fraction).
func (r *ServiceRepository) FindWithMaterials(ctx context.Context, code string) (*entity.Service, error) {
	var svc entity.Service
	err := r.db.WithContext(ctx).
		Preload("Materials.Material.Type").
		Where("service_code = ?", code).
		First(&svc).Error
	if err != nil {
		return nil, translate(err)
	}
	return &svc, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]entity.Service, error) {
	var services []entity.Service
	err := r.db.WithContext(ctx).Order("service_code").Find(&services).Error
	return services, translate(err)
}

func (r *ServiceRepository) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("service_code = ?", code).Delete(&entity.Service{})
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// LinkMaterial records that a service consumes a material. The composite
// primary key rejects a second link for the same pair; the foreign keys
// reject absent parents.
func (r *ServiceRepository) LinkMaterial(ctx context.Context, link *entity.ServiceMaterial) error {
	return translate(r.db.WithContext(ctx).Create(link).Error)
}

func (r *ServiceRepository) UnlinkMaterial(ctx context.Context, serviceCode string, materialID uint) error {
	res := r.db.WithContext(ctx).
		Where("service_code = ? AND material_id = ?", serviceCode, materialID).
		Delete(&entity.ServiceMaterial{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
