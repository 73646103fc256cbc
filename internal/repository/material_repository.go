package repository

import (
	"context"

	"gorm.io/gorm"

	"partnerdesk/internal/model/entity"
)

// MaterialTypeRepository persists material type categories.
type MaterialTypeRepository struct {
	db *gorm.DB
}

func NewMaterialTypeRepository(db *gorm.DB) *MaterialTypeRepository {
	return &MaterialTypeRepository{db: db}
}

func (r *MaterialTypeRepository) Create(ctx context.Context, mt *entity.MaterialType) error {
	return translate(r.db.WithContext(ctx).Create(mt).Error)
}

func (r *MaterialTypeRepository) FindByName(ctx context.Context, name string) (*entity.MaterialType, error) {
	var mt entity.MaterialType
	err := r.db.WithContext(ctx).Where("type_name = ?", name).First(&mt).Error
	if err != nil {
		return nil, translate(err)
	}
	return &mt, nil
}

func (r *MaterialTypeRepository) List(ctx context.Context) ([]entity.MaterialType, error) {
	var types []entity.MaterialType
	err := r.db.WithContext(ctx).Order("type_name").Find(&types).Error
	return types, translate(err)
}

func (r *MaterialTypeRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("type_name = ?", name).Delete(&entity.MaterialType{})
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// MaterialRepository persists materials.
type MaterialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

func (r *MaterialRepository) Create(ctx context.Context, m *entity.Material) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *MaterialRepository) FindByID(ctx context.Context, id uint) (*entity.Material, error) {
	var m entity.Material
	err := r.db.WithContext(ctx).Where("material_id = ?", id).First(&m).Error
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *MaterialRepository) List(ctx context.Context) ([]entity.Material, error) {
	var materials []entity.Material
	err := r.db.WithContext(ctx).Order("material_id").Find(&materials).Error
	return materials, translate(err)
}

func (r *MaterialRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("material_id = ?", id).Delete(&entity.Material{})
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
