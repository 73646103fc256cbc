package repository

import (
	"context"

	"gorm.io/gorm"

	"partnerdesk/internal/model/entity"
)

// PartnerRepository persists partners.
type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) Create(ctx context.Context, p *entity.Partner) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

// Update rewrites all mutable partner columns. The unique indexes on
// partner_name and inn still apply; the row itself never conflicts with
// its own values.
func (r *PartnerRepository) Update(ctx context.Context, p *entity.Partner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Partner{}).
			Where("partner_id = ?", p.PartnerID).
			Updates(map[string]interface{}{
				"partner_type": p.PartnerType,
				"partner_name": p.PartnerName,
				"manager":      p.Manager,
				"email":        p.Email,
				"phone":        p.Phone,
				"address":      p.Address,
				"inn":          p.INN,
				"rating":       p.Rating,
			})
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *PartnerRepository) FindByID(ctx context.Context, id uint) (*entity.Partner, error) {
	var p entity.Partner
	err := r.db.WithContext(ctx).Where("partner_id = ?", id).First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PartnerRepository) List(ctx context.Context) ([]entity.Partner, error) {
	var partners []entity.Partner
	err := r.db.WithContext(ctx).Order("partner_id").Find(&partners).Error
	return partners, translate(err)
}

func (r *PartnerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("partner_id = ?", id).Delete(&entity.Partner{})
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
