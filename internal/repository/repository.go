package repository

import (
	"errors"

	"gorm.io/gorm"

	"partnerdesk/internal/model/entity"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("referenced record does not exist")
)

// translate maps driver/gorm errors onto the repository sentinels.
// Requires gorm.Config{TranslateError: true} on the connection.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	}
	return err
}

// Repositories bundles one repository per aggregate.
type Repositories struct {
	ServiceType  *ServiceTypeRepository
	Service      *ServiceRepository
	MaterialType *MaterialTypeRepository
	Material     *MaterialRepository
	Partner      *PartnerRepository
	Order        *OrderRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		ServiceType:  NewServiceTypeRepository(db),
		Service:      NewServiceRepository(db),
		MaterialType: NewMaterialTypeRepository(db),
		Material:     NewMaterialRepository(db),
		Partner:      NewPartnerRepository(db),
		Order:        NewOrderRepository(db),
	}
}

// AutoMigrate creates the seven domain tables. Parents come first so the
// cascade foreign keys can be created in one pass.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.ServiceType{},
		&entity.Service{},
		&entity.Partner{},
		&entity.Order{},
		&entity.MaterialType{},
		&entity.Material{},
		&entity.ServiceMaterial{},
	)
}
