package entity

import (
	"github.com/shopspring/decimal"
)

// MaterialType categorizes materials. OverconsumptionPercent is the expected
// waste fraction in [0,1], stored as a fraction rather than a whole percentage.
type MaterialType struct {
	TypeName               string          `json:"type_name" gorm:"column:type_name;size:50;primaryKey"`
	OverconsumptionPercent decimal.Decimal `json:"overconsumption_percent" gorm:"column:overconsumption_percent;type:decimal(3,2);not null"`

	Materials []Material `json:"materials,omitempty" gorm:"foreignKey:TypeName;references:TypeName"`
}

func (MaterialType) TableName() string {
	return "material_types"
}

// Material is a purchasable catalog item priced at CurrentPrice per unit.
type Material struct {
	MaterialID   uint            `json:"material_id" gorm:"column:material_id;primaryKey"`
	TypeName     string          `json:"type_name" gorm:"column:type_name;size:50;not null;index"`
	MaterialName string          `json:"material_name" gorm:"column:material_name;size:100;not null;uniqueIndex"`
	CurrentPrice decimal.Decimal `json:"current_price" gorm:"column:current_price;type:decimal(10,2);not null"`

	Type *MaterialType `json:"type,omitempty" gorm:"foreignKey:TypeName;references:TypeName;constraint:OnDelete:CASCADE"`
}

func (Material) TableName() string {
	return "materials"
}
