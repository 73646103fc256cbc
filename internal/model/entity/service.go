package entity

import (
	"github.com/shopspring/decimal"
)

// ServiceType categorizes services and carries the complexity multiplier
// used by material demand planning.
type ServiceType struct {
	TypeName              string          `json:"type_name" gorm:"column:type_name;size:50;primaryKey"`
	ComplexityCoefficient decimal.Decimal `json:"complexity_coefficient" gorm:"column:complexity_coefficient;type:decimal(3,1);not null"`

	Services []Service `json:"services,omitempty" gorm:"foreignKey:TypeName;references:TypeName"`
}

func (ServiceType) TableName() string {
	return "service_types"
}

// Service is a catalog entry priced from its labor norm plus the materials
// it consumes. ServiceCode is an opaque business key supplied by the caller.
type Service struct {
	ServiceCode   string          `json:"service_code" gorm:"column:service_code;size:10;primaryKey"`
	TypeName      string          `json:"type_name" gorm:"column:type_name;size:50;not null;index"`
	ServiceName   string          `json:"service_name" gorm:"column:service_name;size:100;not null;uniqueIndex"`
	MinCost       decimal.Decimal `json:"min_cost" gorm:"column:min_cost;type:decimal(10,2);not null"`
	TimeNormHours decimal.Decimal `json:"time_norm_hours" gorm:"column:time_norm_hours;type:decimal(5,2);not null"`
	HourlyRate    decimal.Decimal `json:"hourly_rate" gorm:"column:hourly_rate;type:decimal(10,2);not null"`

	Type      *ServiceType      `json:"type,omitempty" gorm:"foreignKey:TypeName;references:TypeName;constraint:OnDelete:CASCADE"`
	Materials []ServiceMaterial `json:"materials,omitempty" gorm:"foreignKey:ServiceCode;references:ServiceCode"`
}

func (Service) TableName() string {
	return "services"
}

// ServiceMaterial links a service to a material it consumes.
// ConsumptionNorm is the nominal quantity per unit of service.
type ServiceMaterial struct {
	ServiceCode     string          `json:"service_code" gorm:"column:service_code;size:10;primaryKey"`
	MaterialID      uint            `json:"material_id" gorm:"column:material_id;primaryKey"`
	ConsumptionNorm decimal.Decimal `json:"consumption_norm" gorm:"column:consumption_norm;type:decimal(10,2);not null"`

	Service  *Service  `json:"service,omitempty" gorm:"foreignKey:ServiceCode;references:ServiceCode;constraint:OnDelete:CASCADE"`
	Material *Material `json:"material,omitempty" gorm:"foreignKey:MaterialID;references:MaterialID;constraint:OnDelete:CASCADE"`
}

func (ServiceMaterial) TableName() string {
	return "service_materials"
}
