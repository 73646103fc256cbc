package entity

import (
	"time"
)

// Order is a business event: a partner buys Quantity units of a service.
type Order struct {
	OrderID       uint      `json:"order_id" gorm:"column:order_id;primaryKey"`
	ServiceCode   string    `json:"service_code" gorm:"column:service_code;size:10;not null;index"`
	PartnerID     uint      `json:"partner_id" gorm:"column:partner_id;not null;index"`
	Quantity      int       `json:"quantity" gorm:"column:quantity;not null"`
	ExecutionDate time.Time `json:"execution_date" gorm:"column:execution_date;not null"`

	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceCode;references:ServiceCode;constraint:OnDelete:CASCADE"`
	Partner *Partner `json:"partner,omitempty" gorm:"foreignKey:PartnerID;references:PartnerID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}
