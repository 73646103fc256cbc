package entity

// Partner is a counterparty that places orders. INN is the tax id.
type Partner struct {
	PartnerID   uint   `json:"partner_id" gorm:"column:partner_id;primaryKey"`
	PartnerType string `json:"partner_type" gorm:"column:partner_type;size:50;not null"`
	PartnerName string `json:"partner_name" gorm:"column:partner_name;size:100;not null;uniqueIndex"`
	Manager     string `json:"manager" gorm:"column:manager;size:100;not null"`
	Email       string `json:"email" gorm:"column:email;size:100;not null"`
	Phone       string `json:"phone" gorm:"column:phone;size:20;not null"`
	Address     string `json:"address" gorm:"column:address;size:200;not null"`
	INN         string `json:"inn" gorm:"column:inn;size:20;not null;uniqueIndex"`
	Rating      int    `json:"rating" gorm:"column:rating;not null;check:rating >= 0"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:PartnerID;references:PartnerID"`
}

func (Partner) TableName() string {
	return "partners"
}
