package main

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Partner struct {
	PartnerID   uint   `gorm:"column:partner_id;primaryKey"`
	PartnerName string `gorm:"column:partner_name;size:100;not null;uniqueIndex"`

	Orders []Order `gorm:"foreignKey:PartnerID;references:PartnerID"`
}

func (Partner) TableName() string { return "partners" }

type Order struct {
	OrderID   uint `gorm:"column:order_id;primaryKey"`
	PartnerID uint `gorm:"column:partner_id;not null;index"`

	Partner *Partner `gorm:"foreignKey:PartnerID;references:PartnerID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

func main() {
	base, err := gorm.Open(postgres.Open("host=127.0.0.1 port=5432 user=partnerdesk password=partnerdesk dbname=partnerdesk sslmode=disable"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil { panic(err) }
	base.Exec("DROP SCHEMA IF EXISTS mig_test CASCADE")
	base.Exec("CREATE SCHEMA mig_test")
	dsn := "host=127.0.0.1 port=5432 user=partnerdesk password=partnerdesk dbname=partnerdesk sslmode=disable search_path=mig_test"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Info), TranslateError: true})
	if err != nil { panic(err) }
	fmt.Println("partner only:", db.AutoMigrate(&Partner{}))
	fmt.Println("both ordered:", db.AutoMigrate(&Partner{}, &Order{}))
}
