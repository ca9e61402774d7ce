package settings

import "time"

// PaymentMethod is a manual-transfer destination shown at checkout
// (bank name + account), managed from the back-office.
type PaymentMethod struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BankName      string    `gorm:"type:varchar(128);not null" json:"bankName"`
	AccountNumber string    `gorm:"type:varchar(64);not null" json:"accountNumber"`
	AccountHolder string    `gorm:"type:varchar(255);not null" json:"accountHolder"`
	LogoURL       string    `gorm:"type:varchar(512)" json:"logoUrl"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (PaymentMethod) TableName() string { return "payment_methods" }

type ShippingCourier struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"type:varchar(32);not null;uniqueIndex:ux_shipping_couriers_code" json:"code"`
	Name      string    `gorm:"type:varchar(128);not null" json:"name"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (ShippingCourier) TableName() string { return "shipping_couriers" }
