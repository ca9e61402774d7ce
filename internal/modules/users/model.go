package users

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Role         string    `gorm:"type:varchar(16);not null;default:'customer'" json:"role"`
	Phone        *string   `gorm:"type:varchar(32)" json:"phone"`
	Address      *string   `gorm:"type:varchar(512)" json:"address"`
	CreatedAt    time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (User) TableName() string { return "users" }
