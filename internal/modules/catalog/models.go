package catalog

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_categories_slug" json:"slug"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (Category) TableName() string { return "categories" }

// Product JSON field names are the admin API wire format; do not rename
// without versioning the endpoints.
type Product struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	Name          string           `gorm:"type:varchar(255);not null" json:"name"`
	Slug          string           `gorm:"type:varchar(255);not null;uniqueIndex:ux_products_slug" json:"slug"`
	Description   string           `gorm:"type:text;not null" json:"description"`
	SKU           string           `gorm:"type:varchar(64);not null" json:"sku"`
	CostPrice     float64          `gorm:"not null;default:0" json:"costPrice"`
	CostBasis     float64          `gorm:"not null;default:0" json:"costBasis"`
	SellingPrice  float64          `gorm:"not null;default:0" json:"sellingPrice"`
	Weight        float64          `gorm:"not null;default:0" json:"weight"`
	StockQuantity int              `gorm:"not null;default:0" json:"stockQuantity"`
	Status        string           `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	Images        datatypes.JSON   `gorm:"type:json" json:"images"`
	Length        *float64         `json:"length"`
	Width         *float64         `json:"width"`
	Height        *float64         `json:"height"`
	CategoryID    *uint            `gorm:"index:ix_products_category_id" json:"categoryId"`
	Category      *Category        `json:"category,omitempty"`
	Variants      []ProductVariant `gorm:"constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt     time.Time        `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt     time.Time        `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

// ProductVariant rows have no stable identity across edits: the admin form
// replaces the whole set on every save (delete-all then recreate).
type ProductVariant struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ProductID     uint           `gorm:"not null;index:ix_product_variants_product_id" json:"productId"`
	SKU           string         `gorm:"type:varchar(64);not null;uniqueIndex:ux_product_variants_sku" json:"sku"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Attributes    datatypes.JSON `gorm:"type:json" json:"attributes"`
	CostPrice     float64        `gorm:"not null;default:0" json:"costPrice"`
	CostBasis     float64        `gorm:"not null;default:0" json:"costBasis"`
	SellingPrice  float64        `gorm:"not null;default:0" json:"sellingPrice"`
	StockQuantity int            `gorm:"not null;default:0" json:"stockQuantity"`
	Weight        float64        `gorm:"not null;default:0" json:"weight"`
	Images        datatypes.JSON `gorm:"type:json" json:"images"`
	// No column default: an explicit false from the admin payload must stick.
	IsActive  bool      `gorm:"not null" json:"isActive"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (ProductVariant) TableName() string { return "product_variants" }
