package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("updated_at DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) ListActive(ctx context.Context, limit, offset int) ([]Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	var items []Product
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusActive).
		Preload("Category").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("id asc")
		}).
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id uint) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&p, "id = ?", id).Error
	return p, err
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, StatusActive).
		Preload("Category").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("id asc")
		}).
		First(&p).Error
	return p, err
}

func (r *Repo) Create(ctx context.Context, p *Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return r.db.WithContext(ctx).Create(p).Error
}

// Update writes the full editable field set. Zero values are intentional:
// the admin form always submits a complete product payload.
func (r *Repo) Update(ctx context.Context, p *Product) error {
	p.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":           p.Name,
			"slug":           p.Slug,
			"description":    p.Description,
			"sku":            p.SKU,
			"cost_price":     p.CostPrice,
			"cost_basis":     p.CostBasis,
			"selling_price":  p.SellingPrice,
			"weight":         p.Weight,
			"stock_quantity": p.StockQuantity,
			"status":         p.Status,
			"images":         p.Images,
			"length":         p.Length,
			"width":          p.Width,
			"height":         p.Height,
			"category_id":    p.CategoryID,
			"updated_at":     p.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&ProductVariant{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *Repo) ListVariants(ctx context.Context, productID uint) ([]ProductVariant, error) {
	var items []ProductVariant
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&items).Error
	return items, err
}

func (r *Repo) CreateVariant(ctx context.Context, v *ProductVariant) error {
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	return r.db.WithContext(ctx).Create(v).Error
}

// DeleteVariantsByProduct removes the whole variant set of a product.
// Used by the admin form's replace-all save sequence.
func (r *Repo) DeleteVariantsByProduct(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&ProductVariant{}).Error
}

// VariantSKUExists checks the system-wide SKU constraint before insert so the
// handler can answer 409 without relying on driver-specific errors. The
// unique index remains the backstop for races.
func (r *Repo) VariantSKUExists(ctx context.Context, sku string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ProductVariant{}).
		Where("sku = ?", sku).
		Count(&n).Error
	return n > 0, err
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
