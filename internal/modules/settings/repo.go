package settings

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListPaymentMethods(ctx context.Context, activeOnly bool) ([]PaymentMethod, error) {
	q := r.db.WithContext(ctx).Order("id asc")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var items []PaymentMethod
	err := q.Find(&items).Error
	return items, err
}

func (r *Repo) CreatePaymentMethod(ctx context.Context, m *PaymentMethod) error {
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repo) UpdatePaymentMethod(ctx context.Context, m *PaymentMethod) error {
	m.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&PaymentMethod{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"bank_name":      m.BankName,
			"account_number": m.AccountNumber,
			"account_holder": m.AccountHolder,
			"logo_url":       m.LogoURL,
			"is_active":      m.IsActive,
			"updated_at":     m.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) DeletePaymentMethod(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&PaymentMethod{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) ListCouriers(ctx context.Context, activeOnly bool) ([]ShippingCourier, error) {
	q := r.db.WithContext(ctx).Order("id asc")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var items []ShippingCourier
	err := q.Find(&items).Error
	return items, err
}

func (r *Repo) CreateCourier(ctx context.Context, s *ShippingCourier) error {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repo) UpdateCourier(ctx context.Context, s *ShippingCourier) error {
	s.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&ShippingCourier{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"code":       s.Code,
			"name":       s.Name,
			"is_active":  s.IsActive,
			"updated_at": s.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) DeleteCourier(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&ShippingCourier{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
