package content

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListBanners(ctx context.Context, activeOnly bool) ([]HeroBanner, error) {
	q := r.db.WithContext(ctx).Order("position asc, id asc")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var items []HeroBanner
	err := q.Find(&items).Error
	return items, err
}

func (r *Repo) GetBanner(ctx context.Context, id uint) (HeroBanner, error) {
	var b HeroBanner
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return b, err
}

func (r *Repo) CreateBanner(ctx context.Context, b *HeroBanner) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *Repo) UpdateBanner(ctx context.Context, b *HeroBanner) error {
	b.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&HeroBanner{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"title":      b.Title,
			"subtitle":   b.Subtitle,
			"image_url":  b.ImageURL,
			"link_url":   b.LinkURL,
			"position":   b.Position,
			"is_active":  b.IsActive,
			"updated_at": b.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) DeleteBanner(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&HeroBanner{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) ListTestimonials(ctx context.Context, activeOnly bool) ([]Testimonial, error) {
	q := r.db.WithContext(ctx).Order("id desc")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var items []Testimonial
	err := q.Find(&items).Error
	return items, err
}

func (r *Repo) GetTestimonial(ctx context.Context, id uint) (Testimonial, error) {
	var t Testimonial
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return t, err
}

func (r *Repo) CreateTestimonial(ctx context.Context, t *Testimonial) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *Repo) UpdateTestimonial(ctx context.Context, t *Testimonial) error {
	t.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&Testimonial{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"customer_name": t.CustomerName,
			"content":       t.Content,
			"rating":        t.Rating,
			"avatar_url":    t.AvatarURL,
			"is_active":     t.IsActive,
			"updated_at":    t.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) DeleteTestimonial(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Testimonial{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
