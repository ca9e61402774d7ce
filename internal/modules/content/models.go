package content

import "time"

type HeroBanner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Subtitle  string    `gorm:"type:varchar(255)" json:"subtitle"`
	ImageURL  string    `gorm:"type:varchar(512);not null" json:"imageUrl"`
	LinkURL   string    `gorm:"type:varchar(512)" json:"linkUrl"`
	Position  int       `gorm:"not null;default:0;index:ix_hero_banners_position" json:"position"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (HeroBanner) TableName() string { return "hero_banners" }

type Testimonial struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customerName"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Rating       int       `gorm:"not null;default:5" json:"rating"`
	AvatarURL    string    `gorm:"type:varchar(512)" json:"avatarUrl"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (Testimonial) TableName() string { return "testimonials" }
