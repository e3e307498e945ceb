package domain

import (
	"context"
	"time"
)

// Content singletons live at a fixed row id; an absent row is a valid state
// meaning "serve the built-in default".
const SingletonID = 1

type HeroContent struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255;not null"`
	Subtitle  string `gorm:"size:255;not null"`
	Image     string `gorm:"size:255;not null"`
	CtaText   string `gorm:"size:120;not null"`
	CtaLink   string `gorm:"size:255;not null"`
	UpdatedAt time.Time
}

func (HeroContent) TableName() string { return "content_hero" }

type PromoBanner struct {
	ID              uint   `gorm:"primaryKey"`
	Text            string `gorm:"size:255;not null"`
	Code            string `gorm:"size:60;not null"`
	Active          bool
	BackgroundColor string `gorm:"size:10;default:#000000"`
	TextColor       string `gorm:"size:10;default:#FFFFFF"`
	HighlightColor  string `gorm:"size:10;default:#C8102E"`
	UpdatedAt       time.Time
}

func (PromoBanner) TableName() string { return "content_promo_banner" }

type HeritageSection struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Subtitle    string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	CtaText     string `gorm:"size:120;not null"`
	CtaLink     string `gorm:"size:255;not null"`
	YearsText   string `gorm:"size:20;not null"`
	UpdatedAt   time.Time
}

func (HeritageSection) TableName() string { return "content_heritage" }

// FeaturedWatch associates a display position with a product. The whole set
// is replaced atomically on update; entries pointing at deleted products are
// skipped on read.
type FeaturedWatch struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"not null;index"`
	Position  int  `gorm:"column:order_num;not null"`
	IsNew     bool
}

func (FeaturedWatch) TableName() string { return "content_featured_watches" }

// FeaturedItem is the read model joined against the product row.
type FeaturedItem struct {
	ProductID  uint
	Name       string
	Collection string
	Price      float64
	Image      string
	IsNew      bool
}

func DefaultHero() HeroContent {
	return HeroContent{
		ID:       SingletonID,
		Title:    "НАЙДИТЕ\nИДЕАЛЬНЫЕ\nЧАСЫ.",
		Subtitle: "Японское мастерство и точность в каждой детали",
		Image:    "https://images.unsplash.com/photo-1587836374828-4dbafa94cf0e?w=800&q=80",
		CtaText:  "Смотреть коллекцию",
		CtaLink:  "/catalog",
	}
}

func DefaultPromoBanner() PromoBanner {
	return PromoBanner{
		ID:              SingletonID,
		Text:            "СКИДКА 15% НА ВСЕ ЧАСЫ С КОДОМ",
		Code:            "PRE2025",
		Active:          true,
		BackgroundColor: "#000000",
		TextColor:       "#FFFFFF",
		HighlightColor:  "#C8102E",
	}
}

func DefaultHeritage() HeritageSection {
	return HeritageSection{
		ID:          SingletonID,
		Title:       "75 лет\nмастерства",
		Subtitle:    "С 1950 года",
		Description: "Orient создает механические часы высочайшего качества, объединяя традиционное японское мастерство с современными технологиями.",
		CtaText:     "Узнать историю",
		CtaLink:     "/history",
		YearsText:   "75",
	}
}

type ContentRepo interface {
	GetHero(ctx context.Context) (*HeroContent, error)
	SaveHero(ctx context.Context, h *HeroContent) error
	GetPromoBanner(ctx context.Context) (*PromoBanner, error)
	SavePromoBanner(ctx context.Context, b *PromoBanner) error
	GetHeritage(ctx context.Context) (*HeritageSection, error)
	SaveHeritage(ctx context.Context, h *HeritageSection) error

	ListFeatured(ctx context.Context) ([]FeaturedWatch, error)
	ReplaceFeatured(ctx context.Context, set []FeaturedWatch) error
}
