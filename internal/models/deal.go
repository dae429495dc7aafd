package models

import (
	"math"

	"github.com/example/wanderlust/internal/utils"
)

// DefaultDealCategories is the built-in deal vocabulary; SiteSettings.DealCategories extends it.
var DefaultDealCategories = []string{"Flights", "Hotels", "Tours", "Cruises", "Packages"}

// Deal is a discounted travel offer linking out to an affiliate partner.
type Deal struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Location      string   `json:"location"`
	City          string   `json:"city"`
	Categories    []string `json:"categories"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Image         string   `json:"image"`
	VideoURL      string   `json:"videoUrl,omitempty"`
	Rating        float64  `json:"rating"`
	Duration      string   `json:"duration"`
	AffiliateURL  string   `json:"affiliateUrl"`
}

func (d Deal) EntityID() string { return d.ID }

func (d Deal) EntitySlug() string { return d.Slug }

func (d *Deal) SetSlug(slug string) { d.Slug = slug }

// EnsureIdentity fills a blank id and derives a blank slug from the title.
func (d *Deal) EnsureIdentity() {
	if d.ID == "" {
		d.ID = NewID()
	}
	if d.Slug == "" {
		d.Slug = utils.Slugify(d.Title)
	}
}

// DiscountPercent is the rounded saving against OriginalPrice. It is negative
// when Price exceeds OriginalPrice and zero when there is no original price.
func (d Deal) DiscountPercent() int {
	if d.OriginalPrice <= 0 {
		return 0
	}
	return int(math.Round((d.OriginalPrice - d.Price) / d.OriginalPrice * 100))
}

// HasCategory reports whether the deal is tagged with category.
func (d Deal) HasCategory(category string) bool {
	for _, c := range d.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// DealPatch is a partial update of a Deal.
type DealPatch struct {
	Slug          *string   `json:"slug,omitempty"`
	Title         *string   `json:"title,omitempty"`
	Location      *string   `json:"location,omitempty"`
	City          *string   `json:"city,omitempty"`
	Categories    *[]string `json:"categories,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Image         *string   `json:"image,omitempty"`
	VideoURL      *string   `json:"videoUrl,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	Duration      *string   `json:"duration,omitempty"`
	AffiliateURL  *string   `json:"affiliateUrl,omitempty"`
}

func (p DealPatch) Apply(dst *Deal) {
	setString(&dst.Slug, p.Slug)
	setString(&dst.Title, p.Title)
	setString(&dst.Location, p.Location)
	setString(&dst.City, p.City)
	setStrings(&dst.Categories, p.Categories)
	setFloat(&dst.Price, p.Price)
	setFloat(&dst.OriginalPrice, p.OriginalPrice)
	setString(&dst.Image, p.Image)
	setString(&dst.VideoURL, p.VideoURL)
	setFloat(&dst.Rating, p.Rating)
	setString(&dst.Duration, p.Duration)
	setString(&dst.AffiliateURL, p.AffiliateURL)
}
