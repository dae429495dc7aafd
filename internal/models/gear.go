package models

import "github.com/example/wanderlust/internal/utils"

// GearProduct is a recommended travel product with an affiliate link.
type GearProduct struct {
	ID           string  `json:"id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	VideoURL     string  `json:"videoUrl,omitempty"`
	Category     string  `json:"category"`
	AffiliateURL string  `json:"affiliateUrl"`
}

func (g GearProduct) EntityID() string { return g.ID }

func (g GearProduct) EntitySlug() string { return g.Slug }

func (g *GearProduct) SetSlug(slug string) { g.Slug = slug }

// EnsureIdentity fills a blank id and derives a blank slug from the name.
func (g *GearProduct) EnsureIdentity() {
	if g.ID == "" {
		g.ID = NewID()
	}
	if g.Slug == "" {
		g.Slug = utils.Slugify(g.Name)
	}
}

// GearProductPatch is a partial update of a GearProduct.
type GearProductPatch struct {
	Slug         *string  `json:"slug,omitempty"`
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Image        *string  `json:"image,omitempty"`
	VideoURL     *string  `json:"videoUrl,omitempty"`
	Category     *string  `json:"category,omitempty"`
	AffiliateURL *string  `json:"affiliateUrl,omitempty"`
}

func (p GearProductPatch) Apply(dst *GearProduct) {
	setString(&dst.Slug, p.Slug)
	setString(&dst.Name, p.Name)
	setString(&dst.Description, p.Description)
	setFloat(&dst.Price, p.Price)
	setString(&dst.Image, p.Image)
	setString(&dst.VideoURL, p.VideoURL)
	setString(&dst.Category, p.Category)
	setString(&dst.AffiliateURL, p.AffiliateURL)
}
