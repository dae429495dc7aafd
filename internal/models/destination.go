package models

import "github.com/example/wanderlust/internal/utils"

// Destination is a featured place with an optional affiliate booking link.
type Destination struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Continent    string `json:"continent"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	VideoURL     string `json:"videoUrl,omitempty"`
	AffiliateURL string `json:"affiliateUrl,omitempty"`
}

func (d Destination) EntityID() string { return d.ID }

func (d Destination) EntitySlug() string { return d.Slug }

func (d *Destination) SetSlug(slug string) { d.Slug = slug }

// EnsureIdentity fills a blank id and derives a blank slug from the name.
func (d *Destination) EnsureIdentity() {
	if d.ID == "" {
		d.ID = NewID()
	}
	if d.Slug == "" {
		d.Slug = utils.Slugify(d.Name)
	}
}

// DestinationPatch is a partial update of a Destination.
type DestinationPatch struct {
	Slug         *string `json:"slug,omitempty"`
	Name         *string `json:"name,omitempty"`
	Continent    *string `json:"continent,omitempty"`
	Description  *string `json:"description,omitempty"`
	Image        *string `json:"image,omitempty"`
	VideoURL     *string `json:"videoUrl,omitempty"`
	AffiliateURL *string `json:"affiliateUrl,omitempty"`
}

func (p DestinationPatch) Apply(dst *Destination) {
	setString(&dst.Slug, p.Slug)
	setString(&dst.Name, p.Name)
	setString(&dst.Continent, p.Continent)
	setString(&dst.Description, p.Description)
	setString(&dst.Image, p.Image)
	setString(&dst.VideoURL, p.VideoURL)
	setString(&dst.AffiliateURL, p.AffiliateURL)
}
