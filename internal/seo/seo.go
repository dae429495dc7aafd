// Package seo derives page metadata from the site settings.
package seo

import (
	"strings"

	"github.com/example/wanderlust/internal/models"
)

const (
	robotsIndex   = "index, follow"
	robotsNoIndex = "noindex, nofollow"
)

// Meta is everything a page head needs to describe the site.
type Meta struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Keywords    string            `json:"keywords"`
	Robots      string            `json:"robots"`
	Canonical   string            `json:"canonical,omitempty"`
	OpenGraph   map[string]string `json:"openGraph"`
	Twitter     map[string]string `json:"twitter"`
	CSSVars     map[string]string `json:"cssVars"`
}

// MetaTags computes the metadata for settings. Empty SEO fields fall back to
// the site name and hero text.
func MetaTags(s models.SiteSettings) Meta {
	title := firstNonEmpty(s.SEOTitle, s.SiteName)
	description := firstNonEmpty(s.SEODescription, s.HeroSubtitle)
	image := firstNonEmpty(s.OGImage, s.HeroImage)

	robots := robotsNoIndex
	if s.AllowIndexing {
		robots = robotsIndex
	}

	og := map[string]string{
		"og:type":        "website",
		"og:title":       title,
		"og:description": description,
		"og:site_name":   s.SiteName,
	}
	twitter := map[string]string{
		"twitter:card":        "summary",
		"twitter:title":       title,
		"twitter:description": description,
	}
	if image != "" {
		og["og:image"] = image
		twitter["twitter:card"] = "summary_large_image"
		twitter["twitter:image"] = image
	}
	if s.CanonicalURL != "" {
		og["og:url"] = s.CanonicalURL
	}

	return Meta{
		Title:       title,
		Description: description,
		Keywords:    s.SEOKeywords,
		Robots:      robots,
		Canonical:   s.CanonicalURL,
		OpenGraph:   og,
		Twitter:     twitter,
		CSSVars:     cssVars(s),
	}
}

func cssVars(s models.SiteSettings) map[string]string {
	vars := make(map[string]string, 3)
	if s.PrimaryColor != "" {
		vars["--color-primary"] = s.PrimaryColor
	}
	if s.SecondaryColor != "" {
		vars["--color-secondary"] = s.SecondaryColor
	}
	if s.FontFamily != "" {
		vars["--font-family"] = s.FontFamily
	}
	return vars
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
