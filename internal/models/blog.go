package models

import "github.com/example/wanderlust/internal/utils"

// BlogPost is one article on the travel blog.
type BlogPost struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Image    string   `json:"image"`
	VideoURL string   `json:"videoUrl,omitempty"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
}

func (p BlogPost) EntityID() string { return p.ID }

// EntitySlug is the URL key of the BlogPost.
func (p BlogPost) EntitySlug() string { return p.Slug }

// SetSlug replaces the slug.
func (p *BlogPost) SetSlug(slug string) { p.Slug = slug }

// EnsureIdentity fills a blank id and derives a blank slug from the title.
func (p *BlogPost) EnsureIdentity() {
	if p.ID == "" {
		p.ID = NewID()
	}
	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Title)
	}
}

// BlogPostPatch is a partial update of a BlogPost.
type BlogPostPatch struct {
	Slug     *string   `json:"slug,omitempty"`
	Title    *string   `json:"title,omitempty"`
	Excerpt  *string   `json:"excerpt,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Image    *string   `json:"image,omitempty"`
	VideoURL *string   `json:"videoUrl,omitempty"`
	Author   *string   `json:"author,omitempty"`
	Date     *string   `json:"date,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
}

func (p BlogPostPatch) Apply(dst *BlogPost) {
	setString(&dst.Slug, p.Slug)
	setString(&dst.Title, p.Title)
	setString(&dst.Excerpt, p.Excerpt)
	setString(&dst.Content, p.Content)
	setString(&dst.Image, p.Image)
	setString(&dst.VideoURL, p.VideoURL)
	setString(&dst.Author, p.Author)
	setString(&dst.Date, p.Date)
	setStrings(&dst.Tags, p.Tags)
}
