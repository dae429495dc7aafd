package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/wanderlust/internal/models"
	"github.com/example/wanderlust/internal/store"
	"github.com/example/wanderlust/internal/utils"
)

// ContentHandler serves one content collection: public listing and slug
// lookup, admin create, update and delete.
type ContentHandler[T models.Entity, P store.Patch[T]] struct {
	items    *store.Collection[T]
	name     string
	slugOf   func(T) string
	validate func(*T) error
	filter   func(c *fiber.Ctx) func(T) bool
	view     func(T) any
	paginate bool
}

func (h *ContentHandler[T, P]) present(item T) any {
	if h.view == nil {
		return item
	}
	return h.view(item)
}

func (h *ContentHandler[T, P]) presentAll(items []T) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, h.present(item))
	}
	return out
}

// List returns the collection, newest first, optionally filtered and paginated.
func (h *ContentHandler[T, P]) List(c *fiber.Ctx) error {
	items := h.items.All()
	if h.filter != nil {
		if keep := h.filter(c); keep != nil {
			filtered := make([]T, 0, len(items))
			for _, item := range items {
				if keep(item) {
					filtered = append(filtered, item)
				}
			}
			items = filtered
		}
	}

	if !h.paginate {
		return c.JSON(fiber.Map{"success": true, "data": h.presentAll(items)})
	}

	pg := utils.ParsePagination(c)
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       h.presentAll(utils.Paginate(items, pg)),
		"pagination": pg.Meta(len(items)),
	})
}

// GetBySlug returns one item by slug, falling back to its id.
func (h *ContentHandler[T, P]) GetBySlug(c *fiber.Ctx) error {
	key := c.Params("slug")
	item, ok := h.items.Find(func(item T) bool {
		return h.slugOf(item) == key || item.EntityID() == key
	})
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, h.name+" not found")
	}
	return c.JSON(fiber.Map{"success": true, "data": h.present(item)})
}

// Create adds an item at the front of the collection (admin endpoint).
func (h *ContentHandler[T, P]) Create(c *fiber.Ctx) error {
	var item T
	if err := c.BodyParser(&item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if h.validate != nil {
		if err := h.validate(&item); err != nil {
			return err
		}
	}

	if id := item.EntityID(); id != "" {
		if _, exists := h.items.Get(id); exists {
			return fiber.NewError(fiber.StatusConflict, h.name+" already exists")
		}
	}
	if slug := strings.TrimSpace(h.slugOf(item)); slug != "" && h.items.SlugTaken(slug, "") {
		return fiber.NewError(fiber.StatusConflict, h.name+" slug already in use")
	}

	items := h.items.Add(c.UserContext(), item)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": h.present(items[0])})
}

// Update merges the request body into an existing item (admin endpoint).
func (h *ContentHandler[T, P]) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	current, ok := h.items.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, h.name+" not found")
	}

	var patch P
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	preview := current
	patch.Apply(&preview)
	if slug := h.slugOf(preview); slug != h.slugOf(current) {
		if strings.TrimSpace(slug) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "slug cannot be empty")
		}
		if h.items.SlugTaken(slug, id) {
			return fiber.NewError(fiber.StatusConflict, h.name+" slug already in use")
		}
	}

	h.items.Update(c.UserContext(), id, patch)
	item, ok := h.items.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, h.name+" not found")
	}
	return c.JSON(fiber.Map{"success": true, "data": h.present(item)})
}

// Delete removes an item (admin endpoint). Unknown ids succeed.
func (h *ContentHandler[T, P]) Delete(c *fiber.Ctx) error {
	h.items.Delete(c.UserContext(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterPublicRoutes wires the read-only endpoints onto router.
func (h *ContentHandler[T, P]) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/", h.List)
	router.Get("/:slug", h.GetBySlug)
}

// RegisterAdminRoutes wires the write endpoints onto router.
func (h *ContentHandler[T, P]) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/", h.List)
	router.Post("/", h.Create)
	router.Put("/:id", h.Update)
	router.Delete("/:id", h.Delete)
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	return nil
}

// Blog

// NewBlogHandler serves blog posts, paginated.
func NewBlogHandler(site *store.SiteStore) *ContentHandler[models.BlogPost, models.BlogPostPatch] {
	return &ContentHandler[models.BlogPost, models.BlogPostPatch]{
		items:    site.BlogPosts(),
		name:     "blog post",
		slugOf:   func(p models.BlogPost) string { return p.Slug },
		paginate: true,
		validate: func(p *models.BlogPost) error {
			if p.Date == "" {
				p.Date = time.Now().Format(time.DateOnly)
			}
			return required("title", p.Title)
		},
		filter: func(c *fiber.Ctx) func(models.BlogPost) bool {
			tag := strings.TrimSpace(c.Query("tag"))
			if tag == "" {
				return nil
			}
			return func(p models.BlogPost) bool {
				for _, t := range p.Tags {
					if strings.EqualFold(t, tag) {
						return true
					}
				}
				return false
			}
		},
	}
}

// Destinations

// NewDestinationHandler serves destinations.
func NewDestinationHandler(site *store.SiteStore) *ContentHandler[models.Destination, models.DestinationPatch] {
	return &ContentHandler[models.Destination, models.DestinationPatch]{
		items:  site.Destinations(),
		name:   "destination",
		slugOf: func(d models.Destination) string { return d.Slug },
		validate: func(d *models.Destination) error {
			return required("name", d.Name)
		},
	}
}

// Deals

type dealView struct {
	models.Deal
	DiscountPercent int `json:"discountPercent"`
}

// NewDealHandler serves deals with their computed discount. ?category= keeps
// only deals tagged with that category; "All" disables the filter.
func NewDealHandler(site *store.SiteStore) *ContentHandler[models.Deal, models.DealPatch] {
	return &ContentHandler[models.Deal, models.DealPatch]{
		items:  site.Deals(),
		name:   "deal",
		slugOf: func(d models.Deal) string { return d.Slug },
		validate: func(d *models.Deal) error {
			if err := required("title", d.Title); err != nil {
				return err
			}
			if d.Price < 0 || d.OriginalPrice < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "prices cannot be negative")
			}
			return nil
		},
		filter: func(c *fiber.Ctx) func(models.Deal) bool {
			category := strings.TrimSpace(c.Query("category"))
			if category == "" || strings.EqualFold(category, "all") {
				return nil
			}
			return func(d models.Deal) bool { return d.HasCategory(category) }
		},
		view: func(d models.Deal) any {
			return dealView{Deal: d, DiscountPercent: d.DiscountPercent()}
		},
	}
}

// Gear

// NewGearHandler serves gear products. ?category= filters by exact category.
func NewGearHandler(site *store.SiteStore) *ContentHandler[models.GearProduct, models.GearProductPatch] {
	return &ContentHandler[models.GearProduct, models.GearProductPatch]{
		items:  site.Gear(),
		name:   "gear product",
		slugOf: func(g models.GearProduct) string { return g.Slug },
		validate: func(g *models.GearProduct) error {
			return required("name", g.Name)
		},
		filter: func(c *fiber.Ctx) func(models.GearProduct) bool {
			category := strings.TrimSpace(c.Query("category"))
			if category == "" || strings.EqualFold(category, "all") {
				return nil
			}
			return func(g models.GearProduct) bool { return strings.EqualFold(g.Category, category) }
		},
	}
}
