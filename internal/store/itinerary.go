package store

import (
	"context"
	"time"

	"github.com/example/wanderlust/internal/models"
	"github.com/example/wanderlust/internal/storage"
)

const itineraryTitleRunes = 40

// ItineraryStore keeps planner results under their own key, apart from the
// site content.
type ItineraryStore struct {
	items *Collection[models.Itinerary]
	now   func() time.Time
}

// NewItineraryStore loads saved itineraries; nothing stored means an empty list.
func NewItineraryStore(ctx context.Context, s storage.Storage, now func() time.Time) *ItineraryStore {
	if now == nil {
		now = time.Now
	}
	repo := NewRepository[[]models.Itinerary](s, storage.KeyItineraries)
	return &ItineraryStore{
		items: LoadCollection(ctx, repo, []models.Itinerary{}),
		now:   now,
	}
}

// Save stores a generated plan at the front of the list. The title is the
// prompt, shortened to 40 characters.
func (s *ItineraryStore) Save(ctx context.Context, in models.ItineraryInput) models.Itinerary {
	it := models.Itinerary{
		ID:          models.NewID(),
		Title:       truncate(in.Prompt, itineraryTitleRunes),
		Destination: in.Destination,
		Duration:    in.Duration,
		Content:     in.Content,
		Date:        s.now().Format(time.DateOnly),
	}
	s.items.Add(ctx, it)
	return it
}

// List returns saved itineraries, newest first.
func (s *ItineraryStore) List() []models.Itinerary {
	return s.items.All()
}

// Delete removes an itinerary. Unknown ids are ignored.
func (s *ItineraryStore) Delete(ctx context.Context, id string) []models.Itinerary {
	return s.items.Delete(ctx, id)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
