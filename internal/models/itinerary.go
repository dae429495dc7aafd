package models

// Itinerary is a planner result the visitor chose to keep.
type Itinerary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	Duration    string `json:"duration"`
	Content     string `json:"content"`
	Date        string `json:"date"`
}

func (i Itinerary) EntityID() string { return i.ID }

// ItineraryInput carries a generated plan to be saved.
type ItineraryInput struct {
	Prompt      string `json:"prompt"`
	Destination string `json:"destination"`
	Duration    string `json:"duration"`
	Content     string `json:"content"`
}
