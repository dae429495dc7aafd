package models

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one turn of a concierge conversation. It is never persisted.
type ChatMessage struct {
	Role    string   `json:"role"`
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}

// Source is a grounding citation returned alongside generated text.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}
