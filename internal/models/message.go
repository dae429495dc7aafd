package models

// MessageStatus tracks admin handling of a contact message.
type MessageStatus string

const (
	MessageNew     MessageStatus = "new"
	MessageRead    MessageStatus = "read"
	MessageReplied MessageStatus = "replied"
)

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	CreatedAt string        `json:"date"`
	Status    MessageStatus `json:"status"`
}

func (m ContactMessage) EntityID() string { return m.ID }

// MessageInput is what the contact form supplies; the store stamps the rest.
type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
