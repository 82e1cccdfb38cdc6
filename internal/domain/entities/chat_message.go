package entities

// ChatRole identifies the author of a chat message
type ChatRole string

const (
	ChatRoleUser ChatRole = "user"
	ChatRoleBot  ChatRole = "bot"
)

// ChatMessage is one entry of the transcript Q&A history
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
