package models

// ChatMessage is one turn sent by the widget. Role is conventionally user,
// assistant or system but is not enforced.
type ChatMessage struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content"`
}

// ChatRequest carries the whole conversation plus the caller's turn counter.
type ChatRequest struct {
	Messages     []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	MessageCount *int          `json:"message_count" validate:"required,min=0"`
}

// Turn returns the caller-supplied turn counter.
func (r *ChatRequest) Turn() int {
	if r.MessageCount == nil {
		return 0
	}
	return *r.MessageCount
}

// Latest returns the most recent message.
func (r *ChatRequest) Latest() ChatMessage {
	if len(r.Messages) == 0 {
		return ChatMessage{}
	}
	return r.Messages[len(r.Messages)-1]
}

type ChatResponse struct {
	Content       string   `json:"content"`
	Options       []string `json:"options"`
	ShowSubscribe bool     `json:"show_subscribe"`
}

type PainCategory struct {
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
}
