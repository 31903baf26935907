package domain

import "time"

type ChatParticipant struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type ChatMessage struct {
	ID          string          `json:"id"`
	ChatID      int64           `json:"chatID"`
	Sender      ChatParticipant `json:"sender"`
	Content     string          `json:"content"`
	ContentType string          `json:"contentType"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Chat struct {
	ID           int64             `json:"id"`
	Title        string            `json:"title"`
	Participants []ChatParticipant `json:"participants"`
	LastMessage  *ChatMessage      `json:"lastMessage,omitempty"`
	IsGroup      bool              `json:"isGroupChat"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	Version      int32             `json:"-"`
}

// HasParticipant reports whether the given user belongs to the chat.
func (c *Chat) HasParticipant(userID int64) bool {
	for _, p := range c.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}
