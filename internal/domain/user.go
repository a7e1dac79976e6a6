package domain

type User struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

type CreateUserInput struct {
	Name           string
	Email          string
	TelegramChatID *int64
}

// UpdateUserInput is a partial update: nil fields are left unchanged.
type UpdateUserInput struct {
	Name  *string
	Email *string
}
