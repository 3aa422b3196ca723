package model

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"` // 'patient', 'doctor'
	LoginTime time.Time `json:"loginTime"`
}

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// WalletSession хранит состояние подключения кошелька
type WalletSession struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address"`
}

// Chat message roles
const (
	ChatRoleUser = "user"
	ChatRoleBot  = "bot"
)

// ChatMessage is one line of chat history
type ChatMessage struct {
	Role      string    `json:"role"` // 'user', 'bot'
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
