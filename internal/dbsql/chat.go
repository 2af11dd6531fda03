package dbsql

import "time"

// Channel is one provider integration, e.g. a WhatsApp line behind an
// Evolution API instance.
type Channel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Provider  string    `gorm:"size:50;not null" json:"provider"`
	Instance  string    `gorm:"size:100;not null;uniqueIndex" json:"instance"`
	ServerURL string    `gorm:"size:255" json:"serverUrl"`
	APIKey    string    `gorm:"column:api_key;size:255" json:"-"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Chat struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ContactID     uint64    `gorm:"not null;index:idx_chat_contact_channel" json:"contactId"`
	ChannelID     uint64    `gorm:"not null;index:idx_chat_contact_channel" json:"channelId"`
	LastMessageID *uint64   `json:"lastMessageId"`
	Status        string    `gorm:"size:20;not null" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Contact     *Contact     `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	LastMessage *ChatMessage `gorm:"foreignKey:LastMessageID" json:"lastMessage,omitempty"`
}

// ChatMessage is immutable after insert except for Status and StatusAt.
type ChatMessage struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ChatID      uint64     `gorm:"not null;index" json:"chatId"`
	ChannelID   uint64     `gorm:"not null" json:"channelId"`
	ContactID   *uint64    `gorm:"index" json:"contactId"`
	UserID      *uint64    `json:"userId"`
	Direction   string     `gorm:"size:10;not null" json:"direction"`
	Content     string     `gorm:"type:text" json:"content"`
	ContentType string     `gorm:"size:20;not null" json:"contentType"`
	FileURL     string     `gorm:"size:500" json:"fileUrl,omitempty"`
	FileID      string     `gorm:"size:64" json:"fileId,omitempty"`
	Status      string     `gorm:"size:20;not null" json:"status"`
	StatusAt    *time.Time `json:"statusAt"`
	ExternalID  string     `gorm:"size:128;index" json:"externalId,omitempty"`
	Metadata    JSONMap    `json:"metadata,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ChatMessageStatus rows are append only.
type ChatMessageStatus struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	MessageID  uint64    `gorm:"not null;index" json:"messageId"`
	Status     string    `gorm:"size:20;not null" json:"status"`
	OccurredAt time.Time `gorm:"not null" json:"occurredAt"`
}

// ChatContactStatus holds one presence row per (contact, chat).
type ChatContactStatus struct {
	ID        uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ContactID uint64     `gorm:"not null;uniqueIndex:idx_presence_contact_chat" json:"contactId"`
	ChatID    uint64     `gorm:"not null;uniqueIndex:idx_presence_contact_chat" json:"chatId"`
	IsOnline  bool       `gorm:"not null" json:"isOnline"`
	IsTyping  bool       `gorm:"not null" json:"isTyping"`
	LastSeen  *time.Time `json:"lastSeen"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
