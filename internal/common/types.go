package common

import "fmt"

type ContactType string

const (
	ContactTypePhone    ContactType = "phone"
	ContactTypeEmail    ContactType = "email"
	ContactTypeWhatsApp ContactType = "whatsapp"
	ContactTypeTelegram ContactType = "telegram"
)

func (ct ContactType) IsValid() bool {
	switch ct {
	case ContactTypePhone, ContactTypeEmail, ContactTypeWhatsApp, ContactTypeTelegram:
		return true
	}
	return false
}

type Direction string

const (
	DirectionInbound  Direction = "INBOUND"
	DirectionOutbound Direction = "OUTBOUND"
)

type MessageStatus string

const (
	MessageStatusSent      MessageStatus = "SENT"
	MessageStatusDelivered MessageStatus = "DELIVERED"
	MessageStatusRead      MessageStatus = "READ"
)

func (ms MessageStatus) IsValid() bool {
	return ms == MessageStatusSent || ms == MessageStatusDelivered || ms == MessageStatusRead
}

// Socket events emitted to chat rooms.
const (
	EventNewMessage   = "NEW_MESSAGE"
	EventStatusUpdate = "STATUS_UPDATE"
	EventChatStatus   = "CHAT_STATUS"
	EventTyping       = "typing"
	EventError        = "error"
)

// ChatRoom is the room every socket watching a chat joins.
func ChatRoom(chatID uint64) string {
	return fmt.Sprintf("chat:%d", chatID)
}
