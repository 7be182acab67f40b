package models

import "time"

// Contact message statuses.
const (
	MessageStatusUnread  = "unread"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

// ValidMessageStatus reports whether s is a known contact message status.
func ValidMessageStatus(s string) bool {
	switch s {
	case MessageStatusUnread, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}

type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Subject   string
	Message   string `gorm:"not null"`
	Status    string `gorm:"not null;default:unread"`
	CreatedAt time.Time
}

func (m *ContactMessage) TableName() string {
	return "contact_messages"
}
