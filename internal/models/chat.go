package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipe pihak di chat
const (
	PartyUser  = "user"
	PartyMitra = "mitra"
	PartyAdmin = "admin"
)

// AdminSenderID adalah ID literal yang dipakai semua pesan dari admin
const AdminSenderID = "admin"

type Chat struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	SenderID       string    `gorm:"size:36;not null" json:"sender_id"`
	SenderType     string    `gorm:"size:10;not null" json:"sender_type"`
	ReceiverID     string    `gorm:"size:36;not null" json:"receiver_id"`
	ReceiverType   string    `gorm:"size:10;not null" json:"receiver_type"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	ReadBySender   bool      `gorm:"default:false" json:"read_by_sender"`
	ReadByReceiver bool      `gorm:"default:false" json:"read_by_receiver"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Chat) TableName() string { return "chat" }

func (c *Chat) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ChatRoom: satu room per pengirim (user/mitra) yang pernah chat ke admin
type ChatRoom struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Type          string    `json:"type"`
	LastMessageAt time.Time `json:"last_message_at"`
	UnreadCount   int64     `json:"unread_count"`
}

type SendChatInput struct {
	Message string `json:"message" binding:"required"`
}
