package repository

import (
	"context"
	"fmt"

	"smartcare-admin/internal/models"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// FindRooms mengembalikan satu room per pengirim (tipe user atau mitra) yang pernah chat ke admin
func (r *ChatRepository) FindRooms(ctx context.Context, senderType string) ([]models.ChatRoom, error) {
	table, nameColumn := "users", "nama"
	if senderType == models.PartyMitra {
		table, nameColumn = "mitra", "nama_toko"
	}

	var rooms []models.ChatRoom
	err := r.db.WithContext(ctx).
		Table("chat").
		Select(fmt.Sprintf(
			"chat.sender_id AS id, %[1]s.%[2]s AS name, %[1]s.email AS email, ? AS type, "+
				"MAX(chat.created_at) AS last_message_at, "+
				"SUM(CASE WHEN chat.read_by_receiver THEN 0 ELSE 1 END) AS unread_count",
			table, nameColumn), senderType).
		Joins(fmt.Sprintf("JOIN %[1]s ON %[1]s.id = chat.sender_id", table)).
		Where("chat.receiver_type = ? AND chat.sender_type = ?", models.PartyAdmin, senderType).
		Group(fmt.Sprintf("chat.sender_id, %[1]s.%[2]s, %[1]s.email", table, nameColumn)).
		Order("last_message_at desc").
		Scan(&rooms).Error
	return rooms, translate(err)
}

// FindConversation: semua pesan antara pihak (peerID, peerType) dan admin, urut waktu naik
func (r *ChatRepository) FindConversation(ctx context.Context, peerID, peerType string) ([]models.Chat, error) {
	var messages []models.Chat
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND sender_type = ? AND receiver_type = ?) OR (receiver_id = ? AND receiver_type = ? AND sender_type = ?)",
			peerID, peerType, models.PartyAdmin,
			peerID, peerType, models.PartyAdmin).
		Order("created_at asc").
		Find(&messages).Error
	return messages, translate(err)
}

// MarkRead menandai pesan dari pihak tersebut ke admin sudah dibaca
func (r *ChatRepository) MarkRead(ctx context.Context, peerID, peerType string) error {
	err := r.db.WithContext(ctx).Model(&models.Chat{}).
		Where("sender_id = ? AND sender_type = ? AND receiver_type = ? AND read_by_receiver = ?",
			peerID, peerType, models.PartyAdmin, false).
		Update("read_by_receiver", true).Error
	return translate(err)
}

func (r *ChatRepository) Create(ctx context.Context, chat *models.Chat) error {
	return translate(r.db.WithContext(ctx).Create(chat).Error)
}
