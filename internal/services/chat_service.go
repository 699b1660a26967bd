package services

import (
	"context"
	"strings"

	"smartcare-admin/internal/models"
)

// ChatService untuk live chat admin dengan user & mitra.
// Tidak ada push realtime; klien cukup polling ulang.
type ChatService struct {
	repo ChatRepository
}

func NewChatService(repo ChatRepository) *ChatService {
	return &ChatService{repo: repo}
}

// Rooms memuat satu room per pengirim yang pernah chat ke admin: user dulu, lalu mitra
func (s *ChatService) Rooms(ctx context.Context) ([]models.ChatRoom, error) {
	users, err := s.repo.FindRooms(ctx, models.PartyUser)
	if err != nil {
		return nil, err
	}
	mitras, err := s.repo.FindRooms(ctx, models.PartyMitra)
	if err != nil {
		return nil, err
	}

	rooms := make([]models.ChatRoom, 0, len(users)+len(mitras))
	rooms = append(rooms, users...)
	return append(rooms, mitras...), nil
}

// Messages menandai pesan dari satu pihak sudah dibaca admin, lalu memuat
// percakapannya (urut waktu naik) supaya flag baca di respons sudah terbaru
func (s *ChatService) Messages(ctx context.Context, peerType, peerID string) ([]models.Chat, error) {
	if !validPeer(peerType) {
		return nil, ErrInvalidTarget
	}

	if err := s.repo.MarkRead(ctx, peerID, peerType); err != nil {
		return nil, err
	}
	messages, err := s.repo.FindConversation(ctx, peerID, peerType)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Chat{}
	}
	return messages, nil
}

// Send mengirim pesan dari admin. Pesan kosong (setelah trim) ditolak.
func (s *ChatService) Send(ctx context.Context, peerType, peerID, message string) ([]models.Chat, error) {
	if !validPeer(peerType) {
		return nil, ErrInvalidTarget
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	chat := &models.Chat{
		SenderID:       models.AdminSenderID,
		SenderType:     models.PartyAdmin,
		ReceiverID:     peerID,
		ReceiverType:   peerType,
		Message:        message,
		ReadBySender:   true,
		ReadByReceiver: false,
	}
	if err := s.repo.Create(ctx, chat); err != nil {
		return nil, err
	}

	messages, err := s.repo.FindConversation(ctx, peerID, peerType)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func validPeer(peerType string) bool {
	return peerType == models.PartyUser || peerType == models.PartyMitra
}
